package sorter

import (
	"github.com/nicholas-fedor/bidsort/pkg/bid"
)

// lessFunc orders two bids. Production code always passes bid.TitleLess.
type lessFunc func(a, b *bid.Bid) bool

// SelectionSort sorts bids in place by title.
//
// After pass k the first k+1 positions hold the smallest bids in order. It performs
// n(n-1)/2 comparisons and at most n-1 swaps, and is not stable.
//
// Parameters:
//   - bids: Slice to sort in place.
func SelectionSort(bids []bid.Bid) {
	selectionSort(bids, bid.TitleLess)
}

func selectionSort(bids []bid.Bid, less lessFunc) {
	for pos := range bids {
		minIndex := pos

		for j := pos + 1; j < len(bids); j++ {
			if less(&bids[j], &bids[minIndex]) {
				minIndex = j
			}
		}

		if minIndex != pos {
			bids[pos], bids[minIndex] = bids[minIndex], bids[pos]
		}
	}
}
