package sorter

import (
	"github.com/nicholas-fedor/bidsort/pkg/bid"
)

// QuickSort sorts bids[begin..end] (inclusive) in place by title.
//
// Partitioning follows Hoare's scheme around the title found at the midpoint of the
// range. It is not stable. Empty, single-element and out-of-range ranges are no-ops.
//
// Parameters:
//   - bids: Slice holding the range.
//   - begin: First index of the range.
//   - end: Last index of the range.
func QuickSort(bids []bid.Bid, begin, end int) {
	if !validRange(len(bids), begin, end) {
		return
	}

	quickSort(bids, begin, end, bid.TitleLess)
}

// quickSort recurses into the smaller side of each split and loops on the larger
// one, keeping stack depth logarithmic. Split points match the two-call recursion.
func quickSort(bids []bid.Bid, begin, end int, less lessFunc) {
	for begin < end {
		split := partition(bids, begin, end, less)

		if split-begin < end-split {
			quickSort(bids, begin, split, less)
			begin = split + 1
		} else {
			quickSort(bids, split+1, end, less)
			end = split
		}
	}
}

// partition rearranges bids[begin..end] so that no title in [begin, split] is greater
// than any title in [split+1, end], and returns split.
func partition(bids []bid.Bid, begin, end int, less lessFunc) int {
	low := begin
	high := end
	// Copied: the midpoint slot may be swapped during partitioning.
	pivot := bids[begin+(end-begin)/2]

	for {
		for less(&bids[low], &pivot) {
			low++
		}

		for less(&pivot, &bids[high]) {
			high--
		}

		if low >= high {
			return high
		}

		bids[low], bids[high] = bids[high], bids[low]
		low++
		high--
	}
}

// validRange reports whether [begin, end] holds at least two elements of a slice of length n.
func validRange(n, begin, end int) bool {
	return begin < end && begin >= 0 && end < n
}
