package sorter

import (
	"github.com/nicholas-fedor/bidsort/pkg/bid"
)

// MergeSort sorts bids[left..right] (inclusive) by title.
//
// Halves are merged through temporary buffers that are released after each merge.
// Equal titles keep their original relative order. Empty, single-element and
// out-of-range ranges are no-ops.
//
// Parameters:
//   - bids: Slice holding the range.
//   - left: First index of the range.
//   - right: Last index of the range.
func MergeSort(bids []bid.Bid, left, right int) {
	if !validRange(len(bids), left, right) {
		return
	}

	mergeSort(bids, left, right, bid.TitleLess)
}

func mergeSort(bids []bid.Bid, left, right int, less lessFunc) {
	if left >= right {
		return
	}

	mid := left + (right-left)/2

	mergeSort(bids, left, mid, less)
	mergeSort(bids, mid+1, right, less)
	merge(bids, left, mid, right, less)
}

// merge combines the sorted runs bids[left..mid] and bids[mid+1..right].
func merge(bids []bid.Bid, left, mid, right int, less lessFunc) {
	leftHalf := make([]bid.Bid, mid-left+1)
	rightHalf := make([]bid.Bid, right-mid)

	copy(leftHalf, bids[left:mid+1])
	copy(rightHalf, bids[mid+1:right+1])

	i, j, k := 0, 0, left

	for i < len(leftHalf) && j < len(rightHalf) {
		// Ties take from the left run.
		if !less(&rightHalf[j], &leftHalf[i]) {
			bids[k] = leftHalf[i]
			i++
		} else {
			bids[k] = rightHalf[j]
			j++
		}

		k++
	}

	k += copy(bids[k:right+1], leftHalf[i:])
	copy(bids[k:right+1], rightHalf[j:])
}
