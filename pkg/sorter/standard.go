package sorter

import (
	"slices"

	"github.com/nicholas-fedor/bidsort/pkg/bid"
)

// StandardSort sorts bids in place by title with slices.SortFunc.
//
// It is the baseline the hand-written algorithms are measured against. Stability is
// whatever the standard library provides (currently not stable).
func StandardSort(bids []bid.Bid) {
	slices.SortFunc(bids, bid.CompareTitle)
}
