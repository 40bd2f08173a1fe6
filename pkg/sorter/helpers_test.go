package sorter_test

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"

	"github.com/nicholas-fedor/bidsort/pkg/bid"
	"github.com/nicholas-fedor/bidsort/pkg/sorter"
)

// runners invokes each algorithm over the full slice the way a driver would.
var runners = map[sorter.Algorithm]func([]bid.Bid){
	sorter.Selection: sorter.SelectionSort,
	sorter.Quick:     func(b []bid.Bid) { sorter.QuickSort(b, 0, len(b)-1) },
	sorter.Merge:     func(b []bid.Bid) { sorter.MergeSort(b, 0, len(b)-1) },
	sorter.Standard:  sorter.StandardSort,
}

// bidsWithTitles builds bids whose IDs record their input position.
func bidsWithTitles(titles ...string) []bid.Bid {
	return lo.Map(titles, func(title string, i int) bid.Bid {
		return bid.Bid{
			ID:     fmt.Sprintf("id-%d", i),
			Title:  title,
			Fund:   "General Fund",
			Amount: float64(i),
		}
	})
}

// randomBids builds n bids with titles drawn from a small alphabet so duplicates occur.
func randomBids(n int, seed uint64) []bid.Bid {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	titles := make([]string, n)

	for i := range titles {
		length := 1 + rng.IntN(6)
		buf := make([]byte, length)

		for j := range buf {
			buf[j] = "ABCabc xyz"[rng.IntN(10)]
		}

		titles[i] = string(buf)
	}

	return bidsWithTitles(titles...)
}

func ids(bids []bid.Bid) []string {
	return lo.Map(bids, func(b bid.Bid, _ int) string { return b.ID })
}

// sameMultiset reports whether got is a permutation of want, comparing whole records.
func sameMultiset(got, want []bid.Bid) bool {
	if len(got) != len(want) {
		return false
	}

	a := slices.Clone(got)
	b := slices.Clone(want)
	byID := func(x, y bid.Bid) int {
		if x.ID < y.ID {
			return -1
		}

		if x.ID > y.ID {
			return 1
		}

		return 0
	}

	slices.SortFunc(a, byID)
	slices.SortFunc(b, byID)

	return slices.Equal(a, b)
}
