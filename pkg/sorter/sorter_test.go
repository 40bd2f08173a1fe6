package sorter_test

import (
	"errors"
	"slices"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/nicholas-fedor/bidsort/pkg/bid"
	"github.com/nicholas-fedor/bidsort/pkg/sorter"
)

var _ = ginkgo.Describe("Bid sorting", func() {
	for _, alg := range sorter.Algorithms() {
		run := runners[alg]

		ginkgo.Describe(alg.DisplayName(), func() {
			ginkgo.It("leaves an empty sequence untouched", func() {
				bids := []bid.Bid{}
				run(bids)
				gomega.Expect(bids).To(gomega.BeEmpty())

				var nilBids []bid.Bid
				run(nilBids)
				gomega.Expect(nilBids).To(gomega.BeNil())
			})

			ginkgo.It("leaves a single bid untouched", func() {
				bids := bidsWithTitles("Alpine Lot 7")
				run(bids)
				gomega.Expect(bids).To(gomega.Equal(bidsWithTitles("Alpine Lot 7")))
			})

			ginkgo.It("orders titles ascending byte-wise", func() {
				bids := bidsWithTitles("delta", "Bravo", "alpha", "Charlie", "bravo")
				run(bids)
				gomega.Expect(bid.Titles(bids)).To(gomega.Equal(
					[]string{"Bravo", "Charlie", "alpha", "bravo", "delta"},
				))
			})

			ginkgo.It("sorts reverse-sorted input", func() {
				bids := bidsWithTitles("e", "d", "c", "b", "a")
				run(bids)
				gomega.Expect(bid.Titles(bids)).To(gomega.Equal([]string{"a", "b", "c", "d", "e"}))
			})

			ginkgo.It("sorts duplicate-heavy input", func() {
				bids := bidsWithTitles("b", "a", "b", "a", "b", "a", "b")
				run(bids)
				gomega.Expect(bid.Titles(bids)).To(gomega.Equal(
					[]string{"a", "a", "a", "b", "b", "b", "b"},
				))
			})

			ginkgo.It("is idempotent on sorted input", func() {
				bids := bidsWithTitles("a", "b", "c", "d")
				run(bids)
				gomega.Expect(bids).To(gomega.Equal(bidsWithTitles("a", "b", "c", "d")))
			})

			ginkgo.It("keeps sortedness and the record multiset for 1000 random bids", func() {
				input := randomBids(1000, 42)
				bids := slices.Clone(input)
				run(bids)
				gomega.Expect(bid.IsSorted(bids)).To(gomega.BeTrue())
				gomega.Expect(sameMultiset(bids, input)).To(gomega.BeTrue())
			})

			ginkgo.It("never changes bid fields", func() {
				input := randomBids(64, 7)
				bids := slices.Clone(input)
				run(bids)

				byID := map[string]bid.Bid{}
				for _, b := range input {
					byID[b.ID] = b
				}

				for _, b := range bids {
					gomega.Expect(b).To(gomega.Equal(byID[b.ID]))
				}
			})
		})
	}

	ginkgo.Describe("cross-algorithm agreement", func() {
		ginkgo.It("produces the same title order from every algorithm", func() {
			input := randomBids(500, 99)

			var expected []string

			for _, alg := range sorter.Algorithms() {
				bids := slices.Clone(input)
				runners[alg](bids)

				if expected == nil {
					expected = bid.Titles(bids)

					continue
				}

				gomega.Expect(bid.Titles(bids)).To(gomega.Equal(expected), alg.DisplayName())
			}
		})
	})

	ginkgo.Describe("MergeSort stability", func() {
		ginkgo.It("keeps equal titles in input order", func() {
			bids := bidsWithTitles(
				"Pennsylvania Ave Properties",
				"Alpine Lot 7",
				"Pennsylvania Ave Properties",
			)
			sorter.MergeSort(bids, 0, len(bids)-1)

			gomega.Expect(bid.Titles(bids)).To(gomega.Equal([]string{
				"Alpine Lot 7",
				"Pennsylvania Ave Properties",
				"Pennsylvania Ave Properties",
			}))
			gomega.Expect(ids(bids)).To(gomega.Equal([]string{"id-1", "id-0", "id-2"}))
		})

		ginkgo.It("matches a stable reference sort on random input", func() {
			input := randomBids(1000, 3)

			bids := slices.Clone(input)
			sorter.MergeSort(bids, 0, len(bids)-1)

			reference := slices.Clone(input)
			slices.SortStableFunc(reference, bid.CompareTitle)

			gomega.Expect(ids(bids)).To(gomega.Equal(ids(reference)))
		})
	})

	ginkgo.Describe("QuickSort with duplicate titles", func() {
		ginkgo.It("orders titles ascending", func() {
			bids := bidsWithTitles(
				"Pennsylvania Ave Properties",
				"Alpine Lot 7",
				"Pennsylvania Ave Properties",
			)
			sorter.QuickSort(bids, 0, len(bids)-1)

			gomega.Expect(bid.Titles(bids)).To(gomega.Equal([]string{
				"Alpine Lot 7",
				"Pennsylvania Ave Properties",
				"Pennsylvania Ave Properties",
			}))
			gomega.Expect(ids(bids)[1:]).To(gomega.ConsistOf("id-0", "id-2"))
		})
	})

	ginkgo.Describe("sub-range sorting", func() {
		ginkgo.It("only reorders the requested range", func() {
			for _, sortRange := range []func([]bid.Bid, int, int){sorter.QuickSort, sorter.MergeSort} {
				bids := bidsWithTitles("z", "d", "c", "b", "a", "y")
				sortRange(bids, 1, 4)
				gomega.Expect(bid.Titles(bids)).To(gomega.Equal([]string{"z", "a", "b", "c", "d", "y"}))
			}
		})

		ginkgo.It("treats inverted and out-of-range bounds as no-ops", func() {
			for _, sortRange := range []func([]bid.Bid, int, int){sorter.QuickSort, sorter.MergeSort} {
				bids := bidsWithTitles("c", "b", "a")
				sortRange(bids, 2, 0)
				sortRange(bids, -1, 2)
				sortRange(bids, 0, 3)
				gomega.Expect(bid.Titles(bids)).To(gomega.Equal([]string{"c", "b", "a"}))
			}
		})
	})

	ginkgo.Describe("Algorithm", func() {
		ginkgo.It("parses names and aliases case-insensitively", func() {
			cases := map[string]sorter.Algorithm{
				"selection": sorter.Selection,
				"Quick":     sorter.Quick,
				"quicksort": sorter.Quick,
				"MERGE":     sorter.Merge,
				"mergesort": sorter.Merge,
				"standard":  sorter.Standard,
				" std ":     sorter.Standard,
			}
			for name, want := range cases {
				got, err := sorter.ParseAlgorithm(name)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(got).To(gomega.Equal(want))
			}
		})

		ginkgo.It("rejects unknown names", func() {
			_, err := sorter.ParseAlgorithm("bogo")
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(errors.Is(err, sorter.ErrUnknownAlgorithm)).To(gomega.BeTrue())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("bogo"))
		})

		ginkgo.It("round-trips String through ParseAlgorithm", func() {
			for _, alg := range sorter.Algorithms() {
				parsed, err := sorter.ParseAlgorithm(alg.String())
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(parsed).To(gomega.Equal(alg))
			}
		})

		ginkgo.It("reports only merge sort as stable", func() {
			gomega.Expect(sorter.Merge.Stable()).To(gomega.BeTrue())
			gomega.Expect(sorter.Quick.Stable()).To(gomega.BeFalse())
			gomega.Expect(sorter.Selection.Stable()).To(gomega.BeFalse())
			gomega.Expect(sorter.Standard.Stable()).To(gomega.BeFalse())
		})

		ginkgo.It("dispatches Sort to each algorithm", func() {
			for _, alg := range sorter.Algorithms() {
				bids := bidsWithTitles("c", "a", "b")
				gomega.Expect(sorter.Sort(alg, bids)).To(gomega.Succeed())
				gomega.Expect(bid.Titles(bids)).To(gomega.Equal([]string{"a", "b", "c"}))
			}
		})

		ginkgo.It("rejects the zero value in Sort without touching bids", func() {
			bids := bidsWithTitles("c", "a")
			err := sorter.Sort(sorter.Algorithm(0), bids)
			gomega.Expect(err).To(gomega.MatchError(sorter.ErrUnknownAlgorithm))
			gomega.Expect(bid.Titles(bids)).To(gomega.Equal([]string{"c", "a"}))
			gomega.Expect(sorter.Algorithm(0).String()).To(gomega.Equal("Algorithm(0)"))
		})
	})
})
