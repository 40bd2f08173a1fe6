// Package sorter provides the four bid sorting algorithms compared by bidsort.
// Each algorithm is an independent free function ordering bids ascending by title
// through bid.TitleLess.
//
// Key components:
//   - SelectionSort: In place, quadratic, minimal extra memory.
//   - QuickSort: In place, Hoare partition around the midpoint title.
//   - MergeSort: Stable, out-of-place merge through temporary buffers.
//   - StandardSort: The Go standard library sort, used as a baseline.
//   - Algorithm: Tagged enum letting drivers pick exactly one of the above.
//
// Usage example:
//
//	sorter.QuickSort(bids, 0, len(bids)-1)
//
//	alg, err := sorter.ParseAlgorithm("merge")
//	if err != nil {
//	    logrus.WithError(err).Error("Unknown algorithm")
//	}
//	_ = sorter.Sort(alg, bids)
//
// None of the algorithms measure time or log from inside their loops; drivers wrap
// calls with pkg/session to time them.
package sorter
