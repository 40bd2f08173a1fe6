package sorter

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nicholas-fedor/bidsort/pkg/bid"
)

// Algorithm selects one of the four sorting functions.
//
// The zero value is not a valid algorithm.
type Algorithm int

// Supported algorithms, in menu order.
const (
	Selection Algorithm = iota + 1
	Quick
	Merge
	Standard
)

// Algorithms returns every supported algorithm in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{Selection, Quick, Merge, Standard}
}

// String returns the flag name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Selection:
		return "selection"
	case Quick:
		return "quick"
	case Merge:
		return "merge"
	case Standard:
		return "standard"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// DisplayName returns the human-readable name used in timing output.
func (a Algorithm) DisplayName() string {
	switch a {
	case Selection:
		return "Selection Sort"
	case Quick:
		return "Quick Sort"
	case Merge:
		return "Merge Sort"
	case Standard:
		return "Standard Sort"
	default:
		return a.String()
	}
}

// Stable reports whether the algorithm preserves the order of equal titles.
func (a Algorithm) Stable() bool {
	return a == Merge
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
//
// Accepted names are selection, quick, merge and standard, plus the aliases
// quicksort, mergesort, std and sort.
//
// Parameters:
//   - name: Name to resolve.
//
// Returns:
//   - Algorithm: Matching algorithm.
//   - error: UnknownAlgorithmError if no algorithm matches.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "selection", "selectionsort":
		return Selection, nil
	case "quick", "quicksort":
		return Quick, nil
	case "merge", "mergesort":
		return Merge, nil
	case "standard", "std", "sort":
		return Standard, nil
	default:
		return 0, UnknownAlgorithmError{Name: name}
	}
}

// Sort runs algorithm a over the whole of bids.
//
// Parameters:
//   - a: Algorithm to run.
//   - bids: Slice to sort in place.
//
// Returns:
//   - error: UnknownAlgorithmError for an unsupported value, nil otherwise.
func Sort(a Algorithm, bids []bid.Bid) error {
	logrus.WithFields(logrus.Fields{
		"algorithm": a.String(),
		"count":     len(bids),
	}).Debug("Starting sort")

	switch a {
	case Selection:
		SelectionSort(bids)
	case Quick:
		QuickSort(bids, 0, len(bids)-1)
	case Merge:
		MergeSort(bids, 0, len(bids)-1)
	case Standard:
		StandardSort(bids)
	default:
		return UnknownAlgorithmError{Name: a.String()}
	}

	logrus.WithField("algorithm", a.String()).Debug("Completed sort")

	return nil
}
