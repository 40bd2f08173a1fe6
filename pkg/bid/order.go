package bid

import "strings"

// TitleLess reports whether a sorts before b.
//
// Titles are compared with Go's native string ordering: byte-wise and case-sensitive.
// Every algorithm in pkg/sorter orders bids through this function.
func TitleLess(a, b *Bid) bool {
	return a.Title < b.Title
}

// CompareTitle is the three-way form of TitleLess for library sort functions.
//
// Returns:
//   - int: Negative if a sorts first, positive if b sorts first, zero on equal titles.
func CompareTitle(a, b Bid) int {
	return strings.Compare(a.Title, b.Title)
}

// IsSorted reports whether bids are in non-decreasing title order.
func IsSorted(bids []Bid) bool {
	for i := 1; i < len(bids); i++ {
		if TitleLess(&bids[i], &bids[i-1]) {
			return false
		}
	}

	return true
}
