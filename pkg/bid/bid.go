package bid

import (
	"strings"
)

// Placeholder values used when a manually entered field is left blank.
const (
	UnknownID       = "UNKNOWN"
	UntitledTitle   = "Untitled"
	UnspecifiedFund = "Unspecified"
)

// Bid is a single auction record.
//
// Sorting algorithms only ever move bids between positions, they never change fields.
type Bid struct {
	ID     string  // Opaque identifier, not required to be unique.
	Title  string  // Sort key.
	Fund   string  // Category label.
	Amount float64 // Non-negative winning amount.
}

// Titles returns the titles of bids in sequence order.
//
// Parameters:
//   - bids: Sequence to read.
//
// Returns:
//   - []string: One title per bid.
func Titles(bids []Bid) []string {
	titles := make([]string, len(bids))
	for i := range bids {
		titles[i] = bids[i].Title
	}

	return titles
}

// ParseEntry builds a bid from raw manually entered fields.
//
// Blank fields fall back to UnknownID, UntitledTitle and UnspecifiedFund. The amount
// may carry a leading currency symbol; unparseable or negative amounts become zero.
//
// Parameters:
//   - id, title, fund, amount: Raw field text.
//
// Returns:
//   - Bid: Normalized bid.
func ParseEntry(id, title, fund, amount string) Bid {
	entry := Bid{
		ID:     strings.TrimSpace(id),
		Title:  strings.TrimSpace(title),
		Fund:   strings.TrimSpace(fund),
		Amount: ParseAmount(amount),
	}

	if entry.ID == "" {
		entry.ID = UnknownID
	}

	if entry.Title == "" {
		entry.Title = UntitledTitle
	}

	if entry.Fund == "" {
		entry.Fund = UnspecifiedFund
	}

	return entry
}
