// Package bid defines the bid record sorted by bidsort and the helpers that feed it.
// It owns the single ordering policy shared by every sorting algorithm.
//
// Key components:
//   - Bid: The sortable record (id, title, fund, amount).
//   - TitleLess: Ascending byte-wise title order used by all algorithms.
//   - LoadCSV / ReadCSV: Build a bid sequence from a monthly sales export.
//   - ParseEntry: Build a bid from manually entered fields with defaults.
//   - Format: Render a bid as a single display line.
//
// Usage example:
//
//	bids, err := bid.LoadCSV("eBid_Monthly_Sales.csv")
//	if err != nil {
//	    logrus.WithError(err).Error("Failed to load bids")
//	}
//	for _, b := range bids {
//	    fmt.Println(bid.Format(b))
//	}
//
// The package uses logrus for logging skipped rows and parse fallbacks.
package bid
