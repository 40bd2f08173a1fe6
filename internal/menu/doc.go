// Package menu implements the interactive bidsort loop.
//
// A Menu reads numbered choices from its input, loads bids from a CSV file,
// displays them, sorts them with any of the four algorithms and reports how
// long each operation took. The loaded bids are owned by the Menu; nothing is
// shared through package state.
//
// Usage example:
//
//	m := menu.New(menu.Config{
//	    Input:   os.Stdin,
//	    Output:  os.Stdout,
//	    CSVPath: "eBid_Monthly_Sales.csv",
//	})
//	if err := m.Run(ctx); err != nil {
//	    logrus.WithError(err).Fatal("Menu failed")
//	}
package menu
