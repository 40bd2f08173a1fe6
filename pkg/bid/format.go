package bid

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders amounts with English digit grouping.
var printer = message.NewPrinter(language.English)

// Format renders b as "id: title | amount | fund".
func Format(b Bid) string {
	return printer.Sprintf("%s: %s | %.2f | %s", b.ID, b.Title, b.Amount, b.Fund)
}
