package bid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Column positions in the monthly sales export.
const (
	titleColumn  = 0
	idColumn     = 1
	amountColumn = 4
	fundColumn   = 8

	minColumns = fundColumn + 1
)

// LoadCSV reads all bids from the delimited file at path.
//
// Parameters:
//   - path: Location of the CSV export.
//
// Returns:
//   - []Bid: Bids in file order.
//   - error: Non-nil if the file cannot be opened or parsed.
func LoadCSV(path string) ([]Bid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFile, err)
	}
	defer file.Close()

	logrus.WithField("path", path).Debug("Opened bid file")

	return ReadCSV(file)
}

// ReadCSV parses bids from r. The first record is a header and is skipped.
//
// Records with fewer columns than the fund column are skipped with a warning.
//
// Parameters:
//   - r: Source of comma-separated records.
//
// Returns:
//   - []Bid: Bids in input order.
//   - error: Non-nil if the input is malformed.
func ReadCSV(r io.Reader) ([]Bid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []Bid{}, nil
		}

		return nil, fmt.Errorf("%w: %w", ErrReadCSV, err)
	}

	bids := []Bid{}
	line := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		line++

		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrReadCSV, line, err)
		}

		if len(record) < minColumns {
			logrus.WithFields(logrus.Fields{
				"line":    line,
				"columns": len(record),
			}).Warn("Skipping short bid record")

			continue
		}

		bids = append(bids, Bid{
			ID:     strings.TrimSpace(record[idColumn]),
			Title:  strings.TrimSpace(record[titleColumn]),
			Fund:   strings.TrimSpace(record[fundColumn]),
			Amount: ParseAmount(record[amountColumn]),
		})
	}

	logrus.WithField("count", len(bids)).Debug("Parsed bid records")

	return bids, nil
}

// ParseAmount converts a currency string such as "$1,250.00" to a float.
//
// Returns zero for blank, unparseable, non-finite or negative input.
func ParseAmount(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	if cleaned == "" {
		return 0
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		logrus.WithField("amount", raw).WithError(err).Debug("Unparseable amount, using zero")

		return 0
	}

	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}

	return amount
}
