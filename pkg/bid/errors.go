package bid

import "errors"

// ErrOpenFile indicates the bid file could not be opened.
var ErrOpenFile = errors.New("failed to open bid file")

// ErrReadCSV indicates the bid file is not valid delimited text.
var ErrReadCSV = errors.New("failed to read bid records")
