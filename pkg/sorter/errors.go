package sorter

import (
	"errors"
)

// ErrUnknownAlgorithm indicates an algorithm name or value that bidsort does not implement.
var ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")

// UnknownAlgorithmError reports the rejected algorithm name.
type UnknownAlgorithmError struct {
	Name string
}

// Error implements the error interface.
func (e UnknownAlgorithmError) Error() string {
	return "unknown sorting algorithm: " + e.Name
}

// Unwrap returns the underlying error for errors.Is compatibility.
func (e UnknownAlgorithmError) Unwrap() error {
	return ErrUnknownAlgorithm
}
