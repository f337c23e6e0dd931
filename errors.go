package blockbuilder

import "errors"

var (
	// ErrInvalidInput is returned when a conversion is requested with
	// parameters it can never satisfy, such as a height above BuildLimit.
	ErrInvalidInput = errors.New("blockbuilder: invalid input")
	// ErrInvalidData is returned when a block sprite is missing from the
	// asset bundle or cannot be decoded.
	ErrInvalidData = errors.New("blockbuilder: invalid data")

	errNotBuilt = errors.New("blockbuilder: Build has not completed")
)
