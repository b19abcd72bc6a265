package order

import (
	"errors"
	"fmt"
	"time"
)

const (
	datePrefixFormat = "2006-01-02"

	// SequencePerDay is the size of the per-day sequence space fixed by the
	// 4-digit suffix of the number format.
	SequencePerDay = 10000
)

var (
	ErrInvalidSequence      = errors.New("sequence out of range")
	ErrNumberSpaceExhausted = errors.New("order number space exhausted for date")
)

// Number is a human-sortable order number of the form YYYY-MM-DDNNNN, where
// NNNN is a zero-padded per-day sequence starting at 0000.
type Number string

func NewNumber(date time.Time, sequence int) (Number, error) {
	if sequence < 0 || sequence >= SequencePerDay {
		return "", ErrInvalidSequence
	}
	return Number(fmt.Sprintf("%s%04d", date.Format(datePrefixFormat), sequence)), nil
}

func (n Number) String() string {
	return string(n)
}

// DatePrefix returns the YYYY-MM-DD part of the number.
func (n Number) DatePrefix() string {
	if len(n) < len(datePrefixFormat) {
		return ""
	}
	return string(n[:len(datePrefixFormat)])
}
