// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"errors"
	"strconv"
)

// ErrNotPositiveID is returned by ParsePositiveID for any input that is not a
// canonical positive integer.
var ErrNotPositiveID = errors.New("not a positive integer id")

// ParsePositiveID parses s as a database identifier. Only ASCII digits are
// accepted: no sign, no whitespace, no decimal point, no exponent. The value
// must fit in an int64 and be at least 1.
//
// Example:
//
//	id, err := utils.ParsePositiveID("42")   // 42, nil
//	_, err = utils.ParsePositiveID("1.5")    // ErrNotPositiveID
//	_, err = utils.ParsePositiveID("+7")     // ErrNotPositiveID
func ParsePositiveID(s string) (int64, error) {
	if s == "" {
		return 0, ErrNotPositiveID
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrNotPositiveID
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return 0, ErrNotPositiveID
	}
	return n, nil
}
