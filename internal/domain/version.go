package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// VersionNumber is a version label counted in tenths: 1 is "0.1", 10 is "1.0".
// Integer arithmetic keeps every increment exact.
type VersionNumber int64

// InitialVersion is the version assigned when an item is created.
const InitialVersion VersionNumber = 1

var ten = decimal.NewFromInt(10)

// ParseVersionNumber parses a decimal string such as "1.3". Values with more
// than one fractional digit are rounded to the nearest tenth; negative values
// are rejected.
func ParseVersionNumber(s string) (VersionNumber, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse version number %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("parse version number %q: negative", s)
	}
	return VersionNumber(d.Mul(ten).Round(0).IntPart()), nil
}

// Next returns the version that follows v (v + 0.1).
func (v VersionNumber) Next() VersionNumber {
	return v + 1
}

// String formats v with exactly one fractional digit.
func (v VersionNumber) String() string {
	return decimal.New(int64(v), -1).StringFixed(1)
}

// NextVersionLabel returns the label that follows latest. An empty latest
// (no version recorded) yields "0.1".
func NextVersionLabel(latest string) (string, error) {
	if latest == "" {
		return VersionNumber(0).Next().String(), nil
	}
	v, err := ParseVersionNumber(latest)
	if err != nil {
		return "", err
	}
	return v.Next().String(), nil
}
