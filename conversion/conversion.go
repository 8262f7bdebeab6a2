// Package conversion converts values between distance units and between time units.
package conversion

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownUnit       = errors.New("unknown unit")
	ErrIncompatibleUnits = errors.New("incompatible units")
)

type Family int

const (
	Distance Family = iota
	Time
)

func (f Family) String() string {
	switch f {
	case Distance:
		return "distance"
	case Time:
		return "time"
	default:
		return "unknown"
	}
}

type Unit struct {
	Code   string
	Name   string
	Family Family
}

var (
	Meters  = Unit{Code: "m", Name: "meters", Family: Distance}
	Inches  = Unit{Code: "in", Name: "inches", Family: Distance}
	Feet    = Unit{Code: "ft", Name: "feet", Family: Distance}
	Hours   = Unit{Code: "hr", Name: "hours", Family: Time}
	Minutes = Unit{Code: "min", Name: "minutes", Family: Time}
)

var units = []Unit{Meters, Inches, Feet, Hours, Minutes}

// ParseUnit looks up a unit by its code.
func ParseUnit(code string) (Unit, error) {
	for _, u := range units {
		if u.Code == code {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, code)
}

// Convert converts value from one unit code to another of the same family.
func Convert(value float32, from, to string) (float32, error) {
	fromUnit, err := ParseUnit(from)
	if err != nil {
		return 0, fmt.Errorf("from: %w", err)
	}
	toUnit, err := ParseUnit(to)
	if err != nil {
		return 0, fmt.Errorf("to: %w", err)
	}
	if fromUnit.Family != toUnit.Family {
		return 0, fmt.Errorf("%w: cannot convert %s to %s: value: %v, from: %s, to: %s",
			ErrIncompatibleUnits, fromUnit.Family, toUnit.Family, value, from, to)
	}

	switch {
	case fromUnit == toUnit:
		return value, nil
	case fromUnit == Hours && toUnit == Minutes:
		return value * 60, nil
	case fromUnit == Minutes && toUnit == Hours:
		return value / 60, nil
	case fromUnit == Meters && toUnit == Feet:
		return value * 3.28, nil
	case fromUnit == Meters && toUnit == Inches:
		return value * 3.28 * 12, nil
	case fromUnit == Feet && toUnit == Inches:
		return value * 12, nil
	case fromUnit == Feet && toUnit == Meters:
		return value / 3.28, nil
	case fromUnit == Inches && toUnit == Feet:
		return value / 12, nil
	case fromUnit == Inches && toUnit == Meters:
		return value / 12 / 3.28, nil
	}
	return 0, fmt.Errorf("%w: no conversion from %s to %s", ErrIncompatibleUnits, fromUnit.Name, toUnit.Name)
}
