package geo

import (
	"fmt"
	"strings"
)

const unknownDisplay = "Ошибка получения координат"

// Distance is either a resolved amount of meters or unknown, for when
// the coordinates of an endpoint could not be determined. A resolved
// zero is a valid value: a restaurant co-located with the customer is
// not a geocoding failure.
type Distance struct {
	meters float64
	known  bool
}

func Resolved(meters float64) Distance {
	return Distance{meters: meters, known: true}
}

func Unknown() Distance {
	return Distance{}
}

func (d Distance) Known() bool {
	return d.known
}

func (d Distance) Meters() float64 {
	return d.meters
}

// Less reports whether d ranks before other: resolved distances sort
// ascending and always ahead of unknown ones.
func (d Distance) Less(other Distance) bool {
	if d.known != other.known {
		return d.known
	}
	return d.known && d.meters < other.meters
}

// String renders the human-readable form: whole meters below one
// kilometer, kilometers with one decimal (trailing ".0" suppressed)
// above it, and an error message for unknown distances.
func (d Distance) String() string {
	if !d.known {
		return unknownDisplay
	}
	if d.meters >= 1000 {
		km := strings.TrimSuffix(fmt.Sprintf("%.1f", d.meters/1000), ".0")
		return km + " км"
	}
	return fmt.Sprintf("%d м", int(d.meters))
}
