// Package validate provides input validation helpers for the Pointeuse CLI.
package validate

import (
	"unicode/utf8"

	"github.com/mapointeuse/pointeuse/internal/errors"
	"github.com/mapointeuse/pointeuse/internal/model"
)

const (
	// MaxWorkplaceNameLength is the maximum length for a workplace name.
	MaxWorkplaceNameLength = 128
	// MaxRadiusMeters caps the detection radius. Larger values make the
	// containment test meaningless.
	MaxRadiusMeters = 10000
)

// WorkplaceName validates a workplace name.
func WorkplaceName(name string) error {
	if name == "" {
		return errors.NewValidationError("name",
			"Workplace name cannot be empty",
			"Provide a name, e.g. 'Office'")
	}
	if utf8.RuneCountInString(name) > MaxWorkplaceNameLength {
		return errors.NewValidationError("name",
			"Workplace name too long",
			"Workplace names must be 128 characters or fewer")
	}
	return nil
}

// Latitude validates a latitude in degrees.
func Latitude(lat float64) error {
	if lat < -90 || lat > 90 {
		return errors.NewValidationError("latitude",
			"Latitude out of range",
			"Latitude must be between -90 and 90")
	}
	return nil
}

// Longitude validates a longitude in degrees.
func Longitude(lon float64) error {
	if lon < -180 || lon > 180 {
		return errors.NewValidationError("longitude",
			"Longitude out of range",
			"Longitude must be between -180 and 180")
	}
	return nil
}

// Radius validates a detection radius in meters.
func Radius(meters int) error {
	if meters <= 0 {
		return errors.NewValidationError("radius",
			"Radius must be positive",
			"Use a radius in meters, e.g. 100")
	}
	if meters > MaxRadiusMeters {
		return errors.NewValidationError("radius",
			"Radius too large",
			"Use a radius of 10000 meters or less")
	}
	return nil
}

// Workplace validates a full workplace record.
func Workplace(w *model.Workplace) error {
	if err := WorkplaceName(w.Name); err != nil {
		return err
	}
	if err := Latitude(w.Latitude); err != nil {
		return err
	}
	if err := Longitude(w.Longitude); err != nil {
		return err
	}
	return Radius(w.RadiusMeters)
}
