package model

import "fmt"

// DefaultRadiusMeters is the default detection radius for a workplace.
const DefaultRadiusMeters = 100

// Workplace is a geofenced location with a detection radius and automation
// flags. At most one workplace is active at a time; saving a new one
// deactivates the others.
type Workplace struct {
	Key           string  `json:"key"`
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	RadiusMeters  int     `json:"radius_meters"`
	IsActive      bool    `json:"is_active"`
	AutoStart     bool    `json:"auto_start"`
	AutoStop      bool    `json:"auto_stop"`
	NotifyOnEnter bool    `json:"notify_on_enter"`
	NotifyOnExit  bool    `json:"notify_on_exit"`
}

// SetKey sets the database key for this workplace.
func (w *Workplace) SetKey(key string) {
	w.Key = key
}

// GetKey returns the database key for this workplace.
func (w *Workplace) GetKey() string {
	return w.Key
}

// GenerateWorkplaceKey generates a database key for a workplace using a UUID.
func GenerateWorkplaceKey(uuid string) string {
	return fmt.Sprintf("%s:%s", PrefixWorkplace, uuid)
}

// NewWorkplace creates an active workplace with default notification flags.
func NewWorkplace(name string, lat, lon float64, radiusMeters int) *Workplace {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}
	return &Workplace{
		Name:          name,
		Latitude:      lat,
		Longitude:     lon,
		RadiusMeters:  radiusMeters,
		IsActive:      true,
		NotifyOnEnter: true,
		NotifyOnExit:  true,
	}
}
