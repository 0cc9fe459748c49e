package models

// Driver holds the public details of the person operating a vehicle.
type Driver struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// Vehicle represents a bookable vehicle in the catalog.
// The catalog is seeded once at startup and never mutated afterwards.
type Vehicle struct {
	ID       int    `json:"id"`
	Type     string `json:"type"` // "Sedan", "SUV" or "Van"
	Capacity int    `json:"capacity"`
	Driver   Driver `json:"driver"`
	ImageURL string `json:"imageUrl"`
}
