package repository

import "ridelink/models"

// VehicleCatalog provides read access to the static set of bookable vehicles.
type VehicleCatalog interface {
	// All returns every vehicle in catalog order.
	All() []models.Vehicle
	// GetByID returns the vehicle with the given id, or false when absent.
	GetByID(id int) (models.Vehicle, bool)
	// FilterByCapacity returns the vehicles whose capacity is at least minCapacity,
	// preserving catalog order.
	FilterByCapacity(minCapacity int) []models.Vehicle
}

// MemoryVehicleCatalog is an in-memory VehicleCatalog. It is read-only after
// construction, so it needs no locking.
type MemoryVehicleCatalog struct {
	vehicles []models.Vehicle
}

// NewMemoryVehicleCatalog returns a catalog seeded with the standard fleet.
func NewMemoryVehicleCatalog() *MemoryVehicleCatalog {
	return &MemoryVehicleCatalog{vehicles: seedVehicles()}
}

// NewMemoryVehicleCatalogWith returns a catalog over the given vehicles.
// Intended for tests.
func NewMemoryVehicleCatalogWith(vehicles []models.Vehicle) *MemoryVehicleCatalog {
	vs := make([]models.Vehicle, len(vehicles))
	copy(vs, vehicles)
	return &MemoryVehicleCatalog{vehicles: vs}
}

func (c *MemoryVehicleCatalog) All() []models.Vehicle {
	out := make([]models.Vehicle, len(c.vehicles))
	copy(out, c.vehicles)
	return out
}

func (c *MemoryVehicleCatalog) GetByID(id int) (models.Vehicle, bool) {
	for _, v := range c.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

func (c *MemoryVehicleCatalog) FilterByCapacity(minCapacity int) []models.Vehicle {
	var out []models.Vehicle
	for _, v := range c.vehicles {
		if v.Capacity >= minCapacity {
			out = append(out, v)
		}
	}
	return out
}

func seedVehicles() []models.Vehicle {
	return []models.Vehicle{
		{
			ID:       1,
			Type:     "Sedan",
			Capacity: 4,
			Driver:   models.Driver{Name: "Ramesh", Rating: 4.8},
			ImageURL: "https://picsum.photos/600/400?random=1",
		},
		{
			ID:       2,
			Type:     "SUV",
			Capacity: 6,
			Driver:   models.Driver{Name: "Suresh", Rating: 4.9},
			ImageURL: "https://picsum.photos/600/400?random=2",
		},
		{
			ID:       3,
			Type:     "Van",
			Capacity: 10,
			Driver:   models.Driver{Name: "Ganesh", Rating: 4.7},
			ImageURL: "https://picsum.photos/600/400?random=3",
		},
		{
			ID:       4,
			Type:     "Sedan",
			Capacity: 4,
			Driver:   models.Driver{Name: "Mahesh", Rating: 4.6},
			ImageURL: "https://picsum.photos/600/400?random=4",
		},
		{
			ID:       5,
			Type:     "SUV",
			Capacity: 7,
			Driver:   models.Driver{Name: "Rajesh", Rating: 5.0},
			ImageURL: "https://picsum.photos/600/400?random=5",
		},
	}
}
