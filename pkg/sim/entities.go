package sim

import (
	"image/color"

	"github.com/google/uuid"
)

// Vehicle is a car travelling along the road. X is its rear edge, Y its lower
// edge.
type Vehicle struct {
	ID    uuid.UUID
	X     float64
	Y     float64
	Speed float64
	Color color.RGBA
}

// Front returns the x coordinate of the vehicle's leading edge.
func (v Vehicle) Front() float64 {
	return v.X + VehicleWidth
}

// overlapsSpan reports whether the vehicle's footprint touches [start, end]
// with its rear edge, its leading edge, or by straddling the whole span.
func (v Vehicle) overlapsSpan(start, end float64) bool {
	rear, front := v.X, v.Front()
	return (rear >= start && rear <= end) ||
		(front >= start && front <= end) ||
		(rear <= start && front >= end)
}

// Pedestrian is a person walking up the zebra crossing.
type Pedestrian struct {
	ID    uuid.UUID
	X     float64
	Y     float64
	Speed float64
}

// Store owns every live vehicle and pedestrian. Vehicles are kept in spawn
// order; the car-following rule depends on it.
type Store struct {
	vehicles    []Vehicle
	pedestrians []Pedestrian
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{
		vehicles:    []Vehicle{},
		pedestrians: []Pedestrian{},
	}
}

// Vehicles returns the live vehicles, oldest first.
func (s *Store) Vehicles() []Vehicle {
	return s.vehicles
}

// Pedestrians returns the live pedestrians.
func (s *Store) Pedestrians() []Pedestrian {
	return s.pedestrians
}

// AddVehicle appends a vehicle behind every existing one.
func (s *Store) AddVehicle(v Vehicle) {
	s.vehicles = append(s.vehicles, v)
}

// AddPedestrian appends a pedestrian.
func (s *Store) AddPedestrian(p Pedestrian) {
	s.pedestrians = append(s.pedestrians, p)
}

// RemoveVehicles drops every vehicle matched by drop and returns how many
// were removed. The survivors keep their relative order.
func (s *Store) RemoveVehicles(drop func(Vehicle) bool) int {
	kept := s.vehicles[:0]
	for _, v := range s.vehicles {
		if !drop(v) {
			kept = append(kept, v)
		}
	}
	removed := len(s.vehicles) - len(kept)
	s.vehicles = kept
	return removed
}

// RemovePedestrians drops every pedestrian matched by drop and returns how
// many were removed.
func (s *Store) RemovePedestrians(drop func(Pedestrian) bool) int {
	kept := s.pedestrians[:0]
	for _, p := range s.pedestrians {
		if !drop(p) {
			kept = append(kept, p)
		}
	}
	removed := len(s.pedestrians) - len(kept)
	s.pedestrians = kept
	return removed
}

// RemoveVehicle drops the vehicle with the given id.
func (s *Store) RemoveVehicle(id uuid.UUID) bool {
	return s.RemoveVehicles(func(v Vehicle) bool { return v.ID == id }) > 0
}

// ClearPedestrians removes every pedestrian.
func (s *Store) ClearPedestrians() {
	s.pedestrians = s.pedestrians[:0]
}

// Clear empties both collections.
func (s *Store) Clear() {
	s.vehicles = s.vehicles[:0]
	s.pedestrians = s.pedestrians[:0]
}
