package sim

// Snapshot is a read-only copy of what the renderer needs after a tick.
type Snapshot struct {
	Config          Config
	Vehicles        []Vehicle
	Pedestrians     []Pedestrian
	Light           LightState
	Manual          bool
	Held            bool
	CrossingEnabled bool
	SecondsToSwitch int
	Halted          bool
	Collision       Collision
	Advisory        Advisory
	Ticks           uint64
}

// Snapshot copies the current state. The slices are not shared with the
// simulation.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Config:          s.cfg,
		Vehicles:        append([]Vehicle(nil), s.store.vehicles...),
		Pedestrians:     append([]Pedestrian(nil), s.store.pedestrians...),
		Light:           s.light.State,
		Manual:          s.light.Manual,
		Held:            s.light.Held,
		CrossingEnabled: s.light.CrossingEnabled,
		SecondsToSwitch: s.light.SecondsToSwitch(),
		Halted:          s.accident,
		Collision:       s.collision,
		Advisory:        s.advisory,
		Ticks:           s.ticks,
	}
}
