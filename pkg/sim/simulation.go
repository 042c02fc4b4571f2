package sim

// Simulation is the whole state of one crossing: entities, light, accident
// flag and the advisory line. It is driven from a single goroutine; nothing
// in it is safe for concurrent use.
type Simulation struct {
	cfg      Config
	store    *Store
	light    *LightController
	spawner  *Spawner
	events   *EventBus
	advisory Advisory

	accident  bool
	collision Collision
	ticks     uint64
}

// New creates a running simulation with a green light and no entities.
func New(cfg Config, seed int64) *Simulation {
	return &Simulation{
		cfg:     cfg,
		store:   NewStore(),
		light:   NewLightController(cfg.CycleTicks),
		spawner: NewSpawner(seed),
		events:  NewEventBus(),
	}
}

// Events returns the bus the simulation reports on.
func (s *Simulation) Events() *EventBus {
	return s.events
}

// Config returns the current configuration.
func (s *Simulation) Config() Config {
	return s.cfg
}

// Halted reports whether an accident has stopped the simulation.
func (s *Simulation) Halted() bool {
	return s.accident
}

// Light returns the light's current colour.
func (s *Simulation) Light() LightState {
	return s.light.State
}

// Tick advances the simulation by one frame: light, collisions, vehicles,
// pedestrians, in that order. A halted simulation only counts down the
// advisory.
func (s *Simulation) Tick() {
	s.ticks++
	if !s.accident {
		s.advanceLight()
		s.detectCollision()
		if n := moveVehicles(s.store, s.light.State, s.cfg); n > 0 {
			s.events.Emit(Event{Type: EventVehiclesLeft, Count: n})
		}
		if n := movePedestrians(s.store, s.light, s.cfg); n > 0 {
			s.events.Emit(Event{Type: EventPedestriansCrossed, Count: n})
		}
	}
	s.advisory.Countdown()
}

func (s *Simulation) advanceLight() {
	switch s.light.Advance(len(s.store.pedestrians) > 0) {
	case StepFlipped:
		s.store.ClearPedestrians()
		s.events.Emit(Event{Type: EventLightChanged, Light: s.light.State})
	case StepHoldStarted:
		s.advisory.Post("Waiting for pedestrians to cross...", s.cfg.AdvisoryTicks)
		s.events.Emit(Event{Type: EventPedestrianHold, Count: len(s.store.pedestrians)})
	case StepHeld:
		s.advisory.Post("Waiting for pedestrians to cross...", s.cfg.AdvisoryTicks)
	}
}

func (s *Simulation) detectCollision() {
	c, hit := DetectCollision(s.store.vehicles, s.store.pedestrians)
	if !hit {
		return
	}
	s.accident = true
	s.collision = c
	s.events.Emit(Event{Type: EventAccident, Collision: c})
}

// Execute applies an operator command. A refused command returns a
// *RejectedError and, when it carries advisory text, shows it.
func (s *Simulation) Execute(cmd Command) error {
	var err error
	switch cmd {
	case CmdToggleLightMode:
		err = s.ToggleLightMode()
	case CmdRequestPedestrians:
		err = s.RequestPedestrians()
	case CmdSpawnVehicle:
		err = s.SpawnVehicle()
	case CmdReset:
		s.Reset()
	case CmdQuit:
		if !s.accident {
			err = reject(RejectNotHalted, cmd)
		}
	}
	if err != nil {
		s.refuse(err)
	}
	return err
}

func (s *Simulation) refuse(err error) {
	if rerr, ok := err.(*RejectedError); ok {
		if msg := rerr.Advisory(); msg != "" {
			s.advisory.Post(msg, s.cfg.AdvisoryTicks)
		}
	}
	s.events.Emit(Event{Type: EventRejected, Err: err})
}

// ToggleLightMode switches between automatic and manual light control.
func (s *Simulation) ToggleLightMode() error {
	if s.accident {
		return reject(RejectHalted, CmdToggleLightMode)
	}
	changed := s.light.ToggleMode()
	if changed {
		s.events.Emit(Event{Type: EventLightChanged, Light: s.light.State, Manual: s.light.Manual})
	}
	return nil
}

// RequestPedestrians lets a batch of pedestrians onto the crossing. It is
// refused on green, while a vehicle is on the stripes, and once the red
// phase has run out.
func (s *Simulation) RequestPedestrians() error {
	const cmd = CmdRequestPedestrians
	switch {
	case s.accident:
		return reject(RejectHalted, cmd)
	case s.light.State != Red:
		return reject(RejectLightGreen, cmd)
	case s.crossingOccupied():
		return reject(RejectCrossingOccupied, cmd)
	case !s.light.CanPermitCrossing():
		return reject(RejectCrossingClosed, cmd)
	}
	s.light.CrossingEnabled = true
	return s.SpawnPedestrians()
}

// SpawnPedestrians adds a batch of pedestrians at the kerb. It changes
// nothing unless the light is red, the crossing has been enabled and no
// vehicle is on it.
func (s *Simulation) SpawnPedestrians() error {
	const cmd = CmdRequestPedestrians
	switch {
	case s.accident:
		return reject(RejectHalted, cmd)
	case s.light.State != Red:
		return reject(RejectLightGreen, cmd)
	case !s.light.CrossingEnabled:
		return reject(RejectCrossingDisabled, cmd)
	case s.crossingOccupied():
		return reject(RejectCrossingOccupied, cmd)
	}
	batch := s.spawner.Pedestrians(s.cfg)
	for _, p := range batch {
		s.store.AddPedestrian(p)
	}
	s.events.Emit(Event{Type: EventPedestriansSpawned, Count: len(batch)})
	return nil
}

// SpawnVehicle adds a vehicle off-screen to the left.
func (s *Simulation) SpawnVehicle() error {
	if s.accident {
		return reject(RejectHalted, CmdSpawnVehicle)
	}
	s.store.AddVehicle(s.spawner.Vehicle(s.cfg))
	s.events.Emit(Event{Type: EventVehicleSpawned, Count: 1})
	return nil
}

// Reset returns to the initial running state: no entities, green light in
// automatic mode, fresh timer. Calling it repeatedly has no further effect.
func (s *Simulation) Reset() {
	s.store.Clear()
	s.light.Reset()
	s.accident = false
	s.collision = Collision{}
	s.advisory = Advisory{}
	s.events.Emit(Event{Type: EventReset})
}

// Resize replaces the configuration with one derived for the new field size.
// Entities keep their positions.
func (s *Simulation) Resize(width, height int) {
	s.cfg = s.cfg.Resize(width, height)
}

func (s *Simulation) crossingOccupied() bool {
	return CrossingOccupied(s.store.vehicles, s.cfg.ZebraStart, s.cfg.ZebraEnd)
}
