package sim

// Entity footprints (in world units).
const (
	VehicleWidth     = 60.0
	VehicleHeight    = 30.0
	PedestrianWidth  = 15.0
	PedestrianHeight = 30.0
)

// Traffic rules.
const (
	FollowingGap    = 20.0 // minimum space kept behind the vehicle ahead
	CollisionRangeX = 40.0
	CollisionRangeY = 30.0
	PedestrianBatch = 3
	ZebraMargin     = 10 // pedestrians start this far inside the stripes
	TicksPerSecond  = 60
)

// Defaults used when no settings are supplied.
const (
	DefaultWidth           = 800
	DefaultHeight          = 600
	DefaultVehicleSpeed    = 1.5
	DefaultPedestrianSpeed = 0.5
	DefaultCycleTicks      = 900
	DefaultAdvisoryTicks   = 120
)

// Config is the immutable geometry and rates of one run. World coordinates
// grow rightwards and upwards; the road is a horizontal band and vehicles
// travel from left to right across it.
type Config struct {
	Width  float64
	Height float64

	RoadBottom float64 // lower edge of the road band
	RoadTop    float64 // upper edge of the road band
	ZebraStart float64 // left edge of the crossing stripes
	ZebraEnd   float64 // right edge of the crossing stripes

	LaneMargin float64 // vehicles keep this far inside the road edges
	KerbOffset float64 // pedestrians wait this far below the road

	VehicleSpeed    float64 // units per tick
	PedestrianSpeed float64 // units per tick
	CycleTicks      int     // ticks between automatic light changes
	AdvisoryTicks   int     // ticks an advisory stays on screen
}

// NewConfig derives the road and crossing spans from the field size.
func NewConfig(width, height int, vehicleSpeed, pedestrianSpeed float64, cycleTicks, advisoryTicks int) Config {
	c := Config{
		VehicleSpeed:    vehicleSpeed,
		PedestrianSpeed: pedestrianSpeed,
		CycleTicks:      cycleTicks,
		AdvisoryTicks:   advisoryTicks,
	}
	return c.Resize(width, height)
}

// DefaultConfig returns the configuration of an 800x600 field.
func DefaultConfig() Config {
	return NewConfig(DefaultWidth, DefaultHeight, DefaultVehicleSpeed, DefaultPedestrianSpeed, DefaultCycleTicks, DefaultAdvisoryTicks)
}

// Resize returns a copy of c with every span recomputed for the new field
// size. Rates are carried over unchanged.
func (c Config) Resize(width, height int) Config {
	w, h := float64(width), float64(height)
	c.Width = w
	c.Height = h
	c.ZebraStart = float64(int(0.35 * w))
	c.ZebraEnd = float64(int(0.45 * w))
	c.RoadBottom = float64(height / 3)
	c.RoadTop = float64(2 * height / 3)
	c.LaneMargin = float64(height / 15)
	c.KerbOffset = float64(height / 30)
	return c
}

// StopLine is the furthest a vehicle's rear may creep while it waits for a
// red light.
func (c Config) StopLine() float64 {
	return c.ZebraStart - VehicleWidth
}
