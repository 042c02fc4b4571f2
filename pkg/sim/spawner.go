package sim

import (
	"image/color"
	"math/rand"

	"github.com/google/uuid"
)

// Spawner builds new entities for a given configuration. It owns the random
// source so a seeded run is reproducible.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner seeded with seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// Vehicle returns a car parked fully off-screen to the left, in a random
// lane position inside the road band, with a random colour.
func (sp *Spawner) Vehicle(cfg Config) Vehicle {
	lo := int(cfg.RoadBottom + cfg.LaneMargin)
	hi := int(cfg.RoadTop - cfg.LaneMargin)
	return Vehicle{
		ID:    uuid.New(),
		X:     -VehicleWidth,
		Y:     sp.between(lo, hi),
		Speed: cfg.VehicleSpeed,
		Color: color.RGBA{
			R: uint8(sp.rng.Intn(256)),
			G: uint8(sp.rng.Intn(256)),
			B: uint8(sp.rng.Intn(256)),
			A: 255,
		},
	}
}

// Pedestrians returns a batch waiting on the kerb below the road, spread
// across the crossing.
func (sp *Spawner) Pedestrians(cfg Config) []Pedestrian {
	lo := int(cfg.ZebraStart) + ZebraMargin
	hi := int(cfg.ZebraEnd) - ZebraMargin
	batch := make([]Pedestrian, 0, PedestrianBatch)
	for i := 0; i < PedestrianBatch; i++ {
		batch = append(batch, Pedestrian{
			ID:    uuid.New(),
			X:     sp.between(lo, hi),
			Y:     cfg.RoadBottom - cfg.KerbOffset,
			Speed: cfg.PedestrianSpeed,
		})
	}
	return batch
}

// between draws an integer uniformly from [lo, hi]. A collapsed range (tiny
// windows) yields lo.
func (sp *Spawner) between(lo, hi int) float64 {
	if hi <= lo {
		return float64(lo)
	}
	return float64(lo + sp.rng.Intn(hi-lo+1))
}
