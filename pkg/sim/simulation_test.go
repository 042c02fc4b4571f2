package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSimulation returns a simulation whose light never changes on its own.
func newTestSimulation(t *testing.T) *Simulation {
	t.Helper()
	cfg := DefaultConfig()
	cfg.CycleTicks = 1 << 20
	return New(cfg, 42)
}

func TestSimulation_VehicleLeavesField(t *testing.T) {
	t.Run("exact speed", func(t *testing.T) {
		s := newTestSimulation(t)
		s.cfg.VehicleSpeed = 1
		require.NoError(t, s.SpawnVehicle())

		for i := 0; i < 860; i++ {
			s.Tick()
		}
		require.Len(t, s.store.Vehicles(), 1)
		assert.Equal(t, 800.0, s.store.Vehicles()[0].X)

		s.Tick()
		assert.Empty(t, s.store.Vehicles())
	})

	t.Run("fractional speed", func(t *testing.T) {
		s := newTestSimulation(t)
		s.cfg.VehicleSpeed = 0.8
		require.NoError(t, s.SpawnVehicle())
		assert.Equal(t, -VehicleWidth, s.store.Vehicles()[0].X)

		ticks := 0
		for len(s.store.Vehicles()) > 0 && ticks < 2000 {
			s.Tick()
			ticks++
		}
		assert.Empty(t, s.store.Vehicles())
		assert.GreaterOrEqual(t, ticks, 1075)
		assert.LessOrEqual(t, ticks, 1077)
	})
}

func TestSimulation_RequestPedestrians(t *testing.T) {
	s := newTestSimulation(t)
	s.light.State = Red

	require.NoError(t, s.RequestPedestrians())

	cfg := s.Config()
	peds := s.store.Pedestrians()
	require.Len(t, peds, PedestrianBatch)
	for _, p := range peds {
		assert.GreaterOrEqual(t, p.X, cfg.ZebraStart+ZebraMargin)
		assert.LessOrEqual(t, p.X, cfg.ZebraEnd-ZebraMargin)
		assert.Equal(t, cfg.RoadBottom-cfg.KerbOffset, p.Y)
		assert.Equal(t, cfg.PedestrianSpeed, p.Speed)
	}
	assert.True(t, s.light.CrossingEnabled)
}

func TestSimulation_RequestPedestriansRejected(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(s *Simulation)
		want     error
		advisory string
	}{
		{
			name:     "green light",
			setup:    func(s *Simulation) {},
			want:     ErrLightGreen,
			advisory: "Pedestrians can only cross on red light",
		},
		{
			name: "vehicle on the crossing",
			setup: func(s *Simulation) {
				s.light.State = Red
				s.store.AddVehicle(Vehicle{X: 300, Y: 300, Speed: 1.5})
			},
			want:     ErrCrossingOccupied,
			advisory: "Cannot add pedestrians while vehicles are in crossing",
		},
		{
			name: "red phase already over",
			setup: func(s *Simulation) {
				s.light.State = Red
				s.light.Timer = s.light.Cycle
			},
			want:     ErrCrossingClosed,
			advisory: "Cannot add pedestrians after timer runs out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSimulation(t)
			tt.setup(s)

			for i := 0; i < 5; i++ {
				err := s.Execute(CmdRequestPedestrians)
				assert.True(t, errors.Is(err, tt.want), "got %v", err)
			}

			assert.Empty(t, s.store.Pedestrians())
			assert.False(t, s.light.CrossingEnabled)
			assert.Equal(t, tt.advisory, s.advisory.Message)
			assert.Equal(t, s.cfg.AdvisoryTicks, s.advisory.Remaining)
		})
	}
}

func TestSimulation_SpawnPedestriansGuards(t *testing.T) {
	s := newTestSimulation(t)
	s.light.State = Red

	assert.ErrorIs(t, s.SpawnPedestrians(), ErrCrossingDisabled)

	s.light.CrossingEnabled = true
	s.store.AddVehicle(Vehicle{X: 250, Y: 300})
	assert.ErrorIs(t, s.SpawnPedestrians(), ErrCrossingOccupied)

	s.light.State = Green
	assert.ErrorIs(t, s.SpawnPedestrians(), ErrLightGreen)

	assert.Empty(t, s.store.Pedestrians())
}

func TestSimulation_VehiclesOnRed(t *testing.T) {
	s := newTestSimulation(t)
	s.light.State = Red
	s.light.Manual = true
	s.store.AddVehicle(Vehicle{X: 250, Y: 300, Speed: 1.5})
	s.store.AddVehicle(Vehicle{X: 100, Y: 260, Speed: 1.5})

	s.Tick()
	assert.Equal(t, 251.5, s.store.Vehicles()[0].X, "a vehicle on the crossing keeps going")

	for i := 0; i < 200; i++ {
		s.Tick()
	}
	waiting := s.store.Vehicles()[1]
	assert.Equal(t, 218.5, waiting.X)
	assert.Less(t, waiting.Front(), s.cfg.ZebraStart)
}

func TestSimulation_CarFollowing(t *testing.T) {
	t.Run("too close behind", func(t *testing.T) {
		s := newTestSimulation(t)
		s.store.AddVehicle(Vehicle{X: 100, Y: 300, Speed: 1.5})
		s.store.AddVehicle(Vehicle{X: 30, Y: 300, Speed: 1.5})

		s.Tick()

		assert.Equal(t, 101.5, s.store.Vehicles()[0].X)
		assert.Equal(t, 30.0, s.store.Vehicles()[1].X)
	})

	t.Run("gap opens after the leader moves", func(t *testing.T) {
		s := newTestSimulation(t)
		s.store.AddVehicle(Vehicle{X: 110, Y: 300, Speed: 1.5})
		s.store.AddVehicle(Vehicle{X: 30, Y: 300, Speed: 1.5})

		s.Tick()

		assert.Equal(t, 111.5, s.store.Vehicles()[0].X)
		assert.Equal(t, 31.5, s.store.Vehicles()[1].X)
	})

	t.Run("queue behind a red light", func(t *testing.T) {
		s := newTestSimulation(t)
		s.light.State = Red
		s.light.Manual = true
		for i := 0; i < 3; i++ {
			require.NoError(t, s.SpawnVehicle())
			for j := 0; j < 60; j++ {
				s.Tick()
			}
		}
		for i := 0; i < 600; i++ {
			s.Tick()
		}

		vs := s.store.Vehicles()
		require.Len(t, vs, 3)
		for i := 1; i < len(vs); i++ {
			gap := vs[i-1].X - vs[i].Front()
			assert.GreaterOrEqual(t, gap, 0.0, "vehicle %d overlaps the one ahead", i)
			assert.Less(t, gap, FollowingGap+s.cfg.VehicleSpeed)
		}
	})
}

func TestSimulation_PedestriansHoldRed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CycleTicks = 10
	s := New(cfg, 7)

	for i := 0; i < 10; i++ {
		s.Tick()
	}
	require.Equal(t, Red, s.Light())

	require.NoError(t, s.Execute(CmdRequestPedestrians))

	ticks := 0
	for len(s.store.Pedestrians()) > 0 {
		s.Tick()
		ticks++
		require.Less(t, ticks, 1000)
		if len(s.store.Pedestrians()) > 0 {
			assert.Equal(t, Red, s.Light())
		}
	}
	assert.Equal(t, 441, ticks)
	assert.Equal(t, Red, s.Light())
	assert.True(t, s.light.Held)
	assert.Equal(t, "Waiting for pedestrians to cross...", s.advisory.Message)

	s.Tick()
	assert.Equal(t, Green, s.Light())
	assert.Equal(t, 0, s.light.Timer)
	assert.False(t, s.light.Held)
	assert.False(t, s.light.CrossingEnabled)
}

func TestSimulation_PedestriansWaitForVehicles(t *testing.T) {
	s := newTestSimulation(t)
	s.light.State = Red
	s.light.Manual = true
	require.NoError(t, s.RequestPedestrians())

	s.store.AddVehicle(Vehicle{X: 250, Y: 380, Speed: 0})
	before := s.store.Pedestrians()[0].Y
	s.Tick()
	assert.Equal(t, before, s.store.Pedestrians()[0].Y)

	s.store.RemoveVehicles(func(Vehicle) bool { return true })
	s.Tick()
	assert.Equal(t, before+s.cfg.PedestrianSpeed, s.store.Pedestrians()[0].Y)
}

func TestSimulation_FlipClearsPedestrians(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CycleTicks = 2
	s := New(cfg, 1)
	s.store.AddPedestrian(Pedestrian{X: 300, Y: 100, Speed: 0.5})

	s.Tick()
	assert.Len(t, s.store.Pedestrians(), 1)

	s.Tick()
	assert.Equal(t, Red, s.Light())
	assert.Empty(t, s.store.Pedestrians())
}

func TestSimulation_Accident(t *testing.T) {
	s := newTestSimulation(t)
	accidents := 0
	s.Events().Subscribe(EventAccident, func(Event) { accidents++ })

	s.store.AddVehicle(Vehicle{X: 300, Y: 250, Speed: 1.5})
	s.store.AddPedestrian(Pedestrian{X: 330, Y: 270, Speed: 0.5})

	s.Tick()
	require.True(t, s.Halted())
	assert.Equal(t, 1, accidents)

	frozen := s.Snapshot()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	after := s.Snapshot()
	assert.Equal(t, frozen.Vehicles, after.Vehicles)
	assert.Equal(t, frozen.Pedestrians, after.Pedestrians)
	assert.Equal(t, frozen.SecondsToSwitch, after.SecondsToSwitch)
	assert.True(t, after.Halted)
	assert.Equal(t, 1, accidents)

	assert.ErrorIs(t, s.Execute(CmdSpawnVehicle), ErrHalted)
	assert.ErrorIs(t, s.Execute(CmdToggleLightMode), ErrHalted)
	assert.ErrorIs(t, s.Execute(CmdRequestPedestrians), ErrHalted)
	assert.Len(t, s.store.Vehicles(), 1)
	assert.NoError(t, s.Execute(CmdQuit))

	require.NoError(t, s.Execute(CmdReset))
	assert.False(t, s.Halted())
	assert.Empty(t, s.store.Vehicles())
	assert.Empty(t, s.store.Pedestrians())
}

func TestSimulation_QuitOnlyWhenHalted(t *testing.T) {
	s := newTestSimulation(t)

	err := s.Execute(CmdQuit)

	assert.ErrorIs(t, err, ErrNotHalted)
	assert.Empty(t, s.advisory.Message)
}

func TestSimulation_ResetIdempotent(t *testing.T) {
	s := newTestSimulation(t)
	require.NoError(t, s.SpawnVehicle())
	require.NoError(t, s.Execute(CmdToggleLightMode))
	require.NoError(t, s.RequestPedestrians())
	for i := 0; i < 30; i++ {
		s.Tick()
	}

	s.Reset()
	once := s.Snapshot()
	s.Reset()
	twice := s.Snapshot()

	assert.Equal(t, once, twice)
	assert.Empty(t, twice.Vehicles)
	assert.Empty(t, twice.Pedestrians)
	assert.Equal(t, Green, twice.Light)
	assert.False(t, twice.Manual)
	assert.False(t, twice.Halted)
	assert.False(t, twice.CrossingEnabled)
	assert.Equal(t, 0, s.light.Timer)
}

func TestSimulation_ToggleLightMode(t *testing.T) {
	s := New(DefaultConfig(), 3)
	changes := 0
	s.Events().Subscribe(EventLightChanged, func(e Event) {
		changes++
		assert.True(t, e.Manual)
		assert.Equal(t, Red, e.Light)
	})

	require.NoError(t, s.Execute(CmdToggleLightMode))
	assert.Equal(t, Red, s.Light())

	for i := 0; i < 2*DefaultCycleTicks; i++ {
		s.Tick()
	}
	assert.Equal(t, Red, s.Light())
	assert.Equal(t, 0, s.light.Timer)

	require.NoError(t, s.Execute(CmdToggleLightMode))
	assert.Equal(t, Red, s.Light())
	assert.False(t, s.light.Manual)
	assert.Equal(t, 1, changes)
}

func TestSimulation_AdvisoryCountdown(t *testing.T) {
	s := newTestSimulation(t)
	_ = s.Execute(CmdRequestPedestrians)
	require.True(t, s.advisory.Active())

	s.Tick()
	assert.Equal(t, s.cfg.AdvisoryTicks-1, s.advisory.Remaining)

	for i := 0; i < s.cfg.AdvisoryTicks; i++ {
		s.Tick()
	}
	assert.False(t, s.advisory.Active())
	assert.Equal(t, 0, s.advisory.Remaining)
}

func TestSimulation_Resize(t *testing.T) {
	s := New(DefaultConfig(), 3)

	s.Resize(1600, 1200)

	cfg := s.Config()
	assert.Equal(t, 560.0, cfg.ZebraStart)
	assert.Equal(t, 720.0, cfg.ZebraEnd)
	assert.Equal(t, 400.0, cfg.RoadBottom)
	assert.Equal(t, 800.0, cfg.RoadTop)
	assert.Equal(t, DefaultVehicleSpeed, cfg.VehicleSpeed)
	assert.Equal(t, DefaultCycleTicks, cfg.CycleTicks)
}

func TestSimulation_SnapshotIsCopy(t *testing.T) {
	s := newTestSimulation(t)
	require.NoError(t, s.SpawnVehicle())

	snap := s.Snapshot()
	snap.Vehicles[0].X = 500

	assert.Equal(t, -VehicleWidth, s.store.Vehicles()[0].X)
}
