package sim

// blockedByTraffic reports whether an earlier-spawned vehicle sits less than
// FollowingGap ahead of vehicles[i].
func blockedByTraffic(vehicles []Vehicle, i int) bool {
	self := vehicles[i]
	for _, front := range vehicles[:i] {
		if front.X > self.X && front.X-self.Front() < FollowingGap {
			return true
		}
	}
	return false
}

// vehicleStep returns how far v may move this tick under the given light.
// On red a vehicle already touching the crossing clears it; one still short
// of it creeps up to the stop line and waits there.
func vehicleStep(v Vehicle, light LightState, cfg Config) float64 {
	if light == Green {
		return v.Speed
	}
	if v.X >= cfg.ZebraStart || v.Front() >= cfg.ZebraStart {
		return v.Speed
	}
	if v.X+v.Speed < cfg.StopLine() {
		return v.Speed
	}
	return 0
}

// moveVehicles advances every vehicle in spawn order. Vehicles ahead move
// first, so the gap test sees their updated positions. Vehicles past the
// right edge are removed afterwards; the count is returned.
func moveVehicles(store *Store, light LightState, cfg Config) int {
	vehicles := store.vehicles
	for i := range vehicles {
		if blockedByTraffic(vehicles, i) {
			continue
		}
		vehicles[i].X += vehicleStep(vehicles[i], light, cfg)
	}
	return store.RemoveVehicles(func(v Vehicle) bool {
		return v.X > cfg.Width
	})
}

// movePedestrians walks the pedestrians up the crossing while it is free of
// vehicles and they have been let onto it on red. Those past the road's
// upper edge have crossed and are removed; the count is returned.
func movePedestrians(store *Store, lc *LightController, cfg Config) int {
	walk := lc.State == Red && lc.CrossingEnabled &&
		!CrossingOccupied(store.vehicles, cfg.ZebraStart, cfg.ZebraEnd)
	if walk {
		for i := range store.pedestrians {
			store.pedestrians[i].Y += store.pedestrians[i].Speed
		}
	}
	return store.RemovePedestrians(func(p Pedestrian) bool {
		return p.Y > cfg.RoadTop
	})
}
