package sim

import "math"

// Collision names the first vehicle/pedestrian pair found too close together.
type Collision struct {
	Vehicle    Vehicle
	Pedestrian Pedestrian
}

func collides(v Vehicle, p Pedestrian) bool {
	return math.Abs(v.X-p.X) < CollisionRangeX && math.Abs(v.Y-p.Y) < CollisionRangeY
}

// DetectCollision scans every pair and stops at the first hit.
func DetectCollision(vehicles []Vehicle, pedestrians []Pedestrian) (Collision, bool) {
	for _, v := range vehicles {
		for _, p := range pedestrians {
			if collides(v, p) {
				return Collision{Vehicle: v, Pedestrian: p}, true
			}
		}
	}
	return Collision{}, false
}
