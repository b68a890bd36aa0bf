package domain

import "math"

type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) DistanceTo(other Vec2) float64 {
	return v.Sub(other).Magnitude()
}

type ActorParameters struct {
	MaxRunSpeed            float64
	MaxChargedAcceleration float64
}

// ActorSnapshot is the host's read-only view of the actor for one frame.
type ActorSnapshot struct {
	CurrentTask  TaskIndex
	Speed        float64
	Acceleration float64
	Position     Vec2
	Parameters   ActorParameters
}
