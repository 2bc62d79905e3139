package frogger

import (
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// CarKind is an enumerated visual category for a car.
// It has no effect on simulation; the renderer maps kinds to colors.
type CarKind uint8

const (
	KindSedan CarKind = iota
	KindTaxi
	KindTruck
	KindPolice
	carKindCount
)

// Car is a single moving obstacle. Position is continuous: it may extend
// slightly beyond [0, columns) so cars can slide off one edge and recycle
// at the other without popping.
type Car struct {
	ID       int
	Lane     int
	Position float64
	Velocity float64 // Sign is direction, magnitude is cells per tick
	Kind     CarKind
}

// Traffic owns the full car set and advances it each tick.
// The evaluator only ever reads cars; nothing outside this type mutates them.
type Traffic struct {
	cars       []Car
	columns    int
	wrapMargin float64
}

// NewTraffic generates the car batch for a fresh round.
// Each lane receives carsPerLane cars; direction alternates by lane parity
// (even lane moves right, odd lane moves left). Positions and speeds are
// drawn from rng, so a seeded source yields a reproducible batch.
func NewTraffic(grid Grid, cfg config.TrafficConfig, carsPerLane int, rng *rand.Rand) *Traffic {
	t := &Traffic{
		cars:       make([]Car, 0, grid.Lanes*carsPerLane),
		columns:    grid.Columns,
		wrapMargin: cfg.WrapMargin,
	}
	t.initLanes(grid, cfg, carsPerLane, rng)
	return t
}

// initLanes fills every lane with its car batch.
func (t *Traffic) initLanes(grid Grid, cfg config.TrafficConfig, carsPerLane int, rng *rand.Rand) {
	id := 0
	// Slots divide the traversable span [0, columns-wrapMargin), the same
	// range Advance recycles into, so a fresh batch already satisfies the
	// cyclic position bounds.
	span := (float64(grid.Columns) - cfg.WrapMargin) / float64(carsPerLane)

	for lane := 0; lane < grid.Lanes; lane++ {
		dir := 1.0
		if lane%2 == 1 {
			dir = -1.0
		}

		for slot := 0; slot < carsPerLane; slot++ {
			// Each car starts inside its own slice of the lane span so a
			// fresh batch never spawns stacked on top of itself.
			pos := (float64(slot) + rng.Float64()) * span

			speed := (1 + rng.Float64()*cfg.SpeedJitter) *
				(cfg.BaseSpeed + float64(lane)*cfg.LaneIncrement)

			t.cars = append(t.cars, Car{
				ID:       id,
				Lane:     lane,
				Position: pos,
				Velocity: speed * dir,
				Kind:     CarKind(rng.Intn(int(carKindCount))),
			})
			id++
		}
	}
}

// Advance moves every car by velocity×delta and recycles cars at the road
// edges, producing an endless cyclic stream per lane. After wrapping, every
// position lies in [-1, columns-wrapMargin].
func (t *Traffic) Advance(delta float64) {
	limit := float64(t.columns) - t.wrapMargin

	for i := range t.cars {
		c := &t.cars[i]
		c.Position += c.Velocity * delta

		switch {
		case c.Velocity > 0 && c.Position > limit:
			c.Position = -1
		case c.Velocity < 0 && c.Position < -1:
			c.Position = limit
		}
	}
}

// Cars returns the car set. Callers must treat it as read-only.
func (t *Traffic) Cars() []Car {
	return t.cars
}

// Len returns the number of cars.
func (t *Traffic) Len() int {
	return len(t.cars)
}
