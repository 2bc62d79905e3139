package frogger

// Snapshot is a read-only copy of the game model, taken after a tick or an
// input-driven mutation. The renderer and tests consume snapshots; mutating
// one never affects the live game.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int
	Agent     Agent
	Cars      []Car
	Columns   int
	Lanes     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	cars := make([]Car, len(g.traffic.Cars()))
	copy(cars, g.traffic.Cars())

	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
		Agent:     g.agent,
		Cars:      cars,
		Columns:   g.grid.Columns,
		Lanes:     g.grid.Lanes,
	}
}
