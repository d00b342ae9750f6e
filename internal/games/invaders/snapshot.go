package invaders

// Snapshot is the complete simulation state flattened to primitives,
// used to compare runs for determinism.
type Snapshot struct {
	Tick     uint64
	ClockMs  int64
	Wave     int
	GameOver bool

	Score             int
	Lives             int
	DefenderLeft      int
	DefenderAlive     bool
	DefenderExploding bool
	DefenderFrame     int

	// Bullet is Left, Top, Exploding; empty when no bullet is in flight.
	Bullet []int

	FleetDX int
	// Aliens holds 5 ints per grid slot: Alive, Exploding, Left, Top, Frame.
	Aliens []int
	// Bombs holds 5 ints per bomb: Left, Top, Frame, Variant, Exploding.
	Bombs []int
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current simulation state.
func (s *Sim) Snapshot() Snapshot {
	d := s.defender
	snap := Snapshot{
		Tick:              s.ticks,
		ClockMs:           s.clock.Now().Milliseconds(),
		Wave:              s.wave,
		GameOver:          s.gameOver,
		Score:             d.score,
		Lives:             d.lives,
		DefenderLeft:      d.box.Left,
		DefenderAlive:     d.alive,
		DefenderExploding: d.exploding,
		DefenderFrame:     d.frame,
		FleetDX:           s.fleet.dx,
		Aliens:            make([]int, 0, len(s.fleet.aliens)*5),
		Bombs:             make([]int, 0, len(s.fleet.bombs)*5),
	}
	if b := d.bullet; b != nil {
		snap.Bullet = []int{b.box.Left, b.box.Top, flag(b.exploding)}
	}
	for _, a := range s.fleet.aliens {
		snap.Aliens = append(snap.Aliens, flag(a.alive), flag(a.exploding), a.box.Left, a.box.Top, a.frame)
	}
	for _, b := range s.fleet.bombs {
		snap.Bombs = append(snap.Bombs, b.box.Left, b.box.Top, b.frame, int(b.variant), flag(b.exploding))
	}
	return snap
}

// Snapshot returns the running simulation's state.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.ClockMs)                 //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)                    //#nosec G115 -- hash computation
	h = h*31 + uint64(flag(snap.GameOver))          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)                   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)                   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DefenderLeft)            //#nosec G115 -- hash computation
	h = h*31 + uint64(flag(snap.DefenderAlive))     //#nosec G115 -- hash computation
	h = h*31 + uint64(flag(snap.DefenderExploding)) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DefenderFrame)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FleetDX)                 //#nosec G115 -- hash computation

	for _, v := range snap.Bullet {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Aliens {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Bombs {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
