package invaders

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestFleetLayout(t *testing.T) {
	s, _ := newQuietSim()
	f := s.Fleet()

	if len(f.Aliens()) != 55 {
		t.Fatalf("fleet has %d aliens, expected 55", len(f.Aliens()))
	}
	box, ok := f.Box()
	if !ok {
		t.Fatal("fresh fleet should have a box")
	}
	want := core.Box{Left: 0, Top: 0, Right: 860, Bottom: 280}
	if box != want {
		t.Errorf("Box() = %+v, expected %+v", box, want)
	}

	squid := f.Alien(0, 5)
	if squid.Box() != (core.Box{Left: 410, Top: 0, Right: 450, Bottom: 40}) {
		t.Errorf("squid (0,5) box = %+v", squid.Box())
	}
	if squid.Row() != 0 || squid.Column() != 5 {
		t.Errorf("squid at (%d, %d)", squid.Row(), squid.Column())
	}
}

func TestFleetAlienOutOfRangePanics(t *testing.T) {
	s, _ := newQuietSim()

	defer func() {
		if recover() == nil {
			t.Error("Alien(5, 0) should panic")
		}
	}()
	s.Fleet().Alien(5, 0)
}

func TestFleetRemoveUnknownBombPanics(t *testing.T) {
	s, _ := newQuietSim()
	stray := newBomb(s.w, s.fleet, s.fleet.Alien(4, 4))

	defer func() {
		if recover() == nil {
			t.Error("killing a bomb the fleet never dropped should panic")
		}
	}()
	stray.Kill()
}

func TestFleetBoxSkipsDeadAliens(t *testing.T) {
	s, _ := newQuietSim()
	f := s.Fleet()
	for row := 0; row < 5; row++ {
		f.Alien(row, 0).Kill()
		f.Alien(row, 10).Kill()
	}
	for col := 0; col < 11; col++ {
		f.Alien(4, col).Kill()
	}

	box, _ := f.Box()
	want := core.Box{Left: 80, Top: 0, Right: 780, Bottom: 220}
	if box != want {
		t.Errorf("Box() = %+v, expected %+v", box, want)
	}

	for _, a := range f.Aliens() {
		a.Kill()
	}
	if _, ok := f.Box(); ok {
		t.Error("Box() of a dead fleet should report false")
	}
	if !f.Cleared() {
		t.Error("Cleared() should be true once every alien is dead")
	}
}

func TestLowestAliveInColumn(t *testing.T) {
	s, _ := newQuietSim()
	f := s.Fleet()

	if a := f.LowestAliveInColumn(3); a != f.Alien(4, 3) {
		t.Error("lowest of a full column should be the bottom row")
	}

	f.Alien(4, 3).Kill()
	f.Alien(3, 3).Explode()
	if a := f.LowestAliveInColumn(3); a != f.Alien(2, 3) {
		t.Error("dead and exploding aliens cannot drop bombs")
	}

	for row := 0; row < 5; row++ {
		f.Alien(row, 7).Kill()
	}
	if f.LowestAliveInColumn(7) != nil {
		t.Error("empty column should have no lowest alien")
	}
}

func TestManageTouchedAliensBy(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		worth    int
	}{
		{"squid", 0, 2, 30},
		{"crab", 1, 8, 20},
		{"crab lower band", 2, 0, 20},
		{"octopus", 3, 5, 10},
		{"octopus bottom", 4, 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, snd := newQuietSim()
			f, d := s.Fleet(), s.Defender()
			target := f.Alien(tc.row, tc.col)

			d.Fire()
			box := target.Box()
			d.Bullet().box = core.NewBox(box.CenterX()-2, box.CenterY()-10, 5, 20)

			if hit := f.ManageTouchedAliensBy(d); hit != target {
				t.Fatalf("ManageTouchedAliensBy() hit %v, expected the target", hit)
			}
			if !target.Exploding() {
				t.Error("target should be exploding")
			}
			if d.Bullet() != nil {
				t.Error("bullet should be destroyed on hit")
			}
			if d.Score() != tc.worth {
				t.Errorf("Score() = %d, expected %d", d.Score(), tc.worth)
			}
			if len(snd.withPrefix(SoundAlienKilled)) != 1 {
				t.Error("alien kill sound should play once")
			}

			if f.ManageTouchedAliensBy(d) != nil || d.Score() != tc.worth {
				t.Error("second call without a bullet should change nothing")
			}
		})
	}
}

func TestManageTouchedAliensByFirstInScanOrder(t *testing.T) {
	s, _ := newQuietSim()
	f, d := s.Fleet(), s.Defender()

	// A tall bullet spanning rows 0 and 1 of column 4.
	d.Fire()
	d.Bullet().box = core.NewBox(f.Alien(0, 4).Box().CenterX(), 30, 5, 40)

	if hit := f.ManageTouchedAliensBy(d); hit != f.Alien(0, 4) {
		t.Fatal("row-major scan should resolve the upper alien first")
	}
	if f.Alien(1, 4).Exploding() || d.Score() != 30 {
		t.Error("only one alien may be hit per call")
	}
}

func TestFleetSweepAndDrop(t *testing.T) {
	s, _ := newQuietSim()
	f := s.Fleet()
	width := s.Settings().Width
	flips := 0

	for i := 0; i < 400 && !s.GameOver(); i++ {
		before, _ := f.Box()
		dx := f.Direction()
		firstAlien := f.Alien(0, 0).Box()

		s.Tick(Input{})

		after, _ := f.Box()
		if before.Left+dx <= 0 || before.Right+dx >= width {
			flips++
			if after != before.Translate(0, s.Settings().FleetDrop) {
				t.Fatalf("tick %d: flip moved box %+v to %+v", i, before, after)
			}
			if f.Direction() != -dx {
				t.Fatalf("tick %d: direction %d after flip from %d", i, f.Direction(), dx)
			}
		} else {
			if after != before.Translate(dx, 0) {
				t.Fatalf("tick %d: sweep moved box %+v to %+v", i, before, after)
			}
			if f.Alien(0, 0).Box() != firstAlien.Translate(dx, 0) {
				t.Fatalf("tick %d: alien did not follow the sweep", i)
			}
		}
		if after.Left < 0 || after.Right > width {
			t.Fatalf("tick %d: fleet left the playfield at %+v", i, after)
		}
	}

	if flips < 2 {
		t.Errorf("saw %d flips in 400 ticks, expected at least 2", flips)
	}
}

func TestFleetAnimationCadence(t *testing.T) {
	s, snd := newQuietSim()

	s.Tick(Input{})
	if s.Fleet().Alien(0, 0).Frame() != 1 {
		t.Error("first tick should animate the fleet")
	}

	for i := 1; i < 200; i++ {
		s.Tick(Input{})
	}

	got := snd.withPrefix("alien_move_")
	want := []string{
		"alien_move_1", "alien_move_2", "alien_move_3", "alien_move_4",
		"alien_move_1", "alien_move_2", "alien_move_3", "alien_move_4",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("move sounds = %v, expected %v", got, want)
	}
}

func TestBombDropPolicy(t *testing.T) {
	snd := &recordingSound{}
	s := NewSim(DefaultSettings(), rand.New(rand.NewSource(7)), snd)
	f := s.Fleet()

	f.Alien(4, 3).Kill()
	f.Alien(3, 3).Kill()
	for row := 0; row < 5; row++ {
		f.Alien(row, 7).Kill()
	}

	seen := map[*Bomb]bool{}
	dropped := 0
	for i := 0; i < 3000 && !s.GameOver(); i++ {
		s.Tick(Input{})

		bombs := f.Bombs()
		if len(bombs) > 3 {
			t.Fatalf("tick %d: %d active bombs", i, len(bombs))
		}

		columns := map[int]bool{}
		for _, b := range bombs {
			if seen[b] {
				continue
			}
			seen[b] = true
			dropped++

			src := b.Source()
			if columns[src.Column()] {
				t.Fatalf("tick %d: two bombs from column %d in one drop", i, src.Column())
			}
			columns[src.Column()] = true
			if src != f.LowestAliveInColumn(src.Column()) {
				t.Fatalf("tick %d: bomb from (%d, %d) which is not the lowest alive alien",
					i, src.Row(), src.Column())
			}
			if src.Column() == 7 {
				t.Fatalf("tick %d: bomb from an empty column", i)
			}
		}
	}

	if dropped == 0 {
		t.Error("no bombs were dropped")
	}
}

func TestBombDropCadence(t *testing.T) {
	s, _ := newQuietSim()
	f := s.Fleet()
	set := s.w.set

	// zeroRand drops nothing, yet every eligible attempt restarts the timer.
	var attempts []time.Duration
	last := f.lastDrop
	for i := 0; i < 100; i++ {
		s.Tick(Input{})
		if len(f.Bombs()) != 0 {
			t.Fatalf("tick %d: %d bombs with a zero count", i, len(f.Bombs()))
		}
		if f.lastDrop != last {
			attempts = append(attempts, f.lastDrop)
			last = f.lastDrop
		}
	}

	if len(attempts) < 5 {
		t.Fatalf("saw %d drop attempts in 3s, expected at least 5", len(attempts))
	}
	if attempts[0] != set.Tick {
		t.Errorf("first attempt at %v, expected the first tick (%v)", attempts[0], set.Tick)
	}
	for i := 1; i < len(attempts); i++ {
		gap := attempts[i] - attempts[i-1]
		if gap < set.BombDelay || gap >= set.BombDelay+set.Tick {
			t.Errorf("attempt %d came %v after the previous one, expected within [%v, %v)",
				i, gap, set.BombDelay, set.BombDelay+set.Tick)
		}
	}
}

func TestBombDropFullSlotsBlockAttempts(t *testing.T) {
	s := NewSim(DefaultSettings(), topRand{}, &recordingSound{})
	f := s.Fleet()
	set := s.w.set

	s.Tick(Input{})
	if len(f.Bombs()) != set.MaxBombs {
		t.Fatalf("first drop made %d bombs, expected %d", len(f.Bombs()), set.MaxBombs)
	}
	first := f.lastDrop

	// Well past BombDelay, while all three bombs are still falling.
	for i := 0; i < 20; i++ {
		s.Tick(Input{})
		if len(f.Bombs()) != set.MaxBombs {
			t.Fatalf("tick %d: %d bombs, expected %d", i, len(f.Bombs()), set.MaxBombs)
		}
		if f.lastDrop != first {
			t.Fatalf("tick %d: drop attempted with every slot taken", i)
		}
	}
}

func TestBombDropWithoutSourcesKeepsTimer(t *testing.T) {
	s, _ := newQuietSim()
	f := s.Fleet()
	for _, a := range f.Aliens() {
		a.Kill()
	}

	before := f.lastDrop
	f.dropBombs(before + 10*s.w.set.BombDelay)

	if f.lastDrop != before {
		t.Errorf("lastDrop = %v, expected %v when no column can drop", f.lastDrop, before)
	}
	if len(f.Bombs()) != 0 {
		t.Errorf("%d bombs dropped from an empty fleet", len(f.Bombs()))
	}
}
