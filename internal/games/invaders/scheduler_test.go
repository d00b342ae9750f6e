package invaders

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerOrder(t *testing.T) {
	var s Scheduler
	var got []string

	s.After(60*time.Millisecond, func() { got = append(got, "b") })
	s.After(30*time.Millisecond, func() { got = append(got, "a") })
	s.After(60*time.Millisecond, func() { got = append(got, "c") })

	s.Advance(30 * time.Millisecond)
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("after 30ms ran %v", got)
	}

	s.Advance(30 * time.Millisecond)
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("after 60ms ran %v, expected a b c", got)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
	if s.Now() != 60*time.Millisecond {
		t.Errorf("Now() = %v, expected 60ms", s.Now())
	}
}

func TestSchedulerChainedCallbacks(t *testing.T) {
	var s Scheduler
	ran := 0

	s.After(10*time.Millisecond, func() {
		ran++
		s.After(0, func() { ran++ })
		s.After(50*time.Millisecond, func() { ran++ })
	})

	s.Advance(30 * time.Millisecond)
	if ran != 2 {
		t.Errorf("ran %d callbacks, expected 2", ran)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", s.Pending())
	}
}
