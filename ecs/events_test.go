package ecs

import "testing"

func TestEventQueueDrainType(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: "a", Data: 1})
	q.Push(Event{Type: "b", Data: 2})
	q.Push(Event{Type: "a", Data: 3})

	got := q.DrainType("a")
	if len(got) != 2 || got[0].Data != 1 || got[1].Data != 3 {
		t.Fatalf("unexpected drained events %v", got)
	}
	if q.Len() != 1 {
		t.Fatalf("expected one remaining event, got %d", q.Len())
	}
	rest := q.Drain()
	if len(rest) != 1 || rest[0].Type != "b" {
		t.Fatalf("unexpected remaining events %v", rest)
	}
	if q.Drain() != nil {
		t.Fatal("expected empty queue")
	}
}

type countingSystem struct {
	calls int
	push  bool
}

func (s *countingSystem) Update(w *World) {
	s.calls++
	if s.push {
		w.Events().Push(Event{Type: "tick"})
	}
}

func TestSchedulerRunsSystemsAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	a := &countingSystem{push: true}
	b := &countingSystem{}
	s := NewScheduler(a, nil)
	s.Add(b)
	s.Add(nil)

	s.Update(w)

	if a.calls != 1 || b.calls != 1 {
		t.Fatalf("expected each system once, got %d %d", a.calls, b.calls)
	}
	if len(s.Systems()) != 2 {
		t.Fatalf("expected nil systems to be skipped, got %d", len(s.Systems()))
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected events flushed after update, got %d", w.Events().Len())
	}
}
