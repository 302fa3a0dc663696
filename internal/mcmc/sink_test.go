package mcmc

import "testing"

func TestSinkFoldProposalThenAccept(t *testing.T) {
	s := NewSink(10)

	s.Push(ProposalEvent{From: Point{}, To: Point{X: 1}, Radius: 0.5})
	s.Push(AcceptEvent{Pos: Point{X: 1}})
	s.FoldAll()

	snap := s.Snapshot()
	if snap.Current != (Point{X: 1}) {
		t.Errorf("expected current (1,0), got %v", snap.Current)
	}
	if snap.HasProposal {
		t.Error("proposal should be consumed by accept")
	}
	if !snap.AcceptFlash || snap.RejectFlash {
		t.Error("expected accept flash only")
	}
	if len(snap.Samples) != 1 || len(snap.Trail) != 1 {
		t.Errorf("expected 1 sample, got %d/%d", len(snap.Samples), len(snap.Trail))
	}
	if s.Pending() != 0 {
		t.Errorf("queue should drain, %d pending", s.Pending())
	}
}

func TestSinkFoldReject(t *testing.T) {
	s := NewSink(10)

	s.Push(ProposalEvent{From: Point{}, To: Point{X: 1}})
	s.Push(RejectEvent{Pos: Point{X: 1}})
	s.FoldAll()

	snap := s.Snapshot()
	if !snap.RejectFlash || snap.AcceptFlash {
		t.Error("expected reject flash only")
	}
	if len(snap.Samples) != 0 {
		t.Error("rejected proposals must not enter the sample log")
	}
}

func TestSinkTrailEviction(t *testing.T) {
	s := NewSink(3)

	for i := 0; i < 7; i++ {
		s.Push(AcceptEvent{Pos: Point{X: float64(i)}})
	}
	s.FoldAll()

	snap := s.Snapshot()
	if len(snap.Trail) != 3 {
		t.Fatalf("trail must be capped at 3, got %d", len(snap.Trail))
	}
	// Oldest evicted first.
	if snap.Trail[0].X != 4 || snap.Trail[2].X != 6 {
		t.Errorf("unexpected trail contents: %v", snap.Trail)
	}
	if len(snap.Samples) != 7 {
		t.Errorf("full log must keep all accepts, got %d", len(snap.Samples))
	}
}

func TestSinkOverlaysResetPerFold(t *testing.T) {
	s := NewSink(10)

	s.Push(TrajectoryEvent{Path: []Point{{}, {X: 1}}, Momentum: Point{X: -1}, HasMomentum: true})
	s.Push(LangevinEvent{Drift: Point{X: 0.5}, NoiseRadius: 0.2})
	s.FoldAll()

	snap := s.Snapshot()
	if len(snap.Trajectory) != 2 || !snap.HasMomentum || !snap.HasLangevin {
		t.Fatal("expected trajectory and langevin overlays after first fold")
	}

	s.Push(AcceptEvent{Pos: Point{X: 2}})
	s.FoldAll()

	if snap.Trajectory != nil || snap.HasMomentum || snap.HasLangevin {
		t.Error("overlays must reset on the next fold")
	}
}

func TestSinkReset(t *testing.T) {
	s := NewSink(10)
	s.Push(AcceptEvent{Pos: Point{X: 1}})
	s.FoldAll()
	s.Push(ProposalEvent{To: Point{X: 2}})

	s.Reset()

	if s.Pending() != 0 {
		t.Error("reset must clear the queue")
	}
	snap := s.Snapshot()
	if len(snap.Samples) != 0 || len(snap.Trail) != 0 || snap.Current != (Point{}) {
		t.Error("reset must clear all snapshot fields")
	}
}

func TestSinkGradientEvent(t *testing.T) {
	s := NewSink(10)
	s.Push(GradientEvent{Pos: Point{X: 1}, Dir: Point{Y: -1}})
	s.FoldAll()

	snap := s.Snapshot()
	if !snap.HasGradient || snap.GradientDir != (Point{Y: -1}) {
		t.Errorf("gradient not folded: %+v", snap)
	}
}
