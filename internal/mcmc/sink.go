package mcmc

// DefaultTrailCapacity bounds the recent-sample trail kept by a Sink.
const DefaultTrailCapacity = 40

// Snapshot is the folded algorithmic state derived from queued events.
// It is recomputed incrementally by FoldAll and read by consumers
// between steps.
type Snapshot struct {
	Current Point

	HasProposal    bool
	Proposal       Point
	ProposalFrom   Point
	ProposalRadius float64

	AcceptFlash bool
	RejectFlash bool

	// Trail holds the most recent accepted samples, oldest first,
	// bounded by the sink's trail capacity.
	Trail []Point

	// Samples is the unbounded accepted-sample log used for
	// statistics and marginal histograms.
	Samples []Point

	Trajectory  []Point
	Momentum    Point
	HasMomentum bool

	GradientPos Point
	GradientDir Point
	HasGradient bool

	LangevinGradient Point
	LangevinDrift    Point
	LangevinNoise    float64
	HasLangevin      bool
}

// Sink is the ordered event mailbox between a Sampler and its
// consumers. Samplers Push events during Step; FoldAll drains the queue
// into the snapshot. Mutation happens only inside Push/FoldAll/Reset,
// all of which run within a single step call.
type Sink struct {
	queue         []Event
	snap          Snapshot
	trailCapacity int
}

func NewSink(trailCapacity int) *Sink {
	if trailCapacity <= 0 {
		trailCapacity = DefaultTrailCapacity
	}
	return &Sink{
		queue:         make([]Event, 0, 16),
		trailCapacity: trailCapacity,
	}
}

func (s *Sink) Push(e Event) {
	s.queue = append(s.queue, e)
}

// Pending reports the number of queued, not yet folded events.
func (s *Sink) Pending() int { return len(s.queue) }

// TrailCapacity returns the configured trail bound.
func (s *Sink) TrailCapacity() int { return s.trailCapacity }

// FoldAll drains the queue in FIFO order into the snapshot. Flash flags
// and per-step overlays (trajectory, langevin decomposition) reflect
// the most recent step only; accepted positions are appended to both
// the bounded trail and the unbounded sample log.
func (s *Sink) FoldAll() {
	if len(s.queue) == 0 {
		return
	}

	// Per-step overlays reset at the start of every fold.
	s.snap.clearOverlays()

	for _, e := range s.queue {
		s.fold(e)
	}
	s.queue = s.queue[:0]
}

func (s *Snapshot) clearOverlays() {
	s.AcceptFlash = false
	s.RejectFlash = false
	s.Trajectory = nil
	s.HasMomentum = false
	s.HasGradient = false
	s.HasLangevin = false
}

func (s *Sink) fold(e Event) {
	switch ev := e.(type) {
	case ProposalEvent:
		s.snap.HasProposal = true
		s.snap.Proposal = ev.To
		s.snap.ProposalFrom = ev.From
		s.snap.ProposalRadius = ev.Radius
	case AcceptEvent:
		s.snap.Current = ev.Pos
		s.snap.HasProposal = false
		s.snap.AcceptFlash = true
		s.appendSample(ev.Pos)
	case RejectEvent:
		s.snap.HasProposal = false
		s.snap.RejectFlash = true
	case TrajectoryEvent:
		s.snap.Trajectory = ev.Path
		s.snap.Momentum = ev.Momentum
		s.snap.HasMomentum = ev.HasMomentum
	case GradientEvent:
		s.snap.GradientPos = ev.Pos
		s.snap.GradientDir = ev.Dir
		s.snap.HasGradient = true
	case LangevinEvent:
		s.snap.LangevinGradient = ev.Gradient
		s.snap.LangevinDrift = ev.Drift
		s.snap.LangevinNoise = ev.NoiseRadius
		s.snap.HasLangevin = true
	}
}

func (s *Sink) appendSample(p Point) {
	s.snap.Trail = append(s.snap.Trail, p)
	if len(s.snap.Trail) > s.trailCapacity {
		s.snap.Trail = s.snap.Trail[1:]
	}
	s.snap.Samples = append(s.snap.Samples, p)
}

// Snapshot returns the current folded state.
func (s *Sink) Snapshot() *Snapshot { return &s.snap }

// Reset clears the queue and every snapshot field.
func (s *Sink) Reset() {
	s.queue = s.queue[:0]
	s.snap = Snapshot{}
}
