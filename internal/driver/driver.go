package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

// Config controls a batch run.
type Config struct {
	Steps         int
	Seed          int64
	Start         mcmc.Point
	TrailCapacity int
}

// Result summarizes a completed batch run.
type Result struct {
	Chain          []mcmc.Point
	Steps          int
	AcceptanceRate float64
	HasAcceptance  bool
	Elapsed        time.Duration
}

// Driver binds one target to one sampler and steps them strictly
// sequentially. Chain and sink state are reset together whenever the
// sampler, target, or start position changes.
type Driver struct {
	target  mcmc.Target
	sampler mcmc.Sampler
	sink    *mcmc.Sink
	start   mcmc.Point
	playing bool
}

func New(t mcmc.Target, s mcmc.Sampler, trailCapacity int) *Driver {
	d := &Driver{
		target:  t,
		sampler: s,
		sink:    mcmc.NewSink(trailCapacity),
	}
	s.SetTarget(t)
	d.Reset(mcmc.Point{})
	return d
}

// Step performs one unit of sampling work and folds the emitted events.
func (d *Driver) Step() {
	d.sampler.Step(d.sink)
	d.sink.FoldAll()
}

// Reset restarts the chain at start and clears the sink.
func (d *Driver) Reset(start mcmc.Point) {
	d.start = start
	d.sampler.Reset(start)
	d.sink.Reset()
	d.sink.Snapshot().Current = start
}

func (d *Driver) SetTarget(t mcmc.Target) {
	d.target = t
	d.sampler.SetTarget(t)
	d.Reset(d.start)
}

func (d *Driver) SetSampler(s mcmc.Sampler) {
	d.sampler = s
	s.SetTarget(d.target)
	d.Reset(d.start)
}

func (d *Driver) Target() mcmc.Target    { return d.target }
func (d *Driver) Sampler() mcmc.Sampler  { return d.sampler }
func (d *Driver) Snapshot() *mcmc.Snapshot { return d.sink.Snapshot() }
func (d *Driver) Chain() []mcmc.Point    { return d.sampler.Chain() }

// Play/pause gate external pacing; they do not affect Step itself.
func (d *Driver) Play()         { d.playing = true }
func (d *Driver) Pause()        { d.playing = false }
func (d *Driver) Toggle()       { d.playing = !d.playing }
func (d *Driver) Playing() bool { return d.playing }

// Run executes cfg.Steps steps from cfg.Start, honoring context
// cancellation between steps.
func (d *Driver) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Steps <= 0 {
		return nil, fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	if d.target == nil {
		return nil, mcmc.ErrNoTarget
	}

	if cfg.TrailCapacity > 0 && cfg.TrailCapacity != d.sink.TrailCapacity() {
		d.sink = mcmc.NewSink(cfg.TrailCapacity)
	}
	if s, ok := d.sampler.(mcmc.Seedable); ok && cfg.Seed != 0 {
		s.Seed(cfg.Seed)
	}
	d.Reset(cfg.Start)

	begin := time.Now()
	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		d.Step()
	}

	result := &Result{
		Chain:   d.Chain(),
		Steps:   cfg.Steps,
		Elapsed: time.Since(begin),
	}
	if t, ok := d.sampler.(mcmc.AcceptanceTracker); ok {
		result.AcceptanceRate = t.AcceptanceRate()
		result.HasAcceptance = true
	}
	return result, nil
}
