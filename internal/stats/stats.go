// Package stats provides summary statistics and histogram binning for
// sample chains.
package stats

import (
	"math"

	"github.com/san-kum/mcmclab/internal/mcmc"
)

func Mean(points []mcmc.Point) mcmc.Point {
	if len(points) == 0 {
		return mcmc.Point{}
	}
	var sum mcmc.Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}

// Std returns the per-axis sample standard deviation.
func Std(points []mcmc.Point) mcmc.Point {
	if len(points) < 2 {
		return mcmc.Point{}
	}
	m := Mean(points)
	var sx, sy float64
	for _, p := range points {
		dx, dy := p.X-m.X, p.Y-m.Y
		sx += dx * dx
		sy += dy * dy
	}
	n := float64(len(points) - 1)
	return mcmc.Point{X: math.Sqrt(sx / n), Y: math.Sqrt(sy / n)}
}

// Correlation returns the Pearson correlation between the X and Y
// coordinates, or 0 when either axis is degenerate.
func Correlation(points []mcmc.Point) float64 {
	if len(points) < 2 {
		return 0
	}
	m := Mean(points)
	var sxx, syy, sxy float64
	for _, p := range points {
		dx, dy := p.X-m.X, p.Y-m.Y
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 || syy == 0 {
		return 0
	}
	return sxy / math.Sqrt(sxx*syy)
}

func Xs(points []mcmc.Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.X
	}
	return out
}

func Ys(points []mcmc.Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Y
	}
	return out
}

// Histogram bins values into bins equal-width buckets over [lo, hi].
// Values outside the range are dropped. Counts are returned as floats
// for direct plotting.
func Histogram(values []float64, lo, hi float64, bins int) []float64 {
	if bins <= 0 || hi <= lo {
		return nil
	}
	counts := make([]float64, bins)
	width := (hi - lo) / float64(bins)
	for _, v := range values {
		if v < lo || v > hi {
			continue
		}
		i := int((v - lo) / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	return counts
}
