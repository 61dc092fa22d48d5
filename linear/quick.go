package linear

import (
	"fmt"
	"slices"

	"github.com/arloliu/trend"
	"github.com/arloliu/trend/errs"
	"github.com/arloliu/trend/stats"
)

// Quick fits a line through the points with ordinary least squares.
//
// The slope is correlation(points) * stddev(ys) / stddev(xs) and the
// intercept is mean(ys) - slope*mean(xs). Requires at least two points;
// fewer fail with errs.ErrNeedMoreValues. Zero variance on either axis
// fails with errs.ErrAllZeros, propagated unchanged from the correlation.
//
// The returned trend keeps its own copy of the points for GoodnessOfFit, so
// the caller's slice stays free to reuse.
func Quick(points []trend.Point) (QuickTrend, error) {
	if len(points) < 2 {
		return QuickTrend{}, fmt.Errorf("%w: need at least 2 points, got %d", errs.ErrNeedMoreValues, len(points))
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	r, err := stats.Correlation(points)
	if err != nil {
		return QuickTrend{}, err
	}
	stddevX, err := stats.StdDev(xs)
	if err != nil {
		return QuickTrend{}, err
	}
	stddevY, err := stats.StdDev(ys)
	if err != nil {
		return QuickTrend{}, err
	}
	meanX, err := stats.Mean(xs)
	if err != nil {
		return QuickTrend{}, err
	}
	meanY, err := stats.Mean(ys)
	if err != nil {
		return QuickTrend{}, err
	}

	slope := r * stddevY / stddevX

	return QuickTrend{
		points: slices.Clone(points),
		line: trend.Line{
			Slope:     slope,
			Intercept: meanY - slope*meanX,
		},
	}, nil
}

// GoodnessOfFit returns the coefficient of determination (R²) of the fit
// over the points it was computed from: 1 - SSresidual/SStotal, where
// SSresidual sums the squared residuals against the fitted line and SStotal
// sums the squared deviations of y from its mean. 1 is a perfect fit, 0 is
// no better than the mean.
//
// Precondition: the y values must not all be equal. Zero y-variance makes
// SStotal zero and the result divides by zero under IEEE-754 rules; such
// input carries no fit quality to measure.
func (t QuickTrend) GoodnessOfFit() float64 {
	meanY := 0.0
	for _, p := range t.points {
		meanY += p.Y
	}
	meanY /= float64(len(t.points))

	ssRes := 0.0
	ssTot := 0.0
	for _, p := range t.points {
		residual := p.Y - t.line.PredictY(p.X)
		ssRes += residual * residual
		ssTot += (p.Y - meanY) * (p.Y - meanY)
	}

	return 1 - ssRes/ssTot
}
