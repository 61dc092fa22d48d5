// Package trend provides the shared value types for fitting trend lines to
// two-dimensional point data.
//
// The root package holds only the immutable values that every fit strategy
// exchanges: Point pairs supplied by the caller and the fitted Line they get
// back. The actual estimators live in subpackages:
//
//   - linear: ordinary least squares ("quick") and Theil–Sen ("robust") fits
//   - stats: mean, population standard deviation, Pearson correlation
//   - dataset: compact columnar frames for storing and shipping point series
//
// # Basic Usage
//
// Fitting a line and predicting from it:
//
//	import (
//	    "github.com/arloliu/trend"
//	    "github.com/arloliu/trend/linear"
//	)
//
//	points := []trend.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
//	fit, err := linear.Quick(points)
//	if err != nil {
//	    return err
//	}
//	y := fit.Line().PredictY(10)
//
// All values are plain structs with no hidden state. Every function in this
// module is a pure function over its inputs and is safe to call from any
// number of goroutines without coordination.
package trend

// Point is an (x, y) observation.
//
// Construction performs no validation: non-finite coordinates are accepted
// and surface later as typed errors from the fit functions, never as NaN
// results.
type Point struct {
	X float64
	Y float64
}

// Line represents y = Slope*x + Intercept. A Line is immutable once a fit
// produces it.
type Line struct {
	Slope     float64
	Intercept float64
}

// PredictY returns the y value the line predicts for the given x.
//
// This is a total function. Non-finite inputs produce non-finite outputs
// under the usual IEEE-754 rules; no validation is performed.
func (l Line) PredictY(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// PredictX returns the x value at which the line reaches the given y.
//
// A zero slope yields an infinity, per IEEE-754 division, not an error.
func (l Line) PredictX(y float64) float64 {
	return (y - l.Intercept) / l.Slope
}
