package linear

import "github.com/arloliu/trend"

// Trend is the read-only surface shared by both fit results: access to the
// primary fitted line regardless of which strategy produced it.
//
// The concrete types carry the strategy-specific evidence (QuickTrend the
// original points, RobustTrend the confidence bounds); accept one of them
// directly when that evidence is needed.
type Trend interface {
	// Line returns the primary fitted line.
	Line() trend.Line
}

// QuickTrend is the result of an ordinary least squares fit. It retains the
// points it was fitted from so the fit can be scored with GoodnessOfFit.
type QuickTrend struct {
	points []trend.Point
	line   trend.Line
}

var _ Trend = QuickTrend{}

// Line returns the fitted least-squares line.
func (t QuickTrend) Line() trend.Line {
	return t.line
}

// RobustTrend is the result of a Theil–Sen fit: the median line plus the two
// lines bounding its 95% confidence interval.
type RobustTrend struct {
	line  trend.Line
	lower trend.Line
	upper trend.Line
}

var _ Trend = RobustTrend{}

// Line returns the median fitted line.
func (t RobustTrend) Line() trend.Line {
	return t.line
}

// ConfidenceInterval returns the lines bounding the 95% confidence interval
// of the fit: lower at the 2.5th percentile of the pairwise slopes, upper at
// the 97.5th. Pure accessor, no computation.
func (t RobustTrend) ConfidenceInterval() (lower, upper trend.Line) {
	return t.lower, t.upper
}
