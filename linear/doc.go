// Package linear fits trend lines to two-dimensional point data and reports
// how trustworthy the fit is.
//
// Two strategies are provided:
//
//   - Quick: ordinary least squares. Cheap (O(n)) and exact for clean data,
//     but a single outlier can drag the line badly. The result retains the
//     input points so the fit can be scored with GoodnessOfFit (R²).
//   - Robust: the Theil–Sen estimator. The slope is the median of all
//     pairwise slopes, which tolerates up to roughly 29.3% corrupted points,
//     at an O(n²) time and space cost in the number of points. The result
//     carries a 95% confidence interval as a pair of bounding lines.
//
// Both return their own concrete trend type. Scoring is deliberately
// restricted by the type system: GoodnessOfFit exists only on QuickTrend and
// ConfidenceInterval only on RobustTrend, so misuse is a compile error, not
// a runtime check. Code that only needs the fitted line can accept either
// through the Trend interface.
//
// # Choosing a strategy
//
// Quick is the right default for trusted data. Robust costs n² pairwise
// slopes in both time and memory, a price that is a pure function of input
// size; prefer Quick on large inputs unless outliers are expected.
//
// # Basic Usage
//
//	points := []trend.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
//
//	fit, err := linear.Quick(points)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("y = %.2fx + %.2f (R²=%.2f)\n",
//	    fit.Line().Slope, fit.Line().Intercept, fit.GoodnessOfFit())
//
// Errors are sentinels from the errs package: inputs shorter than two points
// fail with errs.ErrNeedMoreValues, and degenerate inputs that would produce
// NaN (for example every point sharing one x value) fail with
// errs.ErrAllZeros. No function in this package returns NaN.
package linear
