package analytics

// LinearFit is an ordinary least-squares fit of y as a function of x.
// Defined is false when the fit cannot be computed (fewer than 2 samples,
// or zero variance in x); callers must never mistake an undefined fit for
// a flat trend.
type LinearFit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Samples   int     `json:"samples"`
	Defined   bool    `json:"defined"`
}

// FitOLS computes an ordinary least-squares line over paired samples.
// Slices of unequal length are truncated to the shorter one.
func FitOLS(xs, ys []float64) LinearFit {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 2 {
		return LinearFit{Samples: n}
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sxx, sxy float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}
	if sxx == 0 {
		return LinearFit{Samples: n}
	}

	slope := sxy / sxx
	return LinearFit{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
		Samples:   n,
		Defined:   true,
	}
}
