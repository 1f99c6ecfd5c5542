package profiler

import "time"

// ProfilerBuilderOption is a functional option for configuring a Profiler via NewProfiler.
type ProfilerBuilderOption func(*Profiler)

// WithInterval sets how often a Report is logged.
//
// Parameters:
//   - interval: the reporting interval
//
// Returns:
//   - ProfilerBuilderOption: a function that applies the interval to a profiler
func WithInterval(interval time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// WithClock replaces time.Now as the profiler's time source.
//
// Parameters:
//   - now: the clock
//
// Returns:
//   - ProfilerBuilderOption: a function that applies the clock to a profiler
func WithClock(now func() time.Time) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.now = now
	}
}

// WithReportHandler sets a function receiving every Report after it is logged.
//
// Parameters:
//   - handler: the report handler
//
// Returns:
//   - ProfilerBuilderOption: a function that applies the handler to a profiler
func WithReportHandler(handler func(Report)) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.onReport = handler
	}
}
