package profiler

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/pika-go/common"
	"github.com/Carmen-Shannon/pika-go/engine/renderer"
)

// Report is one logged interval of frame and draw statistics.
type Report struct {
	// FPS is the frame rate over the interval.
	FPS float64
	// Draw sums the renderer counters of every frame in the interval.
	Draw renderer.FrameStats
	// DrawCallsPerFrame is Draw.DrawCalls averaged over the frames.
	DrawCallsPerFrame float64
	// HeapMB is the live heap size.
	HeapMB float64
	// AllocRateMB is the heap allocation rate in MB per second.
	AllocRateMB float64
	// GCCount is the total number of completed collections.
	GCCount uint32
	// MaxPause is the longest collection pause in the interval.
	MaxPause time.Duration
}

// Profiler tracks frame rate, draw statistics and memory, logging a Report every interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	now            func() time.Time
	onReport       func(Report)

	draw           renderer.FrameStats
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: variadic list of ProfilerBuilderOption functions to configure the Profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick records one frame and the renderer counters it produced.
// Logs a Report when the update interval has elapsed.
//
// Parameters:
//   - frame: the counters of this frame alone
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(frame renderer.FrameStats) bool {
	p.frameCount++
	p.draw.Objects += frame.Objects
	p.draw.Skipped += frame.Skipped
	p.draw.DrawCalls += frame.DrawCalls
	p.draw.ProgramBinds += frame.ProgramBinds
	p.draw.BufferBinds += frame.BufferBinds

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	report := Report{
		FPS:               float64(p.frameCount) / elapsed.Seconds(),
		Draw:              p.draw,
		DrawCallsPerFrame: float64(p.draw.DrawCalls) / float64(p.frameCount),
		HeapMB:            float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB:       float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:           p.memStats.NumGC,
		MaxPause:          p.maxPause(),
	}

	common.Logger().Info("frame stats",
		"fps", report.FPS,
		"drawCallsPerFrame", report.DrawCallsPerFrame,
		"programBinds", report.Draw.ProgramBinds,
		"bufferBinds", report.Draw.BufferBinds,
		"skipped", report.Draw.Skipped,
		"heapMB", report.HeapMB,
		"allocRateMB", report.AllocRateMB,
		"gc", report.GCCount,
		"maxPause", report.MaxPause,
	)
	if p.onReport != nil {
		p.onReport(report)
	}

	p.frameCount = 0
	p.draw = renderer.FrameStats{}
	p.lastTime = currentTime
	p.lastGCCount = p.memStats.NumGC
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// maxPause scans the circular pause buffer for collections since the last report.
func (p *Profiler) maxPause() time.Duration {
	gcCount := p.memStats.NumGC
	start := p.lastGCCount
	if gcCount-start > 256 {
		start = gcCount - 256
	}
	var maxNs uint64
	for i := start; i < gcCount; i++ {
		maxNs = max(maxNs, p.memStats.PauseNs[i%256])
	}
	return time.Duration(maxNs)
}
