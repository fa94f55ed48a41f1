package game

import "time"

// frameStats accumulates frame times between diagnostic reports.
type frameStats struct {
	interval time.Duration
	frames   int
	elapsed  time.Duration
	worst    time.Duration
}

func newFrameStats(interval time.Duration) *frameStats {
	return &frameStats{interval: interval}
}

// add records one frame and reports whether a report is due.
// A zero interval never reports.
func (s *frameStats) add(dt time.Duration) bool {
	s.frames++
	s.elapsed += dt
	s.worst = max(s.worst, dt)
	return s.interval > 0 && s.elapsed >= s.interval
}

// fps returns the average frame rate over the current window.
func (s *frameStats) fps() float64 {
	if s.elapsed <= 0 {
		return 0
	}
	return float64(s.frames) / s.elapsed.Seconds()
}

// avgFrameMS returns the mean frame time in milliseconds.
func (s *frameStats) avgFrameMS() float64 {
	if s.frames == 0 {
		return 0
	}
	return float64(s.elapsed.Microseconds()) / float64(s.frames) / 1000
}

func (s *frameStats) reset() {
	s.frames = 0
	s.elapsed = 0
	s.worst = 0
}
