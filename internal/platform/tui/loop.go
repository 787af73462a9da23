// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxCatchUp bounds how many simulation steps one frame may run after a stall.
const maxCatchUp = 5

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Stepper converts irregular frame times into a whole number of fixed
// simulation steps, carrying the remainder to the next frame.
type Stepper struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
	last     time.Time
}

// NewStepper creates a stepper for tickRate steps per second.
func NewStepper(tickRate int) *Stepper {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Stepper{step: time.Second / time.Duration(tickRate), maxSteps: maxCatchUp}
}

// Step returns the fixed step length.
func (s *Stepper) Step() time.Duration {
	return s.step
}

// Advance returns how many steps are due at now. The first call always
// yields one step. Time beyond the catch-up limit is dropped.
func (s *Stepper) Advance(now time.Time) int {
	if s.last.IsZero() {
		s.last = now
		return 1
	}

	elapsed := now.Sub(s.last)
	s.last = now
	if elapsed < 0 {
		return 0
	}

	s.acc += elapsed
	n := int(s.acc / s.step)
	if n > s.maxSteps {
		n = s.maxSteps
		s.acc = 0
		return n
	}
	s.acc -= time.Duration(n) * s.step
	return n
}

// Reset forgets accumulated time, e.g. after a pause in frame delivery.
func (s *Stepper) Reset() {
	s.acc = 0
	s.last = time.Time{}
}

// FrameRate measures delivered frames per second over one-second windows.
type FrameRate struct {
	start  time.Time
	frames int
	fps    float64
}

// Tick counts a frame delivered at now.
func (f *FrameRate) Tick(now time.Time) {
	if f.start.IsZero() {
		f.start = now
	}
	f.frames++
	if window := now.Sub(f.start); window >= time.Second {
		f.fps = float64(f.frames) / window.Seconds()
		f.frames = 0
		f.start = now
	}
}

// FPS returns the rate of the last complete window.
func (f *FrameRate) FPS() float64 {
	return f.fps
}
