package entity

import "time"

// Animation tracks frame progression of a spritesheet animation.
// Frame images live in the render layer; this only counts.
type Animation struct {
	FrameCount    int
	Current       int
	FrameDuration time.Duration
	cooldown      time.Duration
}

// NewAnimation creates an animation starting at frame 0
func NewAnimation(frames int, frameDuration time.Duration) Animation {
	return Animation{
		FrameCount:    frames,
		FrameDuration: frameDuration,
	}
}

// Update consumes dt of the frame cooldown and advances one frame once the
// cooldown has elapsed. It reports whether the frame index wrapped back to 0,
// i.e. the animation just completed a full cycle.
func (a *Animation) Update(dt time.Duration) bool {
	if a.FrameCount <= 0 {
		return false
	}
	if dt < a.cooldown {
		a.cooldown -= dt
		return false
	}
	a.Current = (a.Current + 1) % a.FrameCount
	a.cooldown = a.FrameDuration
	return a.Current == 0
}

// Reset rewinds to frame 0 with a full frame duration ahead
func (a *Animation) Reset() {
	a.Current = 0
	a.cooldown = a.FrameDuration
}

// Frame returns the current frame index, always within [0, FrameCount)
func (a *Animation) Frame() int {
	if a.FrameCount <= 0 {
		return 0
	}
	return a.Current % a.FrameCount
}
