package chainmap

import (
	"fmt"
	"math"
)

const (
	DefaultMinCapacity        = 4
	DefaultUpscaleThreshold   = 0.75
	DefaultDownscaleThreshold = 0.25

	maxCapacity = 1 << 30
)

// Policy decides when the table grows and shrinks.
//
// The table doubles when size/capacity exceeds UpscaleThreshold and halves
// when an erase leaves a non-empty table with size/capacity below
// DownscaleThreshold. Capacity never drops below MinCapacity, which is
// rounded up to a power of two.
type Policy struct {
	MinCapacity        int
	UpscaleThreshold   float64
	DownscaleThreshold float64
}

func DefaultPolicy() Policy {
	return Policy{
		MinCapacity:        DefaultMinCapacity,
		UpscaleThreshold:   DefaultUpscaleThreshold,
		DownscaleThreshold: DefaultDownscaleThreshold,
	}
}

// Validate checks that a single halving always lands the load factor back
// inside the band. Growing doubles as many times as needed.
func (p Policy) Validate() error {
	switch {
	case p.MinCapacity < 1 || p.MinCapacity > maxCapacity:
		return fmt.Errorf("%w: min capacity %d out of range [1, %d]", ErrInvalidPolicy, p.MinCapacity, maxCapacity)
	case math.IsNaN(p.UpscaleThreshold) || p.UpscaleThreshold <= 0:
		return fmt.Errorf("%w: upscale threshold %v must be positive", ErrInvalidPolicy, p.UpscaleThreshold)
	case math.IsNaN(p.DownscaleThreshold) || p.DownscaleThreshold < 0:
		return fmt.Errorf("%w: downscale threshold %v must not be negative", ErrInvalidPolicy, p.DownscaleThreshold)
	case 2*p.DownscaleThreshold > p.UpscaleThreshold:
		return fmt.Errorf("%w: downscale threshold %v is more than half of upscale threshold %v",
			ErrInvalidPolicy, p.DownscaleThreshold, p.UpscaleThreshold)
	}

	return nil
}

func (p Policy) floor() int {
	return int(NextPowerOf2(uint32(p.MinCapacity)))
}

func (p Policy) shouldGrow(size, capacity int) bool {
	return capacity < maxCapacity && float64(size) > p.UpscaleThreshold*float64(capacity)
}

// An empty table is never shrunk, only Clear brings it back to the floor.
func (p Policy) shouldShrink(size, capacity int) bool {
	return size > 0 && capacity > p.floor() && float64(size) < p.DownscaleThreshold*float64(capacity)
}
