package chainmap

import "go.uber.org/zap"

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Override key equality. The hash function has to be consistent with it.
func WithEqualFunc[K comparable, V any](f EqualFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.equalFunc = f
	}
}

func WithPolicy[K comparable, V any](p Policy) Option[K, V] {
	return func(t *table[K, V]) {
		t.policy = p
	}
}

// Sets the starting (and the smallest) capacity of the table.
func WithMinCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		t.policy.MinCapacity = capacity
	}
}

func WithThresholds[K comparable, V any](upscale, downscale float64) Option[K, V] {
	return func(t *table[K, V]) {
		t.policy.UpscaleThreshold = upscale
		t.policy.DownscaleThreshold = downscale
	}
}

// Rehashes and clears are reported at debug level.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(t *table[K, V]) {
		t.logger = logger
	}
}
