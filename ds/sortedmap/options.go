package sortedmap

import "go.uber.org/zap"

// the default options applied to the SortedMap.
var defaultOptions = []Option{
	WithShrinkingThresholdRatio(4.0),
	WithShrinkingThresholdCount(64),
}

// Options define options for a SortedMap.
type Options struct {
	// The capacity that is preallocated for the entries.
	initialCapacity int
	// The ratio between the capacity of the entries and
	// their count before shrinking is triggered.
	shrinkingThresholdRatio float32
	// The minimum capacity of the entries before shrinking is triggered.
	shrinkingThresholdCount int
	// The logger used for debug output.
	logger *zap.Logger
}

// applies the given Option.
func (o *Options) apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

func newOptions(opts ...Option) *Options {
	mapOpts := &Options{}
	mapOpts.apply(defaultOptions...)
	mapOpts.apply(opts...)

	if mapOpts.logger == nil {
		mapOpts.logger = zap.NewNop()
	}

	if mapOpts.initialCapacity < 0 {
		mapOpts.initialCapacity = 0
	}

	return mapOpts
}

// WithInitialCapacity preallocates room for the given number of entries.
func WithInitialCapacity(capacity int) Option {
	return func(opts *Options) {
		opts.initialCapacity = capacity
	}
}

// WithShrinkingThresholdRatio defines the ratio between the capacity
// of the entries and their count before shrinking is triggered.
func WithShrinkingThresholdRatio(ratio float32) Option {
	return func(opts *Options) {
		opts.shrinkingThresholdRatio = ratio
	}
}

// WithShrinkingThresholdCount defines the minimum capacity
// of the entries before shrinking is triggered.
func WithShrinkingThresholdCount(count int) Option {
	return func(opts *Options) {
		opts.shrinkingThresholdCount = count
	}
}

// WithLogger sets the logger that receives debug output of the SortedMap.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *Options) {
		opts.logger = logger
	}
}

// Option is a function setting an Options option.
type Option func(opts *Options)
