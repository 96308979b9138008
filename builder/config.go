package builder

// BuilderOption customizes the behavior of a graph constructor by mutating
// a builderConfig before construction begins. Option constructors never
// panic at runtime and ignore nil inputs.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds configurable parameters shared by all fixture
// constructors. It is not safe for concurrent mutation; each call to
// BuildGraph creates its own config via newBuilderConfig.
type builderConfig struct {
	idFn IDFn // function mapping index -> vertex ID
}

// newBuilderConfig returns a builderConfig initialized with defaults
// (DefaultIDFn), then applies each opt in order. Later options override
// earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithIDScheme injects a custom IDFn into the builderConfig. A nil idFn is
// a no-op.
func WithIDScheme(idFn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}
