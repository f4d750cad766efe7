package dispatch

type config struct {
	steps []Step
}

// Option configures a Dispatcher on creation.
type Option func(cfg *config)

// WithSteps appends pipeline steps to the dispatcher.
// Can be used multiple times. Steps are applied in the order provided:
// for steps A, B, C, the execution flow is A→B→C→handler→C→B→A.
func WithSteps(steps ...Step) Option {
	return func(cfg *config) {
		cfg.steps = append(cfg.steps, steps...)
	}
}
