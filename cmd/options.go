package cmd

// Options holds the shared command-line options for the repofolio CLI.
type Options struct {
	Format      string
	MaxProjects int
	MinScore    int
	Verbosity   int
	Summary     bool   // Generate an AI profile summary
	Model       string // Completion model for the summary
	Output      string // Write to file instead of stdout
}

// Option is a functional option for configuring Options.
type Option func(*Options)

// NewOptions creates a new Options with defaults and applies any provided options.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFormat sets the output format (table, json, markdown).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithMaxProjects sets the maximum number of ranked projects.
func WithMaxProjects(n int) Option {
	return func(o *Options) {
		o.MaxProjects = n
	}
}

// WithMinScore sets the minimum total score for ranked projects.
func WithMinScore(n int) Option {
	return func(o *Options) {
		o.MinScore = n
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithSummary enables AI summary generation.
func WithSummary(enable bool) Option {
	return func(o *Options) {
		o.Summary = enable
	}
}

// WithModel sets the completion model used for the summary.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithOutput sets the output file path.
func WithOutput(path string) Option {
	return func(o *Options) {
		o.Output = path
	}
}
