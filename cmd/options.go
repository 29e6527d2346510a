package cmd

// Options holds the shared command-line options for the rabbit CLI.
type Options struct {
	Format      string // Output format (csv, json, table)
	Contributor string // Override the contributor inferred from the events
	ConfigPath  string // Explicit config file path
	ModelPath   string // Alternative forest model file
	Verbosity   int
	TUI         bool // Browse results interactively instead of printing

	// Profiling options
	CPUProfile string // Write CPU profile to file
	MemProfile string // Write memory profile to file
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

// WithFormat sets the output format (csv, json, table).
func WithFormat(format string) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithContributor overrides the contributor login inferred from events.
func WithContributor(contributor string) Option {
	return func(o *Options) {
		o.Contributor = contributor
	}
}

// WithModelPath sets an alternative model file.
func WithModelPath(path string) Option {
	return func(o *Options) {
		o.ModelPath = path
	}
}

// WithVerbosity sets the verbosity level.
func WithVerbosity(v int) Option {
	return func(o *Options) {
		o.Verbosity = v
	}
}

// WithTUI enables the interactive results browser.
func WithTUI(tui bool) Option {
	return func(o *Options) {
		o.TUI = tui
	}
}
