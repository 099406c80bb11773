package ndrvalidator

// Option configures the Validator.
type Option func(*Options)

// Options holds all configuration for the Validator.
type Options struct {
	// LegacyRegimenScan re-runs the regimen duration/MMD pass once per
	// encounter, inside the encounter loop, reproducing the historical
	// behavior of the rule set. With it enabled the >30-days-without-MMD
	// and non-numeric-duration issues repeat once per encounter. The
	// default is a single global pass per validation run; the duplication
	// is almost certainly unintended upstream and is kept only behind this
	// switch pending a product decision.
	LegacyRegimenScan bool

	// StrictMode treats warnings as blocking when computing Result.Valid.
	// Issue severities and markers are unaffected.
	StrictMode bool

	// MaxIssues stops the pipeline once this many issues have been
	// collected. Use 0 for unlimited. Rules are never cut mid-run, so the
	// count is checked between rules and may be exceeded slightly.
	MaxIssues int

	// CollectMetrics enables per-rule timing and validation counters.
	CollectMetrics bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		LegacyRegimenScan: false,
		StrictMode:        false,
		MaxIssues:         0, // unlimited
		CollectMetrics:    false,
	}
}

// WithLegacyRegimenScan enables the historical per-encounter regimen rescan.
func WithLegacyRegimenScan(enable bool) Option {
	return func(o *Options) {
		o.LegacyRegimenScan = enable
	}
}

// WithStrictMode treats warnings as blocking for validity purposes.
func WithStrictMode(enable bool) Option {
	return func(o *Options) {
		o.StrictMode = enable
	}
}

// WithMaxIssues sets the maximum number of issues before stopping validation.
// Use 0 for unlimited.
func WithMaxIssues(max int) Option {
	return func(o *Options) {
		o.MaxIssues = max
	}
}

// WithMetrics enables metrics collection.
func WithMetrics(enable bool) Option {
	return func(o *Options) {
		o.CollectMetrics = enable
	}
}
