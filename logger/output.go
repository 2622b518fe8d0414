package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
//	0 (default) - Generated files, failures, final summary
//	1 (-v)      - + Skipped documents, discovered documents
//	2 (-vv)     - + Effective config, per-document timing
//	3 (-vvv)    - + Full generated source

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Files written, check verdicts
	OutputErrors                        // Per-document failures with hints
	OutputSummary                       // Final emitted/skipped/failed counts

	// Level 1 (-v) - Informational
	OutputSkips     // Documents skipped by their match rule
	OutputDiscovery // Documents found in the markup directory

	// Level 2 (-vv) - Detailed
	OutputConfig // Config values loaded/applied
	OutputTiming // Per-document timing

	// Level 3 (-vvv) - Full dump
	OutputSource // Generated Kotlin source
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults: VerbosityUser,
	OutputErrors:  VerbosityUser,
	OutputSummary: VerbosityUser,

	OutputSkips:     VerbosityInfo,
	OutputDiscovery: VerbosityInfo,

	OutputConfig: VerbosityDebug,
	OutputTiming: VerbosityDebug,

	OutputSource: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputResults:   "results",
	OutputErrors:    "errors",
	OutputSummary:   "summary",
	OutputSkips:     "skips",
	OutputDiscovery: "discovery",
	OutputConfig:    "config",
	OutputTiming:    "timing",
	OutputSource:    "source",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
