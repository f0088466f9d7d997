package config

// Style defaults.
const (
	DefaultVecDelim   = "paren"
	DefaultMatDelim   = "paren"
	DefaultCasesDelim = "brace"
	DefaultFontSizePt = 11.0
)

// Output defaults.
const (
	DefaultOutputFormat = FormatJSON
	DefaultOutputIndent = 2
)

// Logging defaults.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = false
)

// Telemetry defaults.
const (
	DefaultServiceName = "typkat"
)

// DefaultBatchWorkers uses one worker per CPU.
const DefaultBatchWorkers = 0
