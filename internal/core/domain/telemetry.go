package domain

// LogLevel is the severity of a message attached to a build step, on the slog scale.
type LogLevel int

const (
	LogLevelInfo  LogLevel = 0
	LogLevelWarn  LogLevel = 4
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch {
	case l >= LogLevelError:
		return "ERROR"
	case l >= LogLevelWarn:
		return "WARN"
	default:
		return "INFO"
	}
}

// Step names one phase of a release build as it appears in progress output.
type Step string

// Build phases in execution order. StepClean runs last, whatever the outcome.
const (
	StepSROOT    Step = "sroot"
	StepManager  Step = "spack"
	StepSources  Step = "sources"
	StepCompiler Step = "compiler"
	StepInstall  Step = "install"
	StepView     Step = "view"
	StepPip      Step = "pip"
	StepData     Step = "data"
	StepClean    Step = "clean"
)

// Of names a sub-step for one subject, e.g. "install zlib".
func (s Step) Of(subject string) string {
	return string(s) + " " + subject
}
