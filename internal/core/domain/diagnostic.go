package domain

// DiagnosticKind classifies the outcome of one solver explain call.
type DiagnosticKind int

const (
	// DiagnosticUnrecognized means the output could not be interpreted.
	DiagnosticUnrecognized DiagnosticKind = iota
	// DiagnosticSuccess means the spec concretized; Deps lists every dependency it reported.
	DiagnosticSuccess
	// DiagnosticMissingDeps means the solver named dependencies that must be pinned.
	DiagnosticMissingDeps
	// DiagnosticConflictingDeps means the solver rejected the named pins.
	DiagnosticConflictingDeps
)

// String returns the name of the kind.
func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticSuccess:
		return "success"
	case DiagnosticMissingDeps:
		return "missing"
	case DiagnosticConflictingDeps:
		return "conflicting"
	default:
		return "unrecognized"
	}
}

// Diagnostic is the classified result of a solver explain call.
type Diagnostic struct {
	Kind DiagnosticKind
	Deps []string
	// Raw holds the full solver transcript.
	Raw string
}

// Success builds a successful diagnostic.
func Success(raw string, deps ...string) Diagnostic {
	return Diagnostic{Kind: DiagnosticSuccess, Deps: deps, Raw: raw}
}

// MissingDeps builds a diagnostic naming dependencies to add.
func MissingDeps(raw string, deps ...string) Diagnostic {
	return Diagnostic{Kind: DiagnosticMissingDeps, Deps: deps, Raw: raw}
}

// ConflictingDeps builds a diagnostic naming pins to drop.
func ConflictingDeps(raw string, deps ...string) Diagnostic {
	return Diagnostic{Kind: DiagnosticConflictingDeps, Deps: deps, Raw: raw}
}

// Unrecognized builds a diagnostic for output no grammar matched.
func Unrecognized(raw string) Diagnostic {
	return Diagnostic{Kind: DiagnosticUnrecognized, Raw: raw}
}
