package domain

// CompilerHandle identifies the toolchain every other package is built with.
// The zero value means no compiler was bootstrapped and the system compiler is used.
type CompilerHandle struct {
	// Name is the package name, e.g. "gcc".
	Name string
	// Spec is the first token of the compiler spec, e.g. "gcc@11.4.0".
	Spec string
	// Arch is the triple the compiler was built for.
	Arch Arch
}

// IsZero reports whether no compiler was bootstrapped.
func (c CompilerHandle) IsZero() bool {
	return c.Spec == ""
}

// Constraint renders the required-compiler constraint, e.g. "%gcc@11.4.0".
func (c CompilerHandle) Constraint() string {
	if c.IsZero() {
		return ""
	}
	return CompilerGlyph + c.Spec
}

// WithArch renders the compiler spec qualified by its architecture.
func (c CompilerHandle) WithArch() string {
	return c.Spec + " " + c.Arch.Constraint()
}

// RegisteredCompiler is one entry of the package manager's compiler list.
type RegisteredCompiler struct {
	Spec string
	OS   string
}

// InstalledRecord is one entry of the package manager's machine-readable find output.
type InstalledRecord struct {
	Name    string
	Version string
	Hash    string
	Arch    Arch
}
