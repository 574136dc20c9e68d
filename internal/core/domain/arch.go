package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Arch is a package manager architecture triple.
type Arch struct {
	Platform string `json:"platform"`
	OS       string `json:"platform_os"`
	Target   string `json:"target"`
}

// ParseArch parses "platform-os-target" as printed by the package manager.
func ParseArch(s string) (Arch, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Arch{}, zerr.With(ErrInvalidArch, "arch", s)
	}
	a := Arch{Platform: parts[0], OS: parts[1]}
	if len(parts) > 2 {
		a.Target = strings.Join(parts[2:], "-")
	}
	return a, nil
}

// WithTarget returns a copy of a targeting target.
func (a Arch) WithTarget(target string) Arch {
	a.Target = target
	return a
}

// String renders the triple.
func (a Arch) String() string {
	return a.Platform + "-" + a.OS + "-" + a.Target
}

// Constraint renders the triple as a spec constraint.
func (a Arch) Constraint() string {
	return "arch=" + a.String()
}
