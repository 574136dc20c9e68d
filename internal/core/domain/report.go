package domain

import "time"

// BuildReport summarizes a successful release build.
type BuildReport struct {
	Release    string              `json:"release"`
	SROOT      string              `json:"sroot"`
	ManagerTag string              `json:"manager_tag"`
	Arch       string              `json:"arch"`
	Compiler   string              `json:"compiler,omitempty"`
	Strategy   string              `json:"strategy"`
	Installed  map[string]string   `json:"installed"`
	Pins       map[string][]string `json:"pins,omitempty"`
	Rebuilt    []string            `json:"rebuilt,omitempty"`
	Skipped    []string            `json:"skipped,omitempty"`
	View       string              `json:"view_fingerprint"`
	FinishedAt time.Time           `json:"finished_at"`
}
