package spack

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"go.trai.ch/zerr"
)

// findRecord is one entry of "spack find --json".
type findRecord struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Hash    string `json:"hash"`
	Arch    struct {
		Platform string     `json:"platform"`
		OS       string     `json:"platform_os"`
		Target   findTarget `json:"target"`
	} `json:"arch"`
}

// findTarget accepts both the plain string and the {"name": ...} object forms.
type findTarget string

// UnmarshalJSON implements json.Unmarshaler.
func (t *findTarget) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = findTarget(s)
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return zerr.Wrap(err, "failed to parse target")
	}
	*t = findTarget(obj.Name)
	return nil
}

// parseFindJSON reads "spack find --json" output. Status lines before the array are ignored,
// and output without an array means nothing is installed.
func parseFindJSON(output []byte) ([]domain.InstalledRecord, error) {
	start := bytes.IndexByte(output, '[')
	if start < 0 {
		return nil, nil
	}
	var raw []findRecord
	if err := json.Unmarshal(output[start:], &raw); err != nil {
		return nil, zerr.Wrap(err, "failed to parse spack find JSON output")
	}
	records := make([]domain.InstalledRecord, 0, len(raw))
	for _, r := range raw {
		records = append(records, domain.InstalledRecord{
			Name:    r.Name,
			Version: r.Version,
			Hash:    r.Hash,
			Arch: domain.Arch{
				Platform: r.Arch.Platform,
				OS:       r.Arch.OS,
				Target:   string(r.Arch.Target),
			},
		})
	}
	return records, nil
}

// parseCompilerList reads "spack compiler list":
//
//	==> Available compilers
//	-- gcc rhel8-x86_64 ---------------------------------------------
//	gcc@8.5.0  gcc@11.4.0
func parseCompilerList(output string) []domain.RegisteredCompiler {
	var compilers []domain.RegisteredCompiler
	platformOS := ""
	for line := range strings.Lines(output) {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, statusMarker):
			continue
		case strings.HasPrefix(line, separatorMarker):
			fields := strings.Fields(strings.ReplaceAll(line, "-", " "))
			platformOS = ""
			if len(fields) > 1 {
				platformOS = fields[1]
			}
		default:
			for _, spec := range strings.Fields(line) {
				compilers = append(compilers, domain.RegisteredCompiler{Spec: spec, OS: platformOS})
			}
		}
	}
	return compilers
}
