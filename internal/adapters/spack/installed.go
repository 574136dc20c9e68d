package spack

import (
	"strings"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
)

const (
	separatorMarker = "--"
	statusMarker    = "==>"
)

// parseInstalled reads "spack find --show-full-compiler -lv" output.
//
// Records look like "abcdefg zlib@1.2.13%gcc@11.4.0+shared arch=...". When a record
// carries no inline compiler, the compiler of the enclosing
// "-- linux-rocky8-x86_64 / gcc@11.4.0 ---" header applies.
func parseInstalled(output, compiler string) *domain.InstalledIndex {
	var records []domain.InstalledPackage
	header := ""
	for line := range strings.Lines(output) {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, separatorMarker) {
			header = headerCompiler(line)
			continue
		}
		if strings.HasPrefix(line, statusMarker) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		hash, record := fields[0], fields[1]
		recordCompiler := header
		if _, after, ok := strings.Cut(record, domain.CompilerGlyph); ok {
			recordCompiler = after
		}
		if !strings.Contains(recordCompiler, compiler) {
			continue
		}
		name, _, _ := strings.Cut(record, domain.VersionSeparator)
		name, _, _ = strings.Cut(name, domain.CompilerGlyph)
		records = append(records, domain.InstalledPackage{
			Name:       name,
			Identifier: name + domain.IdentifierSeparator + hash,
		})
	}
	return domain.NewInstalledIndex(records...)
}

func headerCompiler(line string) string {
	_, after, ok := strings.Cut(line, "/")
	if !ok {
		return ""
	}
	fields := strings.Fields(after)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
