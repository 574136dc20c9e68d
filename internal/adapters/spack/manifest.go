package spack

import (
	"bytes"
	"text/template"

	"github.com/WIPACrepo/cvmfs/internal/core/domain"
	"go.trai.ch/zerr"
)

// The "compiler::" key overrides rather than merges, so the file is rendered as text.
var manifestTemplate = template.Must(template.New("spack.yaml").Parse(`# This is a Spack Environment file.
#
# It describes a set of packages to be installed, along with
# configuration settings.
spack:
  specs:
{{- range .Specs}}
  - {{.}}
{{- end}}

  view: false
  concretizer:
    targets:
      granularity: generic
    unify: true
    duplicates:
      strategy: none
  packages:
    all:
      require: '{{.Requirement}}'
{{- if not .Compiler.IsZero}}
      compiler:: [{{.Compiler.Spec}}]
{{- end}}
`))

// RenderManifest produces the spack.yaml for an environment.
func RenderManifest(m domain.EnvironmentManifest) ([]byte, error) {
	var buf bytes.Buffer
	if err := manifestTemplate.Execute(&buf, m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to render environment manifest"), "environment", m.Name)
	}
	return buf.Bytes(), nil
}
