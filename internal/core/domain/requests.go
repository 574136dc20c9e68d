package domain

// InstallRequest describes one package manager install.
type InstallRequest struct {
	Spec PackageSpec
	// Constraints apply to the root spec, e.g. "%gcc@11.4.0", "arch=linux-rocky8-x86_64_v2" or "target=x86_64_v2".
	Constraints []string
	// Pins are rendered dependency constraints, e.g. "^zlib@1.3".
	Pins []string
	Jobs int
}

// Args renders the spec portion of the install command. Constraints follow the root
// package's tokens so they bind to it rather than to a dependency of the spec.
func (r InstallRequest) Args() []string {
	root, deps := r.Spec.Nodes()
	args := make([]string, 0, len(root)+len(r.Constraints)+len(deps)+len(r.Pins))
	args = append(args, root...)
	args = append(args, r.Constraints...)
	args = append(args, deps...)
	args = append(args, r.Pins...)
	return args
}

// ViewRequest describes one projection into a view directory.
type ViewRequest struct {
	Dir   string
	Specs []string
	// WithDependencies also projects the run dependencies of the specs.
	WithDependencies bool
}
