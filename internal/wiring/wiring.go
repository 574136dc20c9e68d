// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/WIPACrepo/cvmfs/internal/adapters/cas"
	_ "github.com/WIPACrepo/cvmfs/internal/adapters/config"
	_ "github.com/WIPACrepo/cvmfs/internal/adapters/fs"
	_ "github.com/WIPACrepo/cvmfs/internal/adapters/logger"
	_ "github.com/WIPACrepo/cvmfs/internal/adapters/mirror"
	_ "github.com/WIPACrepo/cvmfs/internal/adapters/shell"
	_ "github.com/WIPACrepo/cvmfs/internal/adapters/spack"
	_ "github.com/WIPACrepo/cvmfs/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/WIPACrepo/cvmfs/internal/app"
	_ "github.com/WIPACrepo/cvmfs/internal/engine/compiler"
	_ "github.com/WIPACrepo/cvmfs/internal/engine/driver"
	_ "github.com/WIPACrepo/cvmfs/internal/engine/metaproject"
	_ "github.com/WIPACrepo/cvmfs/internal/engine/view"
)
