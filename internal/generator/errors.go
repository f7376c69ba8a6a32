package generator

import "errors"

var (
	// ErrNoServiceLoaded indicates Save was invoked before a service model
	// was built. This is a sequencing bug, not an input problem.
	ErrNoServiceLoaded = errors.New("no service loaded: generation must run before save")

	// ErrOutputDir indicates the output location could not be prepared
	ErrOutputDir = errors.New("output directory cannot be prepared")
)
