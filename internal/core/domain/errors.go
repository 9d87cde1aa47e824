package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetNotFound is returned when a label cannot be resolved in the target graph.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrMissingDependency is returned when a target references a dependency that doesn't exist in the workspace.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when the declared dependency graph is not a DAG.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrNoTargetsSpecified is returned when generation is requested without root targets.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrGenerationFailed wraps failures of the overall generate operation.
	ErrGenerationFailed = zerr.New("database generation failed")
)
