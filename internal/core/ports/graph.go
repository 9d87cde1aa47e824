// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/compdb/internal/core/domain"

// TargetGraph is the read-only build-graph oracle the aggregator walks.
// It resolves a label to its target; dependency edges are declared on
// the targets themselves.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph.go -destination=mocks/mock_graph.go -package=mocks
type TargetGraph interface {
	// Target resolves a label. It returns domain.ErrTargetNotFound
	// (wrapped) if the label is not part of the workspace.
	Target(label domain.Label) (*domain.BuildTarget, error)
}
