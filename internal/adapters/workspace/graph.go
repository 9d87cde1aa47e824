package workspace

import (
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TargetGraph = (*Graph)(nil)

// Graph adapts a loaded workspace to the ports.TargetGraph oracle.
type Graph struct {
	ws *domain.Workspace
}

// NewGraph creates the oracle view over a loaded workspace.
func NewGraph(ws *domain.Workspace) *Graph {
	return &Graph{ws: ws}
}

// Target resolves a label to its build target.
func (g *Graph) Target(label domain.Label) (*domain.BuildTarget, error) {
	target, ok := g.ws.Targets[label]
	if !ok {
		return nil, zerr.With(domain.ErrTargetNotFound, "label", label.String())
	}
	return target, nil
}
