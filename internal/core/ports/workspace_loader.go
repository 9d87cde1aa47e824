package ports

import "go.trai.ch/compdb/internal/core/domain"

// WorkspaceLoader loads and validates the workspace description.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace_loader.go -destination=mocks/mock_workspace_loader.go -package=mocks
type WorkspaceLoader interface {
	// Load reads the workspace description from the given working
	// directory and returns the validated target graph.
	Load(cwd string) (*domain.Workspace, error)
}
