// Package workspace loads the declarative workspace description and
// exposes it as the read-only build-graph oracle the engine queries.
package workspace

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dominikbraun/graph"
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.WorkspaceLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader reading the default workspace file name.
func NewLoader() *Loader {
	return &Loader{Filename: domain.ConfigFileName}
}

// Load reads the workspace description from the given working directory.
func (l *Loader) Load(cwd string) (*domain.Workspace, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a workspace file from the given path, validates the
// declared dependency graph, and returns the domain model.
func Load(path string) (*domain.Workspace, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read workspace file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse workspace file")
	}

	ws := &domain.Workspace{
		Name: file.Workspace,
		Toolchain: domain.ToolchainConfig{
			Compiler:  file.Toolchain.Compiler,
			CCompiler: file.Toolchain.CCompiler,
			Features:  file.Toolchain.Features,
			Copts:     file.Toolchain.Copts,
			Cxxopts:   file.Toolchain.Cxxopts,
		},
		Targets: make(map[domain.Label]*domain.BuildTarget, len(file.Targets)),
	}

	for name, dto := range file.Targets {
		label := domain.NewLabel(name)
		deps := make([]domain.Label, len(dto.Deps))
		for i, dep := range dto.Deps {
			deps[i] = domain.NewLabel(dep)
		}

		defines := make([]domain.Define, len(dto.Defines))
		for i, d := range dto.Defines {
			defines[i] = domain.ParseDefine(d)
		}

		ws.Targets[label] = &domain.BuildTarget{
			Label:    label,
			Kind:     domain.RuleKind(dto.Kind),
			Srcs:     dto.Srcs,
			Hdrs:     dto.Hdrs,
			Deps:     deps,
			Features: dto.Features,
			Context: &domain.CompilationContext{
				QuoteIncludes:     dto.Includes.Quote,
				SystemIncludes:    dto.Includes.System,
				FrameworkIncludes: dto.Includes.Framework,
				Defines:           defines,
			},
		}
	}

	if err := validate(ws); err != nil {
		return nil, err
	}
	return ws, nil
}

// validate checks that every in-workspace dependency exists and that
// the declared graph is a DAG. External dependencies are allowed to be
// unresolved; the traversal skips them.
func validate(ws *domain.Workspace) error {
	dag := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())

	for label := range ws.Targets {
		_ = dag.AddVertex(label.String())
	}

	for label, target := range ws.Targets {
		for _, dep := range target.Deps {
			if dep.IsExternal() {
				continue
			}
			if _, ok := ws.Targets[dep]; !ok {
				return zerr.With(zerr.With(domain.ErrMissingDependency,
					"target", label.String()),
					"dependency", dep.String())
			}
			if err := dag.AddEdge(label.String(), dep.String()); err != nil {
				if errors.Is(err, graph.ErrEdgeCreatesCycle) {
					return zerr.With(zerr.With(domain.ErrCycleDetected,
						"from", label.String()),
						"to", dep.String())
				}
				return zerr.Wrap(err, "failed to build dependency graph")
			}
		}
	}

	return nil
}
