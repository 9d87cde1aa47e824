// Package toolchain implements the toolchain oracle over the workspace
// toolchain configuration: action enablement, compiler resolution, and
// flag materialization policy.
package toolchain

import (
	"strings"

	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
)

var _ ports.ToolchainResolver = (*Resolver)(nil)

// Resolver produces per-target toolchain views from the workspace-wide
// configuration.
type Resolver struct {
	cfg domain.ToolchainConfig
}

// NewResolver creates a Resolver for the given toolchain configuration.
func NewResolver(cfg domain.ToolchainConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// ForTarget returns the toolchain with the target's feature overrides
// merged over the workspace defaults. A "-name" entry disables an
// inherited feature, so a target can opt out of an action kind.
func (r *Resolver) ForTarget(t *domain.BuildTarget) ports.Toolchain {
	features := make(map[string]bool, len(r.cfg.Features)+len(t.Features))
	for _, f := range r.cfg.Features {
		features[f] = true
	}
	for _, f := range t.Features {
		if disabled, ok := strings.CutPrefix(f, "-"); ok {
			delete(features, disabled)
			continue
		}
		features[f] = true
	}
	return &Toolchain{cfg: r.cfg, features: features}
}

var _ ports.Toolchain = (*Toolchain)(nil)

// Toolchain is one target's resolved feature configuration.
type Toolchain struct {
	cfg      domain.ToolchainConfig
	features map[string]bool
}

// Enabled reports whether the action kind is part of the feature set.
func (tc *Toolchain) Enabled(action domain.ActionKind) bool {
	return tc.features[string(action)]
}

// CompilerPath resolves the executable for the given action. The C
// action falls back to the C++ driver when no dedicated C compiler is
// configured, matching the usual single-driver toolchain layout.
func (tc *Toolchain) CompilerPath(action domain.ActionKind) (string, bool) {
	var path string
	switch action {
	case domain.ActionCompileCpp:
		path = tc.cfg.Compiler
	case domain.ActionCompileC:
		path = tc.cfg.CCompiler
		if path == "" {
			path = tc.cfg.Compiler
		}
	}
	return path, path != ""
}

// CxxFlags returns the user-level C++-specific compile flags.
func (tc *Toolchain) CxxFlags() []string {
	return tc.cfg.Cxxopts
}

// CompileFlags returns the user-level flags shared by all compiles.
func (tc *Toolchain) CompileFlags() []string {
	return tc.cfg.Copts
}
