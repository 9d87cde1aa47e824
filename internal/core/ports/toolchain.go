package ports

import "go.trai.ch/compdb/internal/core/domain"

// Toolchain is the oracle for one target's resolved feature
// configuration. The synthesizer fixes only the selection and ordering
// of flag groups; flag syntax and materialization belong here.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// Enabled reports whether the action kind is enabled for the
	// current feature configuration.
	Enabled(action domain.ActionKind) bool

	// CompilerPath returns the executable for the given action, or
	// ok=false if the toolchain cannot resolve one.
	CompilerPath(action domain.ActionKind) (path string, ok bool)

	// CxxFlags returns the user-level C++-specific compile flags.
	CxxFlags() []string

	// CompileFlags returns the user-level flags shared by all compiles.
	CompileFlags() []string

	// ContextFlags materializes flags from a compilation context:
	// quote/system/framework include directories and defines.
	ContextFlags(cc *domain.CompilationContext) []string

	// FeatureFlags returns flags injected by enabled named features,
	// e.g. position-independent code or sanitizers.
	FeatureFlags(action domain.ActionKind) []string
}

// ToolchainResolver yields the toolchain view for a concrete target,
// with the target's feature overrides applied.
type ToolchainResolver interface {
	ForTarget(t *domain.BuildTarget) Toolchain
}
