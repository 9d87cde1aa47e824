// Package synthesizer reconstructs compiler command lines from a
// target's resolved compilation context and toolchain configuration.
package synthesizer

import (
	"strconv"
	"strings"

	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
)

// Synthesizer builds one compile command per (target, file) pair. It is
// stateless; a single instance can be shared by concurrent traversals.
type Synthesizer struct{}

// New creates a new Synthesizer.
func New() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize reconstructs the compiler invocation for one file of one
// target. It returns ok=false when the file is not owned by the target,
// when the toolchain enables neither compile action, or when no
// compiler can be resolved for the chosen action. None of these are
// errors; the file simply contributes no entry.
//
// The command is composed in a fixed order: quoted compiler path,
// user-level C++-specific flags (C++ compiles only), user-level general
// compile flags, flags materialized from the compilation context, and
// feature-driven flags. Flag syntax is owned by the toolchain; only the
// selection and ordering of the groups is fixed here, which keeps the
// output deterministic for identical inputs.
func (s *Synthesizer) Synthesize(
	target *domain.BuildTarget,
	file string,
	tc ports.Toolchain,
) (domain.CompileCommand, bool) {
	if !target.Owns(file) {
		return domain.CompileCommand{}, false
	}

	action, ok := resolveAction(tc)
	if !ok {
		return domain.CompileCommand{}, false
	}

	compiler, ok := tc.CompilerPath(action)
	if !ok {
		return domain.CompileCommand{}, false
	}

	var flags []string
	if action == domain.ActionCompileCpp {
		flags = append(flags, tc.CxxFlags()...)
	}
	flags = append(flags, tc.CompileFlags()...)
	if target.Context != nil {
		flags = append(flags, tc.ContextFlags(target.Context)...)
	}
	flags = append(flags, tc.FeatureFlags(action)...)

	command := strconv.Quote(compiler)
	if len(flags) > 0 {
		command += " " + strings.Join(flags, " ")
	}

	return domain.CompileCommand{File: file, Command: command}, true
}

// resolveAction picks the compile action for the current feature
// configuration: C++ when enabled, otherwise plain C. Toolchains that
// enable neither (e.g. header-only feature sets) yield no action.
func resolveAction(tc ports.Toolchain) (domain.ActionKind, bool) {
	switch {
	case tc.Enabled(domain.ActionCompileCpp):
		return domain.ActionCompileCpp, true
	case tc.Enabled(domain.ActionCompileC):
		return domain.ActionCompileC, true
	default:
		return "", false
	}
}
