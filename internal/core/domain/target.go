package domain

import (
	"slices"
	"strings"
)

// RuleKind is the rule that produced a target. Only the kinds listed
// here take part in compilation database generation; everything else is
// silently skipped during traversal.
type RuleKind string

const (
	// RuleCcLibrary is a static C/C++ library.
	RuleCcLibrary RuleKind = "cc_library"
	// RuleCcSharedLibrary is a shared C/C++ library.
	RuleCcSharedLibrary RuleKind = "cc_shared_library"
	// RuleCcBinary is an executable.
	RuleCcBinary RuleKind = "cc_binary"
	// RuleCcTest is a test binary.
	RuleCcTest RuleKind = "cc_test"
	// RuleCcProtoLibrary is a library compiled from protobuf-generated sources.
	RuleCcProtoLibrary RuleKind = "cc_proto_library"
	// RuleObjcLibrary is the platform-native Objective-C library variant.
	RuleObjcLibrary RuleKind = "objc_library"
)

// Recognized reports whether the kind participates in database generation.
func (k RuleKind) Recognized() bool {
	switch k {
	case RuleCcLibrary, RuleCcSharedLibrary, RuleCcBinary, RuleCcTest,
		RuleCcProtoLibrary, RuleObjcLibrary:
		return true
	default:
		return false
	}
}

// ActionKind is the category of compiler invocation a toolchain may or
// may not support for a given feature configuration.
type ActionKind string

const (
	// ActionCompileCpp is a C++ compile.
	ActionCompileCpp ActionKind = "c++-compile"
	// ActionCompileC is a plain C compile.
	ActionCompileC ActionKind = "c-compile"
)

// Define is a single preprocessor definition with an optional value.
type Define struct {
	Name  string
	Value string
}

// String renders the define as it appears on a command line, without
// the flag prefix: "NAME" or "NAME=VALUE".
func (d Define) String() string {
	if d.Value == "" {
		return d.Name
	}
	return d.Name + "=" + d.Value
}

// ParseDefine splits a "NAME" or "NAME=VALUE" string into a Define.
func ParseDefine(s string) Define {
	name, value, _ := strings.Cut(s, "=")
	return Define{Name: name, Value: value}
}

// CompilationContext holds the per-target resolved compiler inputs.
// It is owned by a BuildTarget and never mutated after construction.
type CompilationContext struct {
	QuoteIncludes     []string
	SystemIncludes    []string
	FrameworkIncludes []string
	Defines           []Define
}

// BuildTarget is a node in the build graph. Targets are created by the
// workspace loader and are read-only to the engine.
type BuildTarget struct {
	Label    Label
	Kind     RuleKind
	Srcs     []string
	Hdrs     []string
	Deps     []Label
	Features []string
	Context  *CompilationContext
}

// CompilableFiles enumerates the files a compile command can be
// synthesized for: declared sources and headers, plus the generated
// .pb.h/.pb.cc pair derived from each .proto source of a proto library.
func (t *BuildTarget) CompilableFiles() []string {
	if t.Kind == RuleCcProtoLibrary {
		files := make([]string, 0, 2*len(t.Srcs))
		for _, src := range t.Srcs {
			stem, ok := strings.CutSuffix(src, ".proto")
			if !ok {
				continue
			}
			files = append(files, stem+".pb.h", stem+".pb.cc")
		}
		return files
	}

	files := make([]string, 0, len(t.Srcs)+len(t.Hdrs))
	files = append(files, t.Srcs...)
	files = append(files, t.Hdrs...)
	return files
}

// Owns reports whether file is one of the target's declared sources or
// headers, or one of its generated proto sources (recognized by the .h
// and .cc extensions).
func (t *BuildTarget) Owns(file string) bool {
	if slices.Contains(t.Srcs, file) || slices.Contains(t.Hdrs, file) {
		return true
	}
	if t.Kind == RuleCcProtoLibrary &&
		(strings.HasSuffix(file, ".h") || strings.HasSuffix(file, ".cc")) {
		return slices.Contains(t.CompilableFiles(), file)
	}
	return false
}
