package domain

const (
	// ExecRootPlaceholder stands in for the execution root in the
	// emitted database. Consumers substitute their own resolved path.
	ExecRootPlaceholder = "__EXEC_ROOT__"

	// WorkspacePlaceholder prefixes every file path in the emitted
	// database and stands in for the workspace root.
	WorkspacePlaceholder = "__WORKSPACE__"
)

// CompileCommand is one record of the compilation database: the full
// compiler invocation for a single source file of a single target.
// It is immutable once produced.
//
// Two distinct targets may legitimately reference the same physical
// file with different flags; such entries are preserved side by side,
// never merged. Deduplication happens at the target-visit level.
type CompileCommand struct {
	// File is the source path relative to the workspace root.
	File string
	// Command is the full shell-invocable compiler command line.
	Command string
}
