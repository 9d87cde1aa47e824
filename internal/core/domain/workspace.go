package domain

// ToolchainConfig is the workspace-wide toolchain description: compiler
// paths, the default feature set, and user-supplied compile flags.
type ToolchainConfig struct {
	Compiler  string
	CCompiler string
	Features  []string
	Copts     []string
	Cxxopts   []string
}

// Workspace is the loaded, validated build graph of one repository
// together with its toolchain configuration.
type Workspace struct {
	Name      string
	Toolchain ToolchainConfig
	Targets   map[Label]*BuildTarget
}
