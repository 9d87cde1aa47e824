package workspace

// File is the YAML structure of the compdb.yaml workspace description.
type File struct {
	Version   string               `yaml:"version"`
	Workspace string               `yaml:"workspace"`
	Toolchain ToolchainDTO         `yaml:"toolchain"`
	Targets   map[string]TargetDTO `yaml:"targets"`
}

// ToolchainDTO describes the workspace toolchain configuration.
type ToolchainDTO struct {
	Compiler  string   `yaml:"compiler"`
	CCompiler string   `yaml:"c_compiler"`
	Features  []string `yaml:"features"`
	Copts     []string `yaml:"copts"`
	Cxxopts   []string `yaml:"cxxopts"`
}

// TargetDTO describes one build target in the configuration.
type TargetDTO struct {
	Kind     string      `yaml:"kind"`
	Srcs     []string    `yaml:"srcs"`
	Hdrs     []string    `yaml:"hdrs"`
	Deps     []string    `yaml:"deps"`
	Features []string    `yaml:"features"`
	Includes IncludesDTO `yaml:"includes"`
	Defines  []string    `yaml:"defines"`
}

// IncludesDTO groups the include directory kinds of a target.
type IncludesDTO struct {
	Quote     []string `yaml:"quote"`
	System    []string `yaml:"system"`
	Framework []string `yaml:"framework"`
}
