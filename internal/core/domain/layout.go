package domain

const (
	// ConfigFileName is the name of the workspace description file.
	ConfigFileName = "compdb.yaml"

	// DatabaseFileName is the default name of the emitted database.
	DatabaseFileName = "compile_commands.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
