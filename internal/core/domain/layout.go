package domain

import "path/filepath"

const (
	// AnvilDirName is the name of the per-project metadata directory.
	AnvilDirName = ".anvil"

	// ProjectFileName is the name of the project file.
	ProjectFileName = "anvil.yaml"

	// DescriptorFileName is the name of the descriptor at the root of a library package.
	DescriptorFileName = "anvil-lib.yaml"

	// JournalFileName is the name of the run journal.
	JournalFileName = "journal.json"

	// LibDirEnv names the environment variable holding the shared library directory.
	LibDirEnv = "ANVIL_LIB_DIR"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultJournalPath returns the default run journal path below root.
// It joins root, .anvil and journal.json.
func DefaultJournalPath(root string) string {
	return filepath.Join(root, AnvilDirName, JournalFileName)
}
