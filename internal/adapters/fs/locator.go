// Package fs locates library packages on a filesystem.
package fs

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
)

// Locator finds directories holding a library descriptor.
type Locator struct {
	fs billy.Filesystem
}

var _ ports.LibraryLocator = (*Locator)(nil)

// NewLocator creates a Locator on the host filesystem. Locations are absolute paths.
func NewLocator() *Locator {
	return NewLocatorFS(osfs.New("/"))
}

// NewLocatorFS creates a Locator on fs.
func NewLocatorFS(fs billy.Filesystem) *Locator {
	return &Locator{fs: fs}
}

// Packages yields every directory below root, root included, that holds a descriptor.
// VCS metadata directories are skipped. A missing root yields nothing.
func (l *Locator) Packages(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = util.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return filepath.SkipDir
			}
			if !info.IsDir() {
				if info.Name() == domain.DescriptorFileName && !yield(filepath.Dir(path)) {
					return filepath.SkipAll
				}
				return nil
			}
			if skipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		})
	}
}

func skipDir(name string) bool {
	return name == ".git" || name == ".jj" || name == domain.AnvilDirName
}

// ReadDescriptor returns the descriptor of the package at location.
func (l *Locator) ReadDescriptor(location string) ([]byte, error) {
	return util.ReadFile(l.fs, filepath.Join(location, domain.DescriptorFileName))
}
