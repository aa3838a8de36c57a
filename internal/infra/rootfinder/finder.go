package rootfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/domainmodel/domain"
)

// Finder walks upward from a directory until it finds one holding Marker.
type Finder struct {
	Marker string // defaults to "domainmodel.yaml"
}

func NewFinder() *Finder {
	return &Finder{Marker: "domainmodel.yaml"}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "rootfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("start directory is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "rootfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Path: startDir,
			Err:  err,
		}
	}

	// A file path starts the search from its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for cur := filepath.Clean(abs); ; {
		if _, err := os.Stat(filepath.Join(cur, f.Marker)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "rootfinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
