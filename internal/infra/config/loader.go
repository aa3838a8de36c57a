package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/domainmodel/domain"
	"github.com/aalvaropc/domainmodel/ports"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in a root directory.
const FileName = "domainmodel.yaml"

// Load reads domainmodel.yaml from root and applies it on top of the defaults.
// A missing file is not an error: the defaults are returned as-is.
func Load(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)
	cfg, err := LoadFile(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads a config file at path. Unlike Load it fails when the file is missing.
func LoadFile(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}

// Loader adapts Load to ports.ConfigLoader.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ConfigLoader = (*Loader)(nil)

func (l *Loader) LoadConfig(root string) (domain.Config, error) {
	return Load(root)
}
