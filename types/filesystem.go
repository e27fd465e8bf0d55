package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

type FilesystemSource struct {
	Format FileFormat `yaml:"format" json:"format"`
	// Path to a file, directory or glob
	Path string `yaml:"path" json:"path"`
}

func (f *FilesystemSource) Type() ConnectorType {
	return FilesystemConnector
}

func (f *FilesystemSource) Check() error {
	ext := strings.TrimPrefix(filepath.Ext(f.Path), ".")
	if ext != "" && !strings.EqualFold(ext, f.Format.Extension()) {
		return fmt.Errorf("path %s has extension %q but format is %s", f.Path, ext, f.Format)
	}

	return nil
}

type FilesystemDestination struct {
	Name    string     `yaml:"name" json:"name"`
	BaseDir string     `yaml:"base_dir" json:"base_dir"`
	Format  FileFormat `yaml:"format" json:"format"`
}

func (f *FilesystemDestination) Type() ConnectorType {
	return FilesystemConnector
}

func (f *FilesystemDestination) Check() error {
	if f.Name == "." || f.Name == ".." || filepath.Base(f.Name) != f.Name {
		return fmt.Errorf("name %q must be a single path component", f.Name)
	}

	if strings.ContainsAny(f.BaseDir, "*?[") {
		return fmt.Errorf("base_dir %s must not contain glob patterns", f.BaseDir)
	}

	return nil
}

// OutputPath is where the destination's files are written
func (f *FilesystemDestination) OutputPath() string {
	return filepath.Join(f.BaseDir, f.Name)
}
