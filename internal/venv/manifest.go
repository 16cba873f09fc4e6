// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ManifestFileName is the marker file written into every environment
// created by install. Uninstall refuses to destroy directories without it.
const ManifestFileName = "manifest.toml"

// Manifest records how an environment was created.
type Manifest struct {
	// ID is the environment identifier.
	ID string `toml:"id"`
	// Python is the interpreter binary the environment was built with.
	Python string `toml:"python"`
	// Provisioner is the tool that created the environment.
	Provisioner string `toml:"provisioner"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `toml:"created_at"`
}

// WriteManifest writes the manifest into dir.
func WriteManifest(dir string, m *Manifest) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFileName), data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifest reads the manifest from dir.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		return nil, err
	}
	m := &Manifest{}
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return m, nil
}

// HasManifest reports whether dir carries a runtests manifest.
func HasManifest(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ManifestFileName))
	return err == nil && !info.IsDir()
}
