// Package export writes the confirmed gateway configuration to disk
// with restrictive permissions, and reads it back for overwrite
// warnings.
package export

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gatewayboot/internal/wizard"
)

// PermConfigFile restricts the exported config to its owner. The file
// names the operator's deployment layout, so rw------- (0600).
const PermConfigFile os.FileMode = 0o600

// Write marshals the configuration and writes it to path with owner-only
// permissions.
func Write(cfg *wizard.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}

	f, err := createSecure(path, PermConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Load reads a previously exported configuration.
func Load(path string) (*wizard.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg wizard.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// createSecure opens path for writing with the given permissions,
// chmodding explicitly so an open umask cannot widen them.
func createSecure(path string, perm os.FileMode) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	if err := os.Chmod(path, perm); err != nil {
		f.Close()
		return nil, fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	return f, nil
}
