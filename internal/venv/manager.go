// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/torwald-sergesson/runtests/internal/config"
	"github.com/torwald-sergesson/runtests/internal/issue"

	"github.com/charmbracelet/log"
)

const (
	// DefaultID is the pseudo-identifier meaning "do not switch": checks
	// run in whatever context is already active.
	DefaultID = "default"

	// EnvVarActive names the environment variable that exposes the
	// identifier of the active environment to child processes.
	EnvVarActive = "RUNTESTS_ENV"
	// EnvVarVirtualEnv is set to the environment directory for
	// compatibility with python tooling that inspects VIRTUAL_ENV.
	EnvVarVirtualEnv = "VIRTUAL_ENV"
	// EnvVarPath is the executable search path propagated into invoked
	// collaborators.
	EnvVarPath = "PATH"
)

type (
	// Snapshot captures the ambient activation state (PATH plus the
	// activation marker variables) so a run can restore it exactly on
	// every exit path.
	Snapshot struct {
		Path          string
		Active        string
		ActiveSet     bool
		VirtualEnv    string
		VirtualEnvSet bool
	}

	// activation records what SwitchTo changed, so Deactivate can put the
	// previous values back.
	activation struct {
		id       string
		snapshot Snapshot
	}

	// Manager creates, destroys and switches into/out of isolated
	// environments. It owns the single process-wide activation slot:
	// switching to environment B implicitly deactivates A.
	Manager struct {
		// Root is the directory holding the environments.
		Root string
		// Provision configures how install builds environments.
		Provision config.ProvisionConfig
		// Logger receives lifecycle diagnostics.
		Logger *log.Logger

		// Stdout/Stderr receive provisioning tool output.
		Stdout io.Writer
		Stderr io.Writer

		active *activation
	}
)

// NewManager creates a Manager from configuration.
func NewManager(cfg *config.Config, logger *log.Logger) *Manager {
	return &Manager{
		Root:      cfg.EnvsRoot,
		Provision: cfg.Provision,
		Logger:    logger,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

// EnvPath returns the deterministic directory for an environment id.
func (m *Manager) EnvPath(id string) string {
	return filepath.Join(m.Root, id)
}

// ActiveID returns the identifier of the currently active environment, or
// "" when nothing is active.
func (m *Manager) ActiveID() string {
	if m.active == nil {
		return ""
	}
	return m.active.id
}

// Snapshot captures the current ambient activation state.
func (m *Manager) Snapshot() Snapshot {
	s := Snapshot{Path: os.Getenv(EnvVarPath)}
	s.Active, s.ActiveSet = os.LookupEnv(EnvVarActive)
	s.VirtualEnv, s.VirtualEnvSet = os.LookupEnv(EnvVarVirtualEnv)
	return s
}

// Restore puts the ambient activation state back exactly as captured and
// clears the activation slot. It is safe to call on every exit path.
func (m *Manager) Restore(s Snapshot) error {
	if err := os.Setenv(EnvVarPath, s.Path); err != nil {
		return fmt.Errorf("failed to restore %s: %w", EnvVarPath, err)
	}
	if err := restoreVar(EnvVarActive, s.Active, s.ActiveSet); err != nil {
		return err
	}
	if err := restoreVar(EnvVarVirtualEnv, s.VirtualEnv, s.VirtualEnvSet); err != nil {
		return err
	}
	m.active = nil
	return nil
}

func restoreVar(key, value string, wasSet bool) error {
	if wasSet {
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to restore %s: %w", key, err)
		}
		return nil
	}
	if err := os.Unsetenv(key); err != nil {
		return fmt.Errorf("failed to unset %s: %w", key, err)
	}
	return nil
}

// SwitchTo activates the environment named by id, deactivating whatever was
// active first. Switching to DefaultID is a no-op beyond reporting the
// ambient context.
func (m *Manager) SwitchTo(id string) error {
	if id == DefaultID {
		ambient := "none"
		if v, ok := os.LookupEnv(EnvVarActive); ok {
			ambient = v
		}
		// The ambient report is user output, not a diagnostic: it must
		// stay visible without --verbose.
		if m.Stdout != nil {
			fmt.Fprintf(m.Stdout, "using ambient environment: %s\n", ambient)
		}
		if m.Logger != nil {
			m.Logger.Debug("using ambient environment", "env", ambient)
		}
		return nil
	}

	m.Deactivate()

	dir := m.EnvPath(id)
	binDir := filepath.Join(dir, binDirName())
	if info, err := os.Stat(binDir); err != nil || !info.IsDir() {
		return issue.WrapWithContext(issue.ErrEnvNotFound, "activate environment", id)
	}

	prev := m.Snapshot()
	if err := os.Setenv(EnvVarPath, binDir+string(os.PathListSeparator)+prev.Path); err != nil {
		return fmt.Errorf("failed to set %s: %w", EnvVarPath, err)
	}
	if err := os.Setenv(EnvVarActive, id); err != nil {
		return fmt.Errorf("failed to set %s: %w", EnvVarActive, err)
	}
	if err := os.Setenv(EnvVarVirtualEnv, dir); err != nil {
		return fmt.Errorf("failed to set %s: %w", EnvVarVirtualEnv, err)
	}

	m.active = &activation{id: id, snapshot: prev}
	if m.Logger != nil {
		m.Logger.Debug("activated environment", "env", id, "path", dir)
	}
	return nil
}

// Deactivate undoes the current activation, if any. Safe to call when
// nothing is active.
func (m *Manager) Deactivate() {
	if m.active == nil {
		return
	}
	// Best effort: a failed Setenv here leaves nothing better to do.
	_ = os.Setenv(EnvVarPath, m.active.snapshot.Path)
	_ = restoreVar(EnvVarActive, m.active.snapshot.Active, m.active.snapshot.ActiveSet)
	_ = restoreVar(EnvVarVirtualEnv, m.active.snapshot.VirtualEnv, m.active.snapshot.VirtualEnvSet)
	if m.Logger != nil {
		m.Logger.Debug("deactivated environment", "env", m.active.id)
	}
	m.active = nil
}

// Install creates (or recreates) the environment named by id at its
// deterministic location and provisions it with the configured
// requirements. It never leaves the new environment active, and it is safe
// to re-run: an existing environment is removed and rebuilt.
func (m *Manager) Install(ctx context.Context, id string) error {
	m.Deactivate()

	dir := m.EnvPath(id)
	if err := os.RemoveAll(dir); err != nil {
		return issue.WrapWithContext(err, "recreate environment directory", dir)
	}
	if err := os.MkdirAll(m.Root, 0o755); err != nil {
		return issue.WrapWithContext(err, "create environments root", m.Root)
	}

	python := PythonBinary(id)
	if m.Logger != nil {
		m.Logger.Info("installing environment", "env", id, "python", python, "dir", dir)
	}

	if err := m.runTool(ctx, m.Provision.Tool, "--python", python, dir); err != nil {
		return issue.NewErrorContext().
			WithOperation("provision environment").
			WithResource(id).
			WithSuggestion(fmt.Sprintf("Check that %s and %s are installed and on your PATH", m.Provision.Tool, python)).
			Wrap(err).
			BuildError()
	}

	pip := filepath.Join(dir, binDirName(), "pip")
	for _, req := range m.Provision.Requirements {
		if _, err := os.Stat(req); err != nil {
			continue // missing requirements files are skipped
		}
		if err := m.runTool(ctx, pip, "install", "-r", req); err != nil {
			return issue.WrapWithContext(err, "install requirements", req)
		}
	}

	manifest := &Manifest{
		ID:          id,
		Python:      python,
		Provisioner: m.Provision.Tool,
		CreatedAt:   time.Now().UTC(),
	}
	if err := WriteManifest(dir, manifest); err != nil {
		return issue.WrapWithContext(err, "write environment manifest", dir)
	}

	return nil
}

// Uninstall deactivates any active environment and destroys the one named
// by id. A missing environment is a successful no-op; a directory without
// a runtests manifest is refused.
func (m *Manager) Uninstall(id string) error {
	m.Deactivate()

	dir := m.EnvPath(id)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if m.Logger != nil {
			m.Logger.Info("environment already absent", "env", id)
		}
		return nil
	}

	if !HasManifest(dir) {
		return issue.WrapWithContext(issue.ErrEnvNotManaged, "uninstall environment", dir)
	}

	if err := os.RemoveAll(dir); err != nil {
		return issue.WrapWithContext(err, "remove environment", dir)
	}
	if m.Logger != nil {
		m.Logger.Info("uninstalled environment", "env", id)
	}
	return nil
}

// runTool dispatches a lifecycle tool invocation. Unlike check tasks, a
// nonzero exit here is an error: lifecycle operations abort the run.
func (m *Manager) runTool(ctx context.Context, name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return issue.WrapWithContext(issue.ErrToolNotFound, "locate lifecycle tool", name)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Env = os.Environ()
	cmd.Stdout = m.Stdout
	cmd.Stderr = m.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}
