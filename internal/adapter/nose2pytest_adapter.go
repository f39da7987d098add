package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ConverterAdapter abstracts an external assertion converter. The converter
// is a black box: it takes file content and returns rewritten content.
type ConverterAdapter interface {
	// Name identifies the converter in reports.
	Name() string

	// Available reports whether the converter can be invoked at all.
	Available() bool

	// Convert runs the converter over content and returns the result.
	Convert(ctx context.Context, content string) (string, error)
}

// Nose2PytestAdapter drives the nose2pytest tool, which rewrites nose.tools
// assertion calls into plain assert statements.
type Nose2PytestAdapter struct {
	command []string
	timeout time.Duration
}

// NewNose2PytestAdapter constructs an adapter for the given converter
// command, typically ["nose2pytest"].
func NewNose2PytestAdapter(command []string, timeout time.Duration) *Nose2PytestAdapter {
	if len(command) == 0 {
		command = []string{"nose2pytest"}
	}

	return &Nose2PytestAdapter{
		command: command,
		timeout: timeout,
	}
}

// Name identifies the converter in reports.
func (a *Nose2PytestAdapter) Name() string {
	return filepath.Base(a.command[0])
}

// Available reports whether the converter executable is on PATH.
func (a *Nose2PytestAdapter) Available() bool {
	_, err := exec.LookPath(a.command[0])
	return err == nil
}

// Convert writes content to a temporary file, runs the converter over it in
// place, and reads the result back.
func (a *Nose2PytestAdapter) Convert(ctx context.Context, content string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	tmp, err := os.CreateTemp("", "nosey-pytest-*.py")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmp.Name()

	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	args := append(append([]string{}, a.command[1:]...), tmpPath)

	// #nosec G204 - the converter command comes from user configuration
	cmd := exec.CommandContext(ctx, a.command[0], args...)

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %w: %s", a.Name(), err, strings.TrimSpace(stderr.String()))
	}

	converted, err := os.ReadFile(tmpPath) // #nosec G304 - path from os.CreateTemp
	if err != nil {
		return "", fmt.Errorf("reading converter output: %w", err)
	}

	return string(converted), nil
}
