package io

import (
	"errors"
	"os"
	"os/exec"

	"github.com/ezrec/funge/space"
)

// Bridge implements FileBridge against the host filesystem and shell.
// Both capabilities default to denied; the command line tool enables
// them from its configuration.
type Bridge struct {
	AllowFiles bool
	AllowExec  bool
}

// ReadFile returns the contents of the named host file.
func (b *Bridge) ReadFile(name string) ([]byte, error) {
	if !b.AllowFiles {
		return nil, ErrAccessDenied
	}

	return os.ReadFile(name)
}

// WriteFile replaces the named host file with data.
func (b *Bridge) WriteFile(name string, data []byte) error {
	if !b.AllowFiles {
		return ErrAccessDenied
	}

	return os.WriteFile(name, data, 0o644)
}

// Execute runs command through the host shell, sharing the process's
// standard streams, and returns the command's exit status.
func (b *Bridge) Execute(command string) (exit space.Cell, err error) {
	if !b.AllowExec {
		err = ErrAccessDenied
		return
	}

	cmd := exec.Command("sh", "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err = cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exit = space.Cell(exitErr.ExitCode())
		err = nil
	}

	return
}
