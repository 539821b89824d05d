package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/renameio"
	"github.com/mattn/go-isatty"
)

const defaultMode os.FileMode = 0644

// readInput reads all of the named file, or of stdin when name is "-",
// returning its permission bits for use when writing a new output.
func readInput(name string, stdin io.Reader) (_ []byte, _ os.FileMode, rerr error) {
	if name == "-" {
		if f, ok := stdin.(*os.File); ok && isTerminal(f) {
			return nil, 0, errTerminalInput
		}
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, 0, fmt.Errorf("reading stdin: %w", err)
		}
		return b, defaultMode, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if err := f.Close(); rerr == nil {
			rerr = err
		}
	}()
	info, err := f.Stat()
	if err != nil {
		return nil, 0, err
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, fmt.Errorf("reading %v: %w", name, err)
	}
	return b, info.Mode().Perm(), nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeOutput atomically replaces the named file with b, keeping the mode of
// any file already there, or writes b to stdout when name is "-".
func writeOutput(name string, b []byte, mode os.FileMode, stdout io.Writer) error {
	if name == "-" {
		_, err := stdout.Write(b)
		return err
	}

	if info, err := os.Stat(name); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	t, err := renameio.TempFile(filepath.Dir(name), name)
	if err != nil {
		return err
	}
	defer t.Cleanup()
	if err := t.Chmod(mode); err != nil {
		return err
	}
	if _, err := t.Write(b); err != nil {
		return fmt.Errorf("writing %v: %w", name, err)
	}
	return t.CloseAtomicallyReplace()
}
