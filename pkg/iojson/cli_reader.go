package iojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrInteractiveStdin is returned when input would be read from a terminal.
var ErrInteractiveStdin = errors.New("no input provided (stdin is a terminal); use -f flag or pipe input")

// FileReader reads command input from the file named by its flag, falling
// back to a non-interactive stdin.
type FileReader[T any] struct {
	fileFlagValue string

	// Stdin overrides os.Stdin. A non-nil Stdin is never treated as a
	// terminal.
	Stdin io.Reader
}

func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to input file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// SetFile sets the file path as if the flag had been given.
func (fr *FileReader[T]) SetFile(path string) {
	fr.fileFlagValue = path
}

// Open returns the input stream. The caller closes it.
func (fr *FileReader[T]) Open() (io.ReadCloser, error) {
	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		return f, nil
	}

	if fr.Stdin != nil {
		return io.NopCloser(fr.Stdin), nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrInteractiveStdin
	}
	return io.NopCloser(os.Stdin), nil
}

// Read decodes the input as a single JSON value.
func (fr *FileReader[T]) Read() (T, error) {
	var input T

	r, err := fr.Open()
	if err != nil {
		return input, err
	}
	defer func() { _ = r.Close() }()

	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}
