package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hexcomb/hexcomb/pkg/honeycomb"
)

// stdoutPath selects os.Stdout instead of a file as the output target.
const stdoutPath = "-"

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is "-", it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == stdoutPath {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// defaultBase returns the derived output base name for a grid of the given
// size, without a format extension (e.g., "honeycomb_10x8").
func defaultBase(columns, rows int) string {
	return fmt.Sprintf("honeycomb_%dx%d", columns, rows)
}

// basePath derives the base output path used when file names carry a format
// suffix. If output is empty, the default honeycomb_<columns>x<rows> base is
// used. If output ends in a known format extension (.svg, .png, .json), that
// extension is stripped so per-format names like base.svg and base.png can
// be built from a single --output value.
func basePath(output string, columns, rows int) string {
	if output == "" {
		return defaultBase(columns, rows)
	}
	ext := filepath.Ext(output)
	if honeycomb.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPath returns the output path for one rendered format.
// "-" passes through so the caller can stream a single format to stdout.
// A non-empty output is used verbatim for a single format; with multiple
// formats, every file gets the format as its extension.
func artifactPath(output, format string, columns, rows int, multi bool) string {
	if output == stdoutPath {
		return stdoutPath
	}
	if !multi && output != "" {
		return output
	}
	return basePath(output, columns, rows) + "." + format
}

// writeArtifact writes rendered bytes to path, creating or overwriting the
// target file. Writing to "-" streams to stdout.
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.Write(data)
	return err
}
