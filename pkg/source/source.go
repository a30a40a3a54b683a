// Package source acquires raw entry names for the selection pipeline:
// from a line-delimited list file or from a directory listing. The core
// never touches the filesystem itself; this is the collaborator side.
package source

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"romsieve/pkg/errors"
	"romsieve/pkg/logging"
)

// Read returns entry names from a path: a directory yields its file
// names (extension stripped, sorted), anything else is read as a
// line-delimited list file.
func Read(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogRead, "cannot read catalog source %s", path)
	}
	if info.IsDir() {
		return FromDir(path)
	}
	return FromFile(path)
}

// FromFile reads a line-delimited list file.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogRead, "cannot open list file %s", path)
	}
	defer func() { _ = f.Close() }()

	names, err := FromLines(f)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogRead, "cannot read list file %s", path)
	}
	return names, nil
}

// FromLines reads entry names from a reader, one per line. Blank lines
// are skipped; line order is preserved (the sequential-prefix grouper
// assumes the list is sorted).
func FromLines(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// FromDir lists the files of a directory as entry names, with the file
// extension stripped, sorted by name. Subdirectories and dotfiles are
// ignored.
func FromDir(path string) ([]string, error) {
	logger := logging.GetLogger("source")

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogRead, "cannot list directory %s", path)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() || strings.HasPrefix(de.Name(), ".") {
			continue
		}
		name := de.Name()
		if ext := filepath.Ext(name); ext != "" {
			name = strings.TrimSuffix(name, ext)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	logger.Debug().Str("dir", path).Int("entries", len(names)).Msg("Directory listed")
	return names, nil
}
