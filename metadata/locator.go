package metadata

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/pebsconsulting/createphp/errors"
)

// Locator finds and parses the metadata document of a class by searching an
// ordered list of directories.
type Locator struct {
	fs          billy.Filesystem
	directories []string
	logger      *slog.Logger
}

// NewLocator creates a locator over directories, searched in list order.
//
// When no filesystem is given the host filesystem is used and relative
// directories are resolved against the working directory.
func NewLocator(directories []string, opts ...Option) *Locator {
	o := applyOptions(opts...)

	dirs := append([]string(nil), directories...)
	fs := o.fs
	if fs == nil {
		fs = osfs.New(string(filepath.Separator))
		for i, dir := range dirs {
			if abs, err := filepath.Abs(dir); err == nil {
				dirs[i] = abs
			}
		}
	}

	return &Locator{
		fs:          fs,
		directories: dirs,
		logger:      o.logger,
	}
}

// Directories returns the search path in precedence order
func (l *Locator) Directories() []string {
	return append([]string(nil), l.directories...)
}

// Find returns the path of the first existing document for className.
// ok is false when no directory holds one.
func (l *Locator) Find(className string) (path string, ok bool) {
	filename := ClassFilename(className)
	for _, dir := range l.directories {
		candidate := l.fs.Join(dir, filename)
		info, err := l.fs.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		return candidate, true
	}
	return "", false
}

// Locate returns the parsed root element of the first document found for
// className, or nil when no directory holds one. Only the first match is
// read; documents in later directories are never consulted.
func (l *Locator) Locate(className string) (*Node, error) {
	path, ok := l.Find(className)
	if !ok {
		l.logger.Debug("no metadata document",
			"class", className,
			"file", ClassFilename(className),
			"directories", len(l.directories))
		return nil, nil
	}

	f, err := l.fs.Open(path)
	if err != nil {
		return nil, errors.WrapTransient(err, "Locator", "Locate", fmt.Sprintf("open %s", path))
	}
	defer f.Close()

	root, err := ParseDocument(f)
	if err != nil {
		return nil, errors.Wrap(err, "Locator", "Locate", fmt.Sprintf("parse %s", path))
	}

	l.logger.Debug("loaded metadata document", "class", className, "file", path)
	return root, nil
}
