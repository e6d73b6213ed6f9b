// Package tmpdir manages uniquely named temporary directories that exist for
// the duration of a bounded scope and are removed afterwards.
package tmpdir

import (
	"context"
	"os"

	"github.com/pkg/errors"

	"github.com/whitemech/logaut-go/logging"
)

var log = logging.Module("tmpdir")

const dirPrefix = "logaut"

// Directory is a uniquely named temporary directory exclusively owned by its
// creator.
type Directory struct {
	// Path is the absolute path of the directory.
	Path string
}

// New allocates a fresh, empty, uniquely named directory under the platform
// default location for temporary files.
func New(ctx context.Context) (*Directory, error) {
	path, err := os.MkdirTemp("", dirPrefix)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create temporary directory")
	}

	log(ctx).Debugw("created temporary directory", "path", path)

	return &Directory{Path: path}, nil
}

// Close removes the directory and everything under it. Permission errors are
// tolerated, since Windows refuses to remove files that are still open.
func (d *Directory) Close(ctx context.Context) error {
	err := os.RemoveAll(d.Path)

	switch {
	case err == nil:
		log(ctx).Debugw("removed temporary directory", "path", d.Path)

	case os.IsPermission(err):
		// open handles on Windows, nothing we can do about it

	default:
		return errors.Wrap(err, "unable to remove temporary directory")
	}

	return nil
}

// WithDirectory allocates a temporary directory, invokes fn with its path and
// removes the directory when fn returns, including when it returns an error.
// An error from fn takes precedence over a removal error.
func WithDirectory(ctx context.Context, fn func(dir string) error) (err error) {
	d, nerr := New(ctx)
	if nerr != nil {
		return nerr
	}

	defer func() {
		if cerr := d.Close(ctx); err == nil {
			err = cerr
		}
	}()

	return fn(d.Path)
}
