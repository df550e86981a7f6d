package resource

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cwlabs/datakit/types"
)

// Container is a read-only namespace of packaged files. Its single capability
// is resolving a relative file name to a readable Handle.
type Container interface {
	// Resolve validates that name refers to an existing regular file inside
	// the container and returns a handle for reading it.
	Resolve(name string) (*Handle, error)
}

// Handle is a resolved, readable resource. Once a Handle exists, the
// underlying entry is known to be a regular file (not a directory, not a
// special file). Each Open returns an independent reader; the caller owns
// closing it.
type Handle struct {
	name   string
	path   string
	opener func() (io.ReadCloser, error)
}

// Name returns the file name the handle was resolved from.
func (h *Handle) Name() string { return h.name }

// Path returns the concrete location of the resource. For directory-backed
// containers this is a filesystem path; for fs.FS-backed containers it is the
// container label joined with the file name.
func (h *Handle) Path() string { return h.path }

// Open returns a new reader over the resource contents.
func (h *Handle) Open() (io.ReadCloser, error) {
	return h.opener()
}

// Dir is a Container backed by a filesystem directory.
type Dir struct {
	root string
}

// NewDir creates a directory-backed container rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Resolve implements Container.
func (d *Dir) Resolve(name string) (*Handle, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	p := filepath.Join(d.root, filepath.FromSlash(name))
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, types.Errorf(types.ErrResourceNotFound, "resource %q not found in %q", name, d.root)
		}
		return nil, types.Errorf(types.ErrResourceNotFound, "resource %q not accessible in %q", name, d.root).WithCause(err)
	}
	if info.IsDir() {
		return nil, types.Errorf(types.ErrResourceIsDirectory, "resource %q in %q is a directory", name, d.root)
	}
	if !info.Mode().IsRegular() {
		return nil, types.Errorf(types.ErrResourceNotAFile, "resource %q in %q is not a regular file", name, d.root)
	}

	return &Handle{
		name: name,
		path: p,
		opener: func() (io.ReadCloser, error) {
			return os.Open(p)
		},
	}, nil
}

// FS is a Container backed by any fs.FS, typically an embed.FS holding
// datasets packaged with the binary. The label identifies the container in
// error messages and handle paths.
type FS struct {
	fsys  fs.FS
	label string
}

// NewFS creates an fs.FS-backed container.
func NewFS(fsys fs.FS, label string) *FS {
	return &FS{fsys: fsys, label: label}
}

// Resolve implements Container.
func (f *FS) Resolve(name string) (*Handle, error) {
	if name == "" {
		return nil, types.NewError(types.ErrTypeMismatch, "file name must not be empty")
	}
	if !fs.ValidPath(name) {
		return nil, types.Errorf(types.ErrTypeMismatch, "file name %q is not a valid resource name", name)
	}

	info, err := fs.Stat(f.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, types.Errorf(types.ErrResourceNotFound, "resource %q not found in %q", name, f.label)
		}
		return nil, types.Errorf(types.ErrResourceNotFound, "resource %q not accessible in %q", name, f.label).WithCause(err)
	}
	if info.IsDir() {
		return nil, types.Errorf(types.ErrResourceIsDirectory, "resource %q in %q is a directory", name, f.label)
	}
	if !info.Mode().IsRegular() {
		return nil, types.Errorf(types.ErrResourceNotAFile, "resource %q in %q is not a regular file", name, f.label)
	}

	return &Handle{
		name: name,
		path: path.Join(f.label, name),
		opener: func() (io.ReadCloser, error) {
			return f.fsys.Open(name)
		},
	}, nil
}

// validateName rejects names that are empty, absolute, or escape the
// container root.
func validateName(name string) error {
	if name == "" {
		return types.NewError(types.ErrTypeMismatch, "file name must not be empty")
	}
	slashed := filepath.ToSlash(name)
	if path.IsAbs(slashed) || filepath.IsAbs(name) {
		return types.Errorf(types.ErrTypeMismatch, "file name %q must be relative to the container", name)
	}
	clean := path.Clean(slashed)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return types.Errorf(types.ErrTypeMismatch, "file name %q escapes the container", name)
	}
	return nil
}
