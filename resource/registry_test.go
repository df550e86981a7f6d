package resource

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwlabs/datakit/types"
)

func TestRegistry_ResolveRegisteredModule(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "f.csv"), []byte("a\n1\n"), 0o644))

	r := NewRegistry()
	r.Register("test/data", NewDir(root))

	h, err := r.Resolve("test/data", "f.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "f.csv"), h.Path())
}

func TestRegistry_ModuleNotFound(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry().Resolve("no/such/module", "f.csv")
	assert.Equal(t, types.ErrModuleNotFound, types.GetErrorCode(err))
}

func TestRegistry_EmptyModuleName(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry().Resolve("", "f.csv")
	assert.Equal(t, types.ErrTypeMismatch, types.GetErrorCode(err))
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("m", NewFS(fstest.MapFS{"a": &fstest.MapFile{Data: []byte("1")}}, "first"))
	r.Register("m", NewFS(fstest.MapFS{"b": &fstest.MapFile{Data: []byte("2")}}, "second"))

	_, err := r.Resolve("m", "a")
	assert.Equal(t, types.ErrResourceNotFound, types.GetErrorCode(err))

	h, err := r.Resolve("m", "b")
	require.NoError(t, err)
	assert.Equal(t, "second/b", h.Path())
}

func TestRegistry_Modules(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("x", NewDir("."))
	r.Register("y", NewDir("."))

	assert.ElementsMatch(t, []string{"x", "y"}, r.Modules())
}

// ============================================================
// ResolveRef Tests
// ============================================================

func TestResolveRef(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"f.csv": &fstest.MapFile{Data: []byte("a\n")}}
	container := NewFS(fsys, "ref")

	t.Run("container reference", func(t *testing.T) {
		h, err := ResolveRef(container, "f.csv")
		require.NoError(t, err)
		assert.Equal(t, "ref/f.csv", h.Path())
	})

	t.Run("unregistered module name", func(t *testing.T) {
		_, err := ResolveRef("definitely/not/registered", "f.csv")
		assert.Equal(t, types.ErrModuleNotFound, types.GetErrorCode(err))
	})

	t.Run("nil reference", func(t *testing.T) {
		_, err := ResolveRef(nil, "f.csv")
		assert.Equal(t, types.ErrTypeMismatch, types.GetErrorCode(err))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := ResolveRef(42, "f.csv")
		assert.Equal(t, types.ErrTypeMismatch, types.GetErrorCode(err))
	})

	t.Run("nil container", func(t *testing.T) {
		_, err := ResolveRef((Container)(nil), "f.csv")
		assert.Equal(t, types.ErrTypeMismatch, types.GetErrorCode(err))
	})
}
