// Package resource locates files inside packaged, read-only namespaces.
//
// A Container is a namespace with a single capability: resolving a relative
// file name to a readable Handle. Two implementations are provided:
//
//   - Dir wraps a filesystem directory.
//   - FS wraps any fs.FS, most usefully an embed.FS shipped with the binary.
//
// Containers are addressed by module name through a Registry, so callers ask
// for ("datakit/data", "iris.csv") rather than for a concrete path:
//
//	h, err := resource.Resolve("datakit/data", "iris.csv")
//	rc, err := h.Open()
//	defer rc.Close()
//
// Resolution is side-effect free: it performs read-only existence checks and
// guarantees that a returned Handle points at a regular file.
package resource
