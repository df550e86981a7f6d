package table

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/cwlabs/datakit/types"
)

// DecodeReader wraps r with a decoder for the named IANA encoding. An empty
// name or any UTF-8 alias returns r unchanged, keeping the common path free
// of a transform layer. An unknown encoding name is a TYPE_MISMATCH error.
func DecodeReader(r io.Reader, name string) (io.Reader, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return r, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, types.Errorf(types.ErrTypeMismatch, "unknown text encoding %q", name).WithCause(err)
	}
	if enc == nil {
		return nil, types.Errorf(types.ErrTypeMismatch, "text encoding %q has no decoder", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
