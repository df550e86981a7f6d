package table

import (
	"bufio"
	"io"
	"strings"

	"github.com/cwlabs/datakit/resource"
	"github.com/cwlabs/datakit/types"
)

// Dialect describes the parsing conventions of a delimited text file.
type Dialect struct {
	// Delimiter separates fields within a record.
	Delimiter rune
	// Quote wraps fields that contain the delimiter. Defaults to '"'.
	Quote rune
}

// candidateDelimiters are tried in priority order; earlier candidates win
// ties, so a comma-separated line never sniffs as colon-separated.
var candidateDelimiters = []rune{',', '\t', ';', '|', ':'}

// SniffDialect infers the delimiter and quote character from a single sample
// line, typically the header row. A candidate delimiter is plausible when it
// splits the line into two or more fields with balanced quoting; the
// candidate producing the most fields wins.
//
// Fails with DIALECT_INFERENCE_FAILED when no candidate is plausible (for
// example a single-column line). The caller decides whether to fall back, the
// sniffer never guesses silently.
func SniffDialect(sample string) (*Dialect, error) {
	line := strings.TrimRight(sample, "\r\n")
	if line == "" {
		return nil, types.NewError(types.ErrDialectInferenceFailed, "sample line is empty")
	}

	quote := detectQuote(line)

	var best rune
	bestFields := 1
	for _, delim := range candidateDelimiters {
		n, balanced := countFields(line, delim, quote)
		if !balanced {
			continue
		}
		if n > bestFields {
			bestFields = n
			best = delim
		}
	}
	if bestFields < 2 {
		return nil, types.Errorf(types.ErrDialectInferenceFailed, "no consistent delimiter found in sample %q", line)
	}

	return &Dialect{Delimiter: best, Quote: quote}, nil
}

// Sniff reads only the first line of the resource and infers its dialect.
// The line is decoded with the given IANA encoding name ("" means UTF-8).
func Sniff(h *resource.Handle, encodingName string) (*Dialect, error) {
	rc, err := h.Open()
	if err != nil {
		return nil, types.Errorf(types.ErrResourceNotFound, "open %s", h.Path()).WithCause(err)
	}
	defer rc.Close()

	r, err := DecodeReader(rc, encodingName)
	if err != nil {
		return nil, err
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, types.Errorf(types.ErrDialectInferenceFailed, "reading first line of %s", h.Path()).WithCause(err)
	}
	if strings.TrimRight(line, "\r\n") == "" {
		return nil, types.Errorf(types.ErrDialectInferenceFailed, "%s has no sample line to sniff", h.Path())
	}

	return SniffDialect(line)
}

// detectQuote picks the quote character used on the sample line. Double
// quotes take precedence; single quotes are recognized only when they open
// the line, to avoid misreading apostrophes inside field values.
func detectQuote(line string) rune {
	if strings.ContainsRune(line, '"') {
		return '"'
	}
	if strings.HasPrefix(line, "'") {
		return '\''
	}
	return '"'
}

// countFields counts the fields produced by splitting line on delim while
// honoring the quote character. balanced is false when the line ends inside
// an open quote.
func countFields(line string, delim, quote rune) (fields int, balanced bool) {
	count := 0
	inQuote := false
	for _, r := range line {
		switch {
		case r == quote:
			inQuote = !inQuote
		case r == delim && !inQuote:
			count++
		}
	}
	return count + 1, !inQuote
}
