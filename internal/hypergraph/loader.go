package hypergraph

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	kgerrors "github.com/kgcore/kgcore/pkg/errors"
	"github.com/kgcore/kgcore/pkg/utils"
)

// LoaderOption configures a Loader. Mirrors the functional-options shape
// used throughout this codebase's ambient packages.
type LoaderOption func(*Loader)

// WithStrictMode makes the loader return a MalformedToken error (instead of
// logging and skipping) the first time it encounters an unparseable token.
func WithStrictMode(strict bool) LoaderOption {
	return func(l *Loader) { l.strict = strict }
}

// WithLogger overrides the logger used to report skipped tokens.
func WithLogger(logger utils.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// Loader reads the hypergraph text format described by the external
// interface contract: one hyperedge per line, '#'-prefixed or blank lines
// ignored, comma-separated tokens if a comma is present on the line,
// otherwise whitespace-separated, each token a non-negative integer vertex
// id. Malformed tokens are logged and skipped; the line's remaining valid
// tokens still form an edge.
type Loader struct {
	strict bool
	logger utils.Logger
}

// NewLoader builds a Loader with the given options.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		logger: utils.NewDefaultLogger(utils.LevelInfo, os.Stderr),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile opens path and loads a Hypergraph from it. Returns an
// InputOpenFailure-tagged error (as an empty hypergraph alongside the
// error) if the file cannot be opened; callers treat that as fatal.
func (l *Loader) LoadFile(path string) (*Hypergraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return New(), kgerrors.Wrap(kgerrors.CodeInputOpenFailure, "failed to open hypergraph file: "+path, err)
	}
	defer f.Close()
	return l.Load(f)
}

// Load reads the hypergraph format from r.
func (l *Loader) Load(r io.Reader) (*Hypergraph, error) {
	h := New()
	scanner := bufio.NewScanner(r)
	// Lines can be long for high-arity hyperedges; grow past the default
	// 64KiB token limit.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var tokens []string
		if strings.Contains(line, ",") {
			tokens = strings.Split(line, ",")
		} else {
			tokens = strings.Fields(line)
		}

		vertices := make([]Vertex, 0, len(tokens))
		for _, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			id, err := strconv.ParseUint(tok, 10, 32)
			if err != nil {
				if l.strict {
					return New(), kgerrors.Wrap(kgerrors.CodeMalformedToken,
						"malformed vertex token on line "+strconv.Itoa(lineNo)+": "+tok, err)
				}
				l.logger.Warn("skipping malformed vertex token %q on line %d: %v", tok, lineNo, err)
				continue
			}
			vertices = append(vertices, Vertex(id))
		}

		if len(vertices) == 0 {
			continue
		}
		h.AddEdge(NewEdge(vertices))
	}

	if err := scanner.Err(); err != nil {
		return New(), kgerrors.Wrap(kgerrors.CodeInputOpenFailure, "failed reading hypergraph source", err)
	}

	return h, nil
}
