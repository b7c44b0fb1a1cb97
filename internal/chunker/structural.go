package chunker

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/securebyte/securebyte/pkg/types"
)

// nodeKind classifies a top-level declaration for chunking purposes
type nodeKind int

const (
	kindFunctionDecl nodeKind = iota
	kindTypeDecl
	kindImportStmt
	kindOtherStmt
)

// classify maps an AST declaration to its chunking classification
func classify(decl ast.Decl) nodeKind {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		return kindFunctionDecl
	case *ast.GenDecl:
		switch d.Tok {
		case token.IMPORT:
			return kindImportStmt
		case token.TYPE:
			return kindTypeDecl
		default:
			return kindOtherStmt
		}
	default:
		return kindOtherStmt
	}
}

// Structural splits Go source into one chunk per top-level function or
// type declaration, grouping leftover top-level declarations and hoisting
// the package clause and import declarations onto the chunk that follows
// them, so every chunk is independently analyzable.
type Structural struct{}

// NewStructural creates a new structural chunker
func NewStructural() *Structural {
	return &Structural{}
}

// Segment parses source and emits chunks in source order. It returns an
// error wrapping ErrParseFailed when the source does not parse or the walk
// yields nothing emittable; in that case no partial result is returned and
// the caller is expected to fall back to line-window chunking on the whole
// original text.
func (s *Structural) Segment(source string) ([]types.Chunk, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "source.go", source, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	w := &declWalker{fset: fset, source: source}

	// The package clause is context every chunk needs, the same way the
	// original file's imports are. Hoist it with the imports rather than
	// emitting it as a chunk of its own.
	if file.Package.IsValid() && file.Name != nil {
		w.pendingImports = append(w.pendingImports, w.span(file.Package, file.Name.End()))
	}

	for _, decl := range file.Decls {
		switch classify(decl) {
		case kindImportStmt:
			w.pendingImports = append(w.pendingImports, w.declSpan(decl))
		case kindOtherStmt:
			w.pendingOther = append(w.pendingOther, w.declSpan(decl))
		case kindFunctionDecl:
			w.flushLeftover()
			w.emit(w.declSpan(decl), types.ChunkFunction)
		case kindTypeDecl:
			w.flushLeftover()
			w.emit(w.declSpan(decl), types.ChunkTypeDecl)
		}
	}

	// Trailing top-level declarations become the final chunk. Unconsumed
	// imports are flushed too so the file's content survives intact.
	w.flushLeftover()
	w.flushImports()

	if len(w.chunks) == 0 {
		return nil, fmt.Errorf("%w: no emittable declarations", ErrParseFailed)
	}

	return w.chunks, nil
}

// declWalker accumulates hoisted imports and leftover declarations while
// walking top-level declarations in source order.
type declWalker struct {
	fset   *token.FileSet
	source string

	chunks         []types.Chunk
	pendingImports []string
	pendingOther   []string
}

// span extracts the exact source text between two token positions
func (w *declWalker) span(from, to token.Pos) string {
	start := w.fset.Position(from).Offset
	end := w.fset.Position(to).Offset
	if start < 0 || end > len(w.source) || start >= end {
		return ""
	}
	return w.source[start:end]
}

// declSpan extracts a declaration's full source span, doc comment included
func (w *declWalker) declSpan(decl ast.Decl) string {
	start := decl.Pos()
	switch d := decl.(type) {
	case *ast.FuncDecl:
		if d.Doc != nil {
			start = d.Doc.Pos()
		}
	case *ast.GenDecl:
		if d.Doc != nil {
			start = d.Doc.Pos()
		}
	}
	return w.span(start, decl.End())
}

// emit appends a chunk, prefixing and consuming any pending imports
func (w *declWalker) emit(body string, kind types.ChunkKind) {
	if body == "" {
		return
	}

	carried := w.pendingImports
	w.pendingImports = nil

	text := body
	if len(carried) > 0 {
		text = strings.Join(carried, "\n") + "\n" + body
	}

	w.chunks = append(w.chunks, types.Chunk{
		Index:          len(w.chunks),
		Text:           text,
		CarriedImports: carried,
		Kind:           kind,
	})
}

// flushLeftover emits accumulated non-import top-level declarations as a
// chunk of their own.
func (w *declWalker) flushLeftover() {
	if len(w.pendingOther) == 0 {
		return
	}
	body := strings.Join(w.pendingOther, "\n\n")
	w.pendingOther = nil
	w.emit(body, types.ChunkLeftover)
}

// flushImports emits imports that no later chunk consumed, so a file that
// ends in imports (or consists only of its package clause and imports)
// still reconstructs from its chunks.
func (w *declWalker) flushImports() {
	if len(w.pendingImports) == 0 {
		return
	}
	body := strings.Join(w.pendingImports, "\n")
	w.pendingImports = nil
	w.chunks = append(w.chunks, types.Chunk{
		Index: len(w.chunks),
		Text:  body,
		Kind:  types.ChunkLeftover,
	})
}
