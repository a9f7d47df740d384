package compiler

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// EntityTypeFilter selects types by name patterns. A restrictive filter
// with no patterns matches nothing; a permissive filter with no patterns
// matches everything. Otherwise a name matches when any pattern matches.
type EntityTypeFilter struct {
	patterns    []FilterPattern
	restrictive bool
}

// NewRestrictiveFilter parses patterns into a filter that matches nothing
// by default.
func NewRestrictiveFilter(patterns []string) (*EntityTypeFilter, error) {
	return newFilter(patterns, true)
}

// NewPermissiveFilter parses patterns into a filter that matches
// everything by default.
func NewPermissiveFilter(patterns []string) (*EntityTypeFilter, error) {
	return newFilter(patterns, false)
}

func newFilter(patterns []string, restrictive bool) (*EntityTypeFilter, error) {
	f := &EntityTypeFilter{restrictive: restrictive}
	for _, p := range patterns {
		pat, err := ParseFilterPattern(p)
		if err != nil {
			return nil, err
		}
		f.patterns = append(f.patterns, pat)
	}
	return f, nil
}

// Matches reports whether the filter selects the given type name.
func (f *EntityTypeFilter) Matches(q QualifiedName) bool {
	if len(f.patterns) == 0 {
		return !f.restrictive
	}
	for _, p := range f.patterns {
		if p.Matches(q) {
			return true
		}
	}
	return false
}

// FilterPattern is one parsed pattern: dot-separated namespace segments
// followed by a final name segment. A "*" segment matches any single
// namespace segment; a final segment of "*" matches any name, while
// "A|B" matches the listed names.
type FilterPattern struct {
	// segments are the namespace segments; empty string is a wildcard
	// hole.
	segments []string
	// names is the accepted-name set; nil means any name.
	names map[string]struct{}
}

// PatternError reports an unparsable filter pattern.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid filter pattern %q: %s", e.Pattern, e.Reason)
}

// The pattern grammar: segments separated by dots, each either a star or
// a list of identifiers separated by pipes. Pipes only make sense in the
// final segment.
type patternAST struct {
	Segments []patternSegmentAST `parser:"@@ ( '.' @@ )*"`
}

type patternSegmentAST struct {
	Star  bool     `parser:"  @'*'"`
	Names []string `parser:"| @Ident ( '|' @Ident )*"`
}

var patternParser = participle.MustBuild[patternAST](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Punct", Pattern: `[.*|]`},
	})),
)

// ParseFilterPattern parses one pattern string.
func ParseFilterPattern(s string) (FilterPattern, error) {
	if strings.TrimSpace(s) == "" {
		return FilterPattern{}, &PatternError{Pattern: s, Reason: "empty pattern"}
	}
	ast, err := patternParser.ParseString("", s)
	if err != nil {
		return FilterPattern{}, &PatternError{Pattern: s, Reason: err.Error()}
	}
	var p FilterPattern
	last := len(ast.Segments) - 1
	for i, seg := range ast.Segments[:last] {
		switch {
		case seg.Star:
			p.segments = append(p.segments, "")
		case len(seg.Names) == 1:
			p.segments = append(p.segments, seg.Names[0])
		default:
			return FilterPattern{}, &PatternError{
				Pattern: s,
				Reason:  fmt.Sprintf("alternatives in namespace segment %d", i+1),
			}
		}
	}
	final := ast.Segments[last]
	if !final.Star {
		p.names = make(map[string]struct{}, len(final.Names))
		for _, n := range final.Names {
			p.names[n] = struct{}{}
		}
	}
	return p, nil
}

// Matches reports whether the pattern selects the given type name. The
// namespace must have exactly as many segments as the pattern declares.
func (p FilterPattern) Matches(q QualifiedName) bool {
	if p.names != nil {
		if _, ok := p.names[q.Name]; !ok {
			return false
		}
	}
	segs := q.Namespace.Segments()
	if len(segs) != len(p.segments) {
		return false
	}
	for i, want := range p.segments {
		if want != "" && segs[i] != want {
			return false
		}
	}
	return true
}
