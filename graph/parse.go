package graph

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// dslLexer tokenizes the edge-list DSL. Arrow precedes Number so "->" never
// starts a negative literal.
var dslLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Number", Pattern: `-?\d+(?:\.\d+)?`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[(),:]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type dslFile struct {
	Statements []*dslStatement `parser:"@@*"`
}

type dslStatement struct {
	Pos lexer.Position

	Node *dslNode `parser:"  @@"`
	Edge *dslEdge `parser:"| @@"`
}

type dslNode struct {
	ID    string    `parser:"'node' @Ident"`
	Label string    `parser:"@String?"`
	At    *dslPoint `parser:"@@?"`
}

type dslPoint struct {
	X float64 `parser:"'(' @Number"`
	Y float64 `parser:"',' @Number ')'"`
}

type dslEdge struct {
	From   string  `parser:"@Ident '->'"`
	To     string  `parser:"@Ident"`
	Weight float64 `parser:"':' @Number"`
}

var dslParser = participle.MustBuild[dslFile](
	participle.Lexer(dslLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// Parse builds a Graph from the edge-list DSL:
//
//	node A "Start" (100, 150)   # explicit node, label and position optional
//	A -> B : 4                  # directed edge, endpoints auto-declared
//
// Nodes are ordered by first mention, explicit or implicit. A node statement
// for an ID that an earlier edge already declared is ErrDuplicateNode, so
// declare positioned nodes before the edges that use them.
//
// Errors: ErrSyntax (wrapping the parser message with line:column),
// ErrDuplicateNode, ErrNegativeWeight.
func Parse(text string) (*Graph, error) {
	ast, err := dslParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	g := New()
	for _, st := range ast.Statements {
		switch {
		case st.Node != nil:
			n := Node{ID: st.Node.ID, Label: st.Node.Label}
			if st.Node.At != nil {
				n.X, n.Y = st.Node.At.X, st.Node.At.Y
			}
			if err = g.AddNode(n); err != nil {
				return nil, fmt.Errorf("line %d: %w", st.Pos.Line, err)
			}
		case st.Edge != nil:
			if _, err = g.AddEdge(st.Edge.From, st.Edge.To, st.Edge.Weight); err != nil {
				return nil, fmt.Errorf("line %d: %w", st.Pos.Line, err)
			}
		}
	}

	return g, nil
}
