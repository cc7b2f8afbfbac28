package parser

import (
	"strconv"
	"strings"

	"github.com/structkit/cstruct/ctypes"
	"github.com/structkit/cstruct/errors"
	"github.com/structkit/cstruct/parser/internal/token"
)

// NamedSource pairs a source unit name with its text. The unit name
// only appears in diagnostics.
type NamedSource struct {
	Name string
	Text string
}

type parser struct {
	unit   string
	tokens []token.Token
	pos    int
}

// Parse extracts struct declarations from one source text. Recognized
// shapes are `typedef struct { ... } Name;` and `struct Name { ... };`.
// Tokens outside struct declarations are ignored, errors inside a
// declaration body are fatal.
func Parse(unit, src string) ([]*Decl, error) {
	clean, _ := stripDirectives(stripComments(src))
	return parseClean(unit, clean)
}

func parseClean(unit, clean string) ([]*Decl, error) {
	p := &parser{unit: unit, tokens: token.Tokenize(clean)}

	var decls []*Decl
	seen := make(map[string]*Decl)

	for {
		d, err := p.nextDecl()
		if err != nil {
			return nil, err
		}
		if d == nil {
			break
		}
		if prev, ok := seen[d.Name]; ok {
			return nil, errors.DuplicateDeclaration(d.Name, prev.Unit, d.Unit)
		}
		seen[d.Name] = d
		decls = append(decls, d)
	}

	return decls, nil
}

// ParseSources parses several source texts into one namespace.
func ParseSources(sources []NamedSource) (*Set, error) {
	set := NewSet()
	for _, src := range sources {
		decls, err := Parse(src.Name, src.Text)
		if err != nil {
			return nil, err
		}
		for _, d := range decls {
			if err := set.Add(d); err != nil {
				return nil, err
			}
		}
	}
	return set, nil
}

func (p *parser) peek() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.pos]
}

func (p *parser) next() *token.Token {
	if p.pos >= len(p.tokens) {
		return nil
	}
	t := &p.tokens[p.pos]
	p.pos++
	return t
}

func (p *parser) expect(typ token.Type) (*token.Token, error) {
	t := p.next()
	if t == nil {
		return nil, errors.Syntax(p.unit, p.lastLine(), "unexpected end of input, expected "+typ.String())
	}
	if t.Type != typ {
		return nil, errors.Syntax(p.unit, t.Line, "expected "+typ.String()+", got "+strconv.Quote(t.Value))
	}
	return t, nil
}

func (p *parser) lastLine() int {
	if len(p.tokens) == 0 {
		return 1
	}
	return p.tokens[len(p.tokens)-1].Line
}

// nextDecl scans forward to the next struct declaration and parses it.
// Returns nil when the token stream is exhausted.
func (p *parser) nextDecl() (*Decl, error) {
	for {
		t := p.next()
		if t == nil {
			return nil, nil
		}
		if t.Type != token.Ident {
			continue
		}

		switch t.Value {
		case "typedef":
			nxt := p.peek()
			if nxt == nil || nxt.Type != token.Ident || nxt.Value != "struct" {
				continue // typedef of something else, not ours
			}
			p.next() // consume "struct"
			// Optional struct tag before the brace.
			if tag := p.peek(); tag != nil && tag.Type == token.Ident {
				p.next()
			}
			fields, err := p.parseBody(t.Line)
			if err != nil {
				return nil, err
			}
			name, err := p.expect(token.Ident)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Semi); err != nil {
				return nil, err
			}
			return &Decl{Name: name.Value, Unit: p.unit, Fields: fields}, nil

		case "struct":
			// Plain `struct Name { ... };` declaration. A `struct Name`
			// not followed by a brace is a field type reference inside
			// some construct we skipped; ignore it.
			nameTok := p.peek()
			if nameTok == nil || nameTok.Type != token.Ident {
				continue
			}
			braceTok := p.pos + 1
			if braceTok >= len(p.tokens) || p.tokens[braceTok].Type != token.LBrace {
				continue
			}
			p.next() // name
			fields, err := p.parseBody(t.Line)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Semi); err != nil {
				return nil, err
			}
			return &Decl{Name: nameTok.Value, Unit: p.unit, Fields: fields}, nil
		}
	}
}

// parseBody parses `{ member* }`.
func (p *parser) parseBody(startLine int) ([]*FieldDecl, error) {
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	var fields []*FieldDecl
	for {
		t := p.peek()
		if t == nil {
			return nil, errors.Syntax(p.unit, startLine, "unterminated struct block")
		}
		if t.Type == token.RBrace {
			p.next()
			return fields, nil
		}
		f, err := p.parseMember()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
}

// parseMember parses `TypeName fieldName ([dim])* (: width)? ;`.
// TypeName may span several identifiers (unsigned long long) or carry
// a leading struct keyword.
func (p *parser) parseMember() (*FieldDecl, error) {
	first := p.peek()
	if first == nil || first.Type != token.Ident {
		line := p.lastLine()
		got := "end of input"
		if first != nil {
			line = first.Line
			got = strconv.Quote(first.Value)
		}
		return nil, errors.Syntax(p.unit, line, "expected member declaration, got "+got)
	}

	structRef := false
	if first.Value == "struct" {
		structRef = true
		p.next()
	}

	var words []string
	for {
		t := p.peek()
		if t == nil || t.Type != token.Ident {
			break
		}
		words = append(words, t.Value)
		p.next()
	}

	if len(words) < 2 {
		return nil, errors.Syntax(p.unit, first.Line, "member needs a type and a name")
	}

	fieldName := words[len(words)-1]
	typeName := strings.Join(words[:len(words)-1], " ")

	if structRef && strings.ContainsRune(typeName, ' ') {
		return nil, errors.Syntax(p.unit, first.Line, "struct reference must be a single type name")
	}

	prim, isPrim := ctypes.Lookup(typeName)
	if !isPrim && strings.ContainsRune(typeName, ' ') {
		// A multi-word type can only be a primitive; a struct name is
		// always a single identifier.
		return nil, errors.Syntax(p.unit, first.Line, "unknown type "+strconv.Quote(typeName))
	}

	field := &FieldDecl{
		Name:      fieldName,
		TypeName:  typeName,
		StructRef: structRef,
		Line:      first.Line,
	}

	for {
		t := p.peek()
		if t == nil || t.Type != token.LBracket {
			break
		}
		p.next()
		dimTok, err := p.expect(token.Number)
		if err != nil {
			return nil, err
		}
		dim, err := strconv.ParseInt(dimTok.Value, 0, 32)
		if err != nil || dim <= 0 {
			return nil, errors.Syntax(p.unit, dimTok.Line, "invalid array dimension "+strconv.Quote(dimTok.Value))
		}
		field.Dims = append(field.Dims, int(dim))
		if _, err := p.expect(token.RBracket); err != nil {
			return nil, err
		}
	}

	if t := p.peek(); t != nil && t.Type == token.Colon {
		p.next()
		widthTok, err := p.expect(token.Number)
		if err != nil {
			return nil, err
		}
		width, err := strconv.ParseInt(widthTok.Value, 0, 32)
		if err != nil || width <= 0 {
			return nil, errors.Syntax(p.unit, widthTok.Line, "invalid bit width "+strconv.Quote(widthTok.Value))
		}
		if field.IsArray() {
			return nil, errors.Syntax(p.unit, widthTok.Line, "array member cannot be a bit-field")
		}
		if !isPrim || prim.Kind != ctypes.Unsigned {
			return nil, errors.InvalidBitField([]string{fieldName},
				"bit-field base type must be an unsigned integer, have "+typeName)
		}
		if int(width) > prim.Bits() {
			return nil, errors.InvalidBitField([]string{fieldName},
				"bit width "+strconv.FormatInt(width, 10)+" exceeds "+typeName+" ("+strconv.Itoa(prim.Bits())+" bits)")
		}
		field.BitWidth = int(width)
	}

	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}

	return field, nil
}
