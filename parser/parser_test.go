package parser

import (
	stderrors "errors"
	"testing"

	"github.com/structkit/cstruct/errors"
)

func mustParse(t *testing.T, src string) []*Decl {
	t.Helper()
	decls, err := Parse("test.h", src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return decls
}

func parseKind(t *testing.T, src string, kind errors.Kind) {
	t.Helper()
	_, err := Parse("test.h", src)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: kind}) {
		t.Fatalf("expected %s error, got %v", kind, err)
	}
}

func TestParseTypedef(t *testing.T) {
	decls := mustParse(t, `
		typedef struct {
			float temperature;
			uint16_t humidity;
			int32_t pressure;
		} SensorData;
	`)

	if len(decls) != 1 {
		t.Fatalf("decls: got %d, want 1", len(decls))
	}
	d := decls[0]
	if d.Name != "SensorData" {
		t.Errorf("name: got %q", d.Name)
	}
	if len(d.Fields) != 3 {
		t.Fatalf("fields: got %d, want 3", len(d.Fields))
	}
	want := []struct{ name, typ string }{
		{"temperature", "float"},
		{"humidity", "uint16_t"},
		{"pressure", "int32_t"},
	}
	for i, w := range want {
		if d.Fields[i].Name != w.name || d.Fields[i].TypeName != w.typ {
			t.Errorf("field %d: got %s %s, want %s %s",
				i, d.Fields[i].TypeName, d.Fields[i].Name, w.typ, w.name)
		}
	}
}

func TestParseTypedefWithTag(t *testing.T) {
	decls := mustParse(t, `
		typedef struct tagPoint {
			int32_t x;
			int32_t y;
		} Point;
	`)
	if decls[0].Name != "Point" {
		t.Errorf("name: got %q, want Point", decls[0].Name)
	}
}

func TestParsePlainStruct(t *testing.T) {
	decls := mustParse(t, `
		struct A {
			int32_t x;
			int32_t y;
		};

		struct B {
			struct A a;
			int32_t z;
		};
	`)

	if len(decls) != 2 {
		t.Fatalf("decls: got %d, want 2", len(decls))
	}
	b := decls[1]
	if b.Name != "B" {
		t.Errorf("name: got %q", b.Name)
	}
	if !b.Fields[0].StructRef || b.Fields[0].TypeName != "A" {
		t.Errorf("field a: got StructRef=%v TypeName=%q", b.Fields[0].StructRef, b.Fields[0].TypeName)
	}
}

func TestParseMultiWordTypes(t *testing.T) {
	decls := mustParse(t, `
		typedef struct {
			unsigned long long big;
			signed char tiny;
			long double wide;
		} Mixed;
	`)

	fields := decls[0].Fields
	if fields[0].TypeName != "unsigned long long" {
		t.Errorf("got %q", fields[0].TypeName)
	}
	if fields[1].TypeName != "signed char" {
		t.Errorf("got %q", fields[1].TypeName)
	}
	if fields[2].TypeName != "long double" {
		t.Errorf("got %q", fields[2].TypeName)
	}
}

func TestParseArrays(t *testing.T) {
	decls := mustParse(t, `
		typedef struct {
			float values[4];
			float matrix[3][3];
			uint8_t cube[2][3][4];
		} Arrays;
	`)

	fields := decls[0].Fields
	tests := []struct {
		idx  int
		dims []int
		flat int
	}{
		{0, []int{4}, 4},
		{1, []int{3, 3}, 9},
		{2, []int{2, 3, 4}, 24},
	}
	for _, tc := range tests {
		f := fields[tc.idx]
		if len(f.Dims) != len(tc.dims) {
			t.Fatalf("field %d dims: got %v, want %v", tc.idx, f.Dims, tc.dims)
		}
		for i := range tc.dims {
			if f.Dims[i] != tc.dims[i] {
				t.Errorf("field %d dim %d: got %d, want %d", tc.idx, i, f.Dims[i], tc.dims[i])
			}
		}
		if f.FlatLen() != tc.flat {
			t.Errorf("field %d flat: got %d, want %d", tc.idx, f.FlatLen(), tc.flat)
		}
	}
}

func TestParseBitFields(t *testing.T) {
	decls := mustParse(t, `
		typedef struct {
			uint8_t ready : 1;
			uint8_t mode : 3;
			uint16_t counter : 12;
		} Flags;
	`)

	fields := decls[0].Fields
	widths := []int{1, 3, 12}
	for i, w := range widths {
		if fields[i].BitWidth != w {
			t.Errorf("field %d width: got %d, want %d", i, fields[i].BitWidth, w)
		}
	}
}

func TestParseBitFieldErrors(t *testing.T) {
	t.Run("signed_base", func(t *testing.T) {
		parseKind(t, `typedef struct { int8_t v : 3; } S;`, errors.KindInvalidBitField)
	})
	t.Run("float_base", func(t *testing.T) {
		parseKind(t, `typedef struct { float v : 3; } S;`, errors.KindInvalidBitField)
	})
	t.Run("width_exceeds_base", func(t *testing.T) {
		parseKind(t, `typedef struct { uint8_t v : 9; } S;`, errors.KindInvalidBitField)
	})
	t.Run("array_bitfield", func(t *testing.T) {
		parseKind(t, `typedef struct { uint8_t v[2] : 3; } S;`, errors.KindSyntax)
	})
}

func TestParseComments(t *testing.T) {
	decls := mustParse(t, `
		// leading comment
		typedef struct {
			int32_t x; // trailing comment
			/* block
			   comment */
			int32_t y;
		} Commented;
	`)

	if len(decls[0].Fields) != 2 {
		t.Fatalf("fields: got %d, want 2", len(decls[0].Fields))
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	t.Run("unterminated_block", func(t *testing.T) {
		parseKind(t, `typedef struct { int32_t x;`, errors.KindSyntax)
	})
	t.Run("missing_semicolon", func(t *testing.T) {
		parseKind(t, `typedef struct { int32_t x } S;`, errors.KindSyntax)
	})
	t.Run("missing_name", func(t *testing.T) {
		parseKind(t, `typedef struct { int32_t; } S;`, errors.KindSyntax)
	})
	t.Run("bad_dimension", func(t *testing.T) {
		parseKind(t, `typedef struct { int32_t x[0]; } S;`, errors.KindSyntax)
	})
	t.Run("unknown_multiword_type", func(t *testing.T) {
		parseKind(t, `typedef struct { unsigned quad x; } S;`, errors.KindSyntax)
	})
}

func TestParseDuplicate(t *testing.T) {
	parseKind(t, `
		typedef struct { int32_t x; } S;
		typedef struct { int32_t y; } S;
	`, errors.KindDuplicateDecl)
}

func TestParseSources(t *testing.T) {
	t.Run("merged_namespace", func(t *testing.T) {
		set, err := ParseSources([]NamedSource{
			{Name: "a.h", Text: `typedef struct { int32_t x; } A;`},
			{Name: "b.h", Text: `typedef struct { int32_t y; } B;`},
		})
		if err != nil {
			t.Fatalf("ParseSources: %v", err)
		}
		if set.Len() != 2 {
			t.Errorf("len: got %d, want 2", set.Len())
		}
		if _, ok := set.Get("A"); !ok {
			t.Error("A missing")
		}
		if _, ok := set.Get("B"); !ok {
			t.Error("B missing")
		}
	})

	t.Run("cross_unit_duplicate", func(t *testing.T) {
		_, err := ParseSources([]NamedSource{
			{Name: "a.h", Text: `typedef struct { int32_t x; } S;`},
			{Name: "b.h", Text: `typedef struct { int32_t y; } S;`},
		})
		if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseParse, Kind: errors.KindDuplicateDecl}) {
			t.Fatalf("expected duplicate_declaration, got %v", err)
		}
	})
}

func TestParseIgnoresUnrelatedContent(t *testing.T) {
	decls := mustParse(t, `
		#include <stdint.h>
		#define MAX_SENSORS 4

		typedef unsigned int myint;

		typedef struct {
			int32_t x;
		} Only;
	`)

	if len(decls) != 1 || decls[0].Name != "Only" {
		t.Fatalf("got %d decls", len(decls))
	}
}
