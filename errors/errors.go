package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse   Phase = "parse"   // grammar parsing and include expansion
	PhaseResolve Phase = "resolve" // struct reference resolution
	PhaseLayout  Phase = "layout"  // offset and size computation
	PhasePack    Phase = "pack"    // value to bytes
	PhaseUnpack  Phase = "unpack"  // bytes to value
)

// Kind categorizes the error
type Kind string

const (
	KindSyntax          Kind = "syntax"
	KindUnknownType     Kind = "unknown_type"
	KindCircularDep     Kind = "circular_dependency"
	KindDuplicateDecl   Kind = "duplicate_declaration"
	KindInvalidBitField Kind = "invalid_bitfield"
	KindBufferTooSmall  Kind = "buffer_too_small"
	KindInvalidData     Kind = "invalid_data"
)

// Error is the structured error type used throughout the module
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Syntax creates a parse syntax error at a source position
func Syntax(unit string, line int, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindSyntax,
		Detail: fmt.Sprintf("%s:%d: %s", unit, line, detail),
	}
}

// UnknownType creates an unknown type reference error
func UnknownType(phase Phase, path []string, typeName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownType,
		Path:   path,
		Detail: fmt.Sprintf("unknown type %q", typeName),
	}
}

// CircularDependency creates a cycle error naming the participants
func CircularDependency(phase Phase, cycle []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCircularDep,
		Detail: "cycle: " + strings.Join(cycle, " -> "),
	}
}

// DuplicateDeclaration creates a duplicate struct name error
func DuplicateDeclaration(name, firstUnit, secondUnit string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindDuplicateDecl,
		Detail: fmt.Sprintf("struct %q declared in both %s and %s", name, firstUnit, secondUnit),
	}
}

// InvalidBitField creates a bit-field declaration error
func InvalidBitField(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidBitField,
		Path:   path,
		Detail: detail,
	}
}

// BufferTooSmall creates an unpack input size error
func BufferTooSmall(structName string, got, want int) *Error {
	return &Error{
		Phase:  PhaseUnpack,
		Kind:   KindBufferTooSmall,
		Detail: fmt.Sprintf("struct %s needs %d bytes, got %d", structName, want, got),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
