// Package parser extracts struct declarations from a restricted C
// grammar.
//
// Recognized declaration shapes:
//
//	typedef struct { <member>* } Name;
//	struct Name { <member>* };
//
// where each member is
//
//	TypeName fieldName ([dim])* (: bitWidth)? ;
//
// TypeName is a primitive from the ctypes catalog (multi-word names
// like unsigned long long included), a previously or later declared
// struct name, or `struct Name`. Comments and preprocessor directives
// are stripped before tokenizing; quoted #include directives are
// honored by ExpandIncludes over an abstract Source so the parser
// itself performs no file I/O.
//
// Parsing produces unresolved declarations; cross-struct references
// are checked by the layout package.
package parser
