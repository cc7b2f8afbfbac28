package parser

import "github.com/structkit/cstruct/errors"

// Source supplies the text of included files. The core never touches
// the filesystem; callers provide an implementation (the CLI uses a
// directory-backed one).
type Source interface {
	// Resolve maps a quoted include path, relative to the unit that
	// contains the directive, to a canonical unit name and its text.
	// fromUnit is empty for the entry file.
	Resolve(fromUnit, include string) (unit string, text string, err error)
}

const (
	unitInProgress = 1
	unitDone       = 2
)

type expander struct {
	src   Source
	set   *Set
	state map[string]int
	stack []string
}

// ExpandIncludes parses the entry file and, recursively, every file it
// includes via quoted #include directives. Each unit is parsed exactly
// once; re-including a finished unit is a no-op, including a unit whose
// parse is still in progress is a circular dependency.
func ExpandIncludes(entry string, src Source) (*Set, error) {
	return ExpandAll([]string{entry}, src)
}

// ExpandAll is ExpandIncludes over several entry files sharing one
// namespace and one parsed-file memo, the shape a directory scan needs:
// a header already pulled in as an include is not parsed again when it
// comes up as an entry.
func ExpandAll(entries []string, src Source) (*Set, error) {
	e := &expander{
		src:   src,
		set:   NewSet(),
		state: make(map[string]int),
	}
	for _, entry := range entries {
		unit, text, err := src.Resolve("", entry)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidData, err, "resolve "+entry)
		}
		if e.state[unit] == unitDone {
			continue
		}
		if err := e.parseUnit(unit, text); err != nil {
			return nil, err
		}
	}
	return e.set, nil
}

func (e *expander) parseUnit(unit, text string) error {
	e.state[unit] = unitInProgress
	e.stack = append(e.stack, unit)
	defer func() {
		e.stack = e.stack[:len(e.stack)-1]
		e.state[unit] = unitDone
	}()

	clean, includes := stripDirectives(stripComments(text))

	// Includes first, matching C semantics: a header's dependencies
	// enter the namespace before its own declarations.
	for _, inc := range includes {
		incUnit, incText, err := e.src.Resolve(unit, inc.Path)
		if err != nil {
			return errors.Wrap(errors.PhaseParse, errors.KindInvalidData, err,
				unit+": resolve include "+inc.Path)
		}
		switch e.state[incUnit] {
		case unitDone:
			continue
		case unitInProgress:
			return errors.CircularDependency(errors.PhaseParse, append(e.cycleFrom(incUnit), incUnit))
		}
		if err := e.parseUnit(incUnit, incText); err != nil {
			return err
		}
	}

	decls, err := parseClean(unit, clean)
	if err != nil {
		return err
	}
	for _, d := range decls {
		if err := e.set.Add(d); err != nil {
			return err
		}
	}
	return nil
}

// cycleFrom returns the include stack starting at the first occurrence
// of unit, so the error names the actual cycle participants.
func (e *expander) cycleFrom(unit string) []string {
	for i, u := range e.stack {
		if u == unit {
			return append([]string(nil), e.stack[i:]...)
		}
	}
	return append([]string(nil), e.stack...)
}
