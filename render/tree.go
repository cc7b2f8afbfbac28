package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/structkit/cstruct/layout"
)

var (
	structStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	rangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Tree renders a struct layout as an indented hierarchy, one line per
// field:
//
//	name : type [start-end] N bytes
//
// Nested struct fields are followed by their own fields one level
// deeper, at absolute byte offsets. Array fields carry a [n] suffix on
// the type label; for arrays of structs the element layout is shown
// once, at the first element's offsets. When colored is true the
// output is styled with ANSI escapes.
func Tree(st *layout.Struct, colored bool) string {
	var b strings.Builder
	header := fmt.Sprintf("%s (%d bytes)", st.Name, st.Size)
	if colored {
		header = structStyle.Render(header)
	}
	b.WriteString(header)
	b.WriteByte('\n')
	writeFields(&b, st, 0, 1, colored)
	return b.String()
}

func writeFields(b *strings.Builder, st *layout.Struct, base, depth int, colored bool) {
	indent := strings.Repeat("  ", depth)

	for i := range st.Fields {
		f := &st.Fields[i]

		label := f.TypeName
		if f.IsBitField() {
			label += " : " + strconv.Itoa(f.BitWidth)
		}
		for _, d := range f.Dims {
			label += "[" + strconv.Itoa(d) + "]"
		}

		start := base + f.Offset
		end := base + f.End()

		name, typ, rng := f.Name, label, fmt.Sprintf("[%d-%d] %d bytes", start, end, f.Size())
		if colored {
			name = nameStyle.Render(name)
			typ = typeStyle.Render(typ)
			rng = rangeStyle.Render(rng)
		}
		fmt.Fprintf(b, "%s%s : %s %s\n", indent, name, typ, rng)

		if f.Sub != nil {
			writeFields(b, f.Sub, start, depth+1, colored)
		}
	}
}
