package parser

import "strings"

// stripComments removes // and /* */ comments, replacing them with
// spaces so token line numbers stay aligned with the original text.
// Newlines inside block comments are preserved.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '/' && i+1 < len(runes) && runes[i+1] == '/' {
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			if i < len(runes) {
				b.WriteByte('\n')
			}
			continue
		}

		if r == '/' && i+1 < len(runes) && runes[i+1] == '*' {
			i += 2
			for i+1 < len(runes) && !(runes[i] == '*' && runes[i+1] == '/') {
				if runes[i] == '\n' {
					b.WriteByte('\n')
				}
				i++
			}
			i++ // skip closing '/'
			b.WriteByte(' ')
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// includeRef is one quoted #include directive found in a source unit.
type includeRef struct {
	Path string
	Line int
}

// stripDirectives removes preprocessor lines from comment-stripped
// source and collects quoted includes. Angle-bracket includes
// (<stdint.h> and friends) are dropped: system headers contribute
// nothing to the struct namespace, the type catalog already covers
// them.
func stripDirectives(src string) (string, []includeRef) {
	var b strings.Builder
	b.Grow(len(src))
	var includes []includeRef

	lines := strings.Split(src, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "#"))
			if strings.HasPrefix(rest, "include") {
				arg := strings.TrimSpace(strings.TrimPrefix(rest, "include"))
				if len(arg) >= 2 && arg[0] == '"' {
					if end := strings.IndexByte(arg[1:], '"'); end >= 0 {
						includes = append(includes, includeRef{Path: arg[1 : 1+end], Line: i + 1})
					}
				}
			}
			b.WriteByte('\n')
			continue
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}

	return b.String(), includes
}
