package domain

import (
	"regexp"
	"strings"
)

// namedImportPattern captures the brace list and the module specifier of
// `import { ... } from "..."` statements, including `import type { ... }`
// and `import Default, { ... }` forms.
var namedImportPattern = regexp.MustCompile(
	`(?m)(?:^|[^\w$.])import\s*(?:type\s+)?(?:[\w$]+\s*,\s*)?\{([^}]*)\}\s*from\s*(?:"([^"\n]*)"|'([^'\n]*)')`,
)

// ImportsNamedSymbolFrom reports whether source imports symbol, aliased or
// not, from exactly moduleSpecifier. It is a textual heuristic: false
// negatives are possible, false positives require a matching specifier.
// Imports written inside comments or template literals are not counted.
func ImportsNamedSymbolFrom(source, symbol, moduleSpecifier string) bool {
	if !strings.Contains(source, symbol) || !strings.Contains(source, moduleSpecifier) {
		return false
	}

	for _, match := range namedImportPattern.FindAllStringSubmatch(maskNonCode(source), -1) {
		specifier := match[2]
		if specifier == "" {
			specifier = match[3]
		}

		if specifier != moduleSpecifier {
			continue
		}

		for _, name := range importedNames(match[1]) {
			if name == symbol {
				return true
			}
		}
	}

	return false
}

// importedNames returns the original (pre-alias) names of an import list.
func importedNames(list string) []string {
	var names []string

	for _, item := range strings.Split(list, ",") {
		fields := strings.Fields(item)
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "type" && len(fields) > 1 && fields[1] != "as" {
			fields = fields[1:]
		}

		names = append(names, fields[0])
	}

	return names
}

// maskNonCode blanks out comments and template literal bodies, keeping
// newlines and ordinary string literals so offsets and line anchors hold.
func maskNonCode(source string) string {
	const (
		code = iota
		lineComment
		blockComment
		quoted
		template
	)

	var (
		out   strings.Builder
		state = code
		quote byte
	)

	out.Grow(len(source))

	for i := 0; i < len(source); i++ {
		c := source[i]

		switch state {
		case code:
			switch {
			case c == '/' && i+1 < len(source) && source[i+1] == '/':
				state = lineComment
				out.WriteByte(' ')
			case c == '/' && i+1 < len(source) && source[i+1] == '*':
				state = blockComment
				out.WriteString("  ")
				i++
			case c == '"' || c == '\'':
				state, quote = quoted, c
				out.WriteByte(c)
			case c == '`':
				state = template
				out.WriteByte(' ')
			default:
				out.WriteByte(c)
			}
		case lineComment:
			if c == '\n' {
				state = code
				out.WriteByte(c)
			} else {
				out.WriteByte(' ')
			}
		case blockComment:
			switch {
			case c == '*' && i+1 < len(source) && source[i+1] == '/':
				state = code
				out.WriteString("  ")
				i++
			case c == '\n':
				out.WriteByte(c)
			default:
				out.WriteByte(' ')
			}
		case quoted:
			out.WriteByte(c)

			switch {
			case c == '\\' && i+1 < len(source):
				i++
				out.WriteByte(source[i])
			case c == quote || c == '\n':
				state = code
			}
		case template:
			switch {
			case c == '\\' && i+1 < len(source):
				out.WriteString("  ")
				i++
			case c == '`':
				state = code
				out.WriteByte(' ')
			case c == '\n':
				out.WriteByte(c)
			default:
				out.WriteByte(' ')
			}
		}
	}

	return out.String()
}
