package domain

import (
	"regexp"
	"strings"
)

// DirectiveScanLimit bounds how much of a file is inspected for the
// directive prologue.
const DirectiveScanLimit = 16 << 10

const useNodeLiteral = "use node"

const byteOrderMark = "\uFEFF"

// UseNodeDirectivePattern matches a single statement line holding the
// "use node" directive. Both quotes must be the same character.
var UseNodeDirectivePattern = regexp.MustCompile(`^\s*(?:"use node"|'use node');?\s*$`)

// HasExtendedRuntimeDirective reports whether source opts into the
// extended runtime: its first statement is the "use node" directive.
// A byte order mark, leading blank lines, a hashbang line and comments
// are skipped. A prologue repeating the directive on the next statement
// is rejected.
func HasExtendedRuntimeDirective(source string) bool {
	if len(source) > DirectiveScanLimit {
		source = source[:DirectiveScanLimit]
	}

	if !strings.Contains(source, useNodeLiteral) {
		return false
	}

	statements := prologueStatements(strings.TrimPrefix(source, byteOrderMark), 2)
	if len(statements) == 0 || !UseNodeDirectivePattern.MatchString(statements[0]) {
		return false
	}

	if len(statements) > 1 && UseNodeDirectivePattern.MatchString(statements[1]) {
		return false
	}

	return true
}

// prologueStatements returns up to limit leading non-comment lines.
func prologueStatements(source string, limit int) []string {
	var (
		statements []string
		inBlock    bool
	)

	for i, line := range strings.Split(source, "\n") {
		if i == 0 && strings.HasPrefix(line, "#!") {
			continue
		}

		rest := line

		for {
			trimmed := strings.TrimSpace(rest)

			if inBlock {
				end := strings.Index(trimmed, "*/")
				if end < 0 {
					rest = ""

					break
				}

				inBlock = false
				rest = trimmed[end+2:]

				continue
			}

			if strings.HasPrefix(trimmed, "/*") {
				inBlock = true
				rest = trimmed[2:]

				continue
			}

			if strings.HasPrefix(trimmed, "//") {
				rest = ""
			}

			break
		}

		if strings.TrimSpace(rest) == "" {
			continue
		}

		statements = append(statements, rest)
		if len(statements) == limit {
			break
		}
	}

	return statements
}
