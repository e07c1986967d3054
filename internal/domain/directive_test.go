package domain

import (
	"strings"
	"testing"
)

func TestHasExtendedRuntimeDirective(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"double quotes with semicolon", `"use node";`, true},
		{"single quotes with semicolon", `'use node';`, true},
		{"no semicolon", `"use node"`, true},
		{"surrounding whitespace", "  \t\"use node\";  ", true},
		{"single quotes and whitespace", "\n\n   'use node'   \n", true},
		{"followed by code", "\"use node\";\n\nexport const f = 1;\n", true},
		{"crlf line endings", "\"use node\";\r\nexport const f = 1;\r\n", true},
		{"after line comment", "// runs with node APIs\n\"use node\";\nimport fs from \"fs\";\n", true},
		{"after block comment", "/*\n * license\n */\n'use node';\n", true},
		{"after hashbang", "#!/usr/bin/env node\n\"use node\";\n", true},
		{"byte order mark", "\uFEFF\"use node\";\nexport const a = 1;\n", true},
		{"byte order mark then comment", "\uFEFF// node only\n'use node';\n", true},
		{"byte order mark then hashbang", "\uFEFF#!/usr/bin/env node\n\"use node\";\n", true},
		{"empty", ``, false},
		{"unquoted", `use node`, false},
		{"unquoted with semicolon", `use node;`, false},
		{"inside line comment", `// "use node";`, false},
		{"inside block comment", `/* "use node"; */`, false},
		{"typo", `"use nod";`, false},
		{"doubled quotes", `""use node"";`, false},
		{"mismatched quotes", `"use node';`, false},
		{"mismatched quotes reversed", `'use node"`, false},
		{"three semicolons", `"use node";;;`, false},
		{"two semicolons", `"use node";;`, false},
		{"duplicated on one line", `"use node";"use node";`, false},
		{"duplicated on consecutive lines", "\"use node\";\n\"use node\";\n", false},
		{"not first statement", "import fs from \"fs\";\n\"use node\";\n", false},
		{"inside string", `const s = "use node";`, false},
		{"different directive", `"use strict";`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasExtendedRuntimeDirective(tt.source); got != tt.want {
				t.Fatalf("HasExtendedRuntimeDirective(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestHasExtendedRuntimeDirective_ScanLimit(t *testing.T) {
	padding := "//" + strings.Repeat("x", DirectiveScanLimit) + "\n"

	if HasExtendedRuntimeDirective(padding + "\"use node\";\n") {
		t.Fatalf("expected directive beyond the scan limit to be ignored")
	}
}

func TestUseNodeDirectivePattern(t *testing.T) {
	for _, line := range []string{`"use node";`, `'use node'`, ` "use node" `} {
		if !UseNodeDirectivePattern.MatchString(line) {
			t.Errorf("expected pattern to match %q", line)
		}
	}

	for _, line := range []string{`"use node" x`, `"use node";;`, `use node`, `"use node'`} {
		if UseNodeDirectivePattern.MatchString(line) {
			t.Errorf("expected pattern not to match %q", line)
		}
	}
}
