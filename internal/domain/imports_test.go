package domain

import (
	"testing"
)

func TestImportsNamedSymbolFrom(t *testing.T) {
	const (
		symbol = "httpRouter"
		module = "convex/server"
	)

	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{
			name:   "single line",
			source: `import { httpRouter } from "convex/server";`,
			want:   true,
		},
		{
			name:   "single quotes no semicolon",
			source: `import {httpRouter} from 'convex/server'`,
			want:   true,
		},
		{
			name: "multi line",
			source: "import {\n" +
				"  httpRouter,\n" +
				"} from \"convex/server\";\n",
			want: true,
		},
		{
			name:   "aliased",
			source: `import { httpRouter as router } from "convex/server";`,
			want:   true,
		},
		{
			name: "multi symbol",
			source: "import { httpAction,\n" +
				"  httpRouter as makeRouter,\n" +
				"  query } from \"convex/server\";\n",
			want: true,
		},
		{
			name:   "with default import",
			source: `import server, { httpRouter } from "convex/server";`,
			want:   true,
		},
		{
			name:   "comments in list",
			source: "import {\n  // routing\n  httpRouter, /* actions */ httpAction\n} from \"convex/server\";",
			want:   true,
		},
		{
			name:   "after other statements",
			source: "import { v } from \"convex/values\";\nimport { httpRouter } from \"convex/server\";\n",
			want:   true,
		},
		{
			name:   "commented out",
			source: "// import { httpRouter } from \"convex/server\";\nexport default {};\n",
			want:   false,
		},
		{
			name:   "inside block comment",
			source: "/*\nimport { httpRouter } from \"convex/server\";\n*/\n",
			want:   false,
		},
		{
			name:   "inside template literal",
			source: "const example = `\nimport { httpRouter } from \"convex/server\";\n`;\n",
			want:   false,
		},
		{
			name:   "after string holding slashes",
			source: "const docs = \"https://docs.example.com\";\nimport { httpRouter } from \"convex/server\";\n",
			want:   true,
		},
		{
			name:   "after template literal",
			source: "const banner = `/* ${name} */`;\nimport { httpRouter } from 'convex/server';\n",
			want:   true,
		},
		{
			name:   "absent",
			source: `import { httpAction, query } from "convex/server";`,
			want:   false,
		},
		{
			name:   "only the alias matches",
			source: `import { router as httpRouter } from "convex/server";`,
			want:   false,
		},
		{
			name:   "prefix of another name",
			source: `import { httpRouterFactory } from "convex/server";`,
			want:   false,
		},
		{
			name:   "different module",
			source: `import { httpRouter } from "convex/server/extra";`,
			want:   false,
		},
		{
			name:   "right name in another statement",
			source: "import { httpRouter } from \"hono\";\nimport { query } from \"convex/server\";\n",
			want:   false,
		},
		{
			name:   "empty",
			source: ``,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImportsNamedSymbolFrom(tt.source, symbol, module); got != tt.want {
				t.Fatalf("ImportsNamedSymbolFrom(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}

func TestImportedNames(t *testing.T) {
	got := importedNames(" a, b as c,\n type d, type as e, ")
	want := []string{"a", "b", "d", "type"}

	if len(got) != len(want) {
		t.Fatalf("importedNames() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("importedNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMaskNonCode(t *testing.T) {
	source := "a // b\n/* c\n */ \"// d\" `e\nf` g"
	want := "a     \n    \n    \"// d\"   \n   g"

	if got := maskNonCode(source); got != want {
		t.Fatalf("maskNonCode(%q) = %q, want %q", source, got, want)
	}
}
