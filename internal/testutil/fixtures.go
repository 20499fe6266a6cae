package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFiles creates files under root from a map of slash-separated
// relative paths to contents, creating parent directories as needed.
func WriteFiles(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

// ReactProject writes a small mixed project and returns its root.
func ReactProject(t testing.TB) string {
	t.Helper()
	root := t.TempDir()
	WriteFiles(t, root, map[string]string{
		"src/App.tsx":                  "import React from \"react\";\n\nexport const App = () => <main />;\n",
		"src/Button.tsx":               "export const Button = () => <button />;\n",
		"src/legacy/Card.jsx":          "const React = require(\"react\");\nexport const Card = () => <div />;\n",
		"src/util.ts":                  "export const add = (a: number, b: number) => a + b;\n",
		"src/index.js":                 "export * from \"./util\";\n",
		"README.md":                    "# demo\n",
		"node_modules/react/index.jsx": "export default {};\n",
		".storybook/Preview.tsx":       "export const Preview = () => null;\n",
	})
	return root
}
