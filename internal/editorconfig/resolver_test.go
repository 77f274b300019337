package editorconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestResolveRootStopsUpwardWalk(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, ".editorconfig"), "[*.cs]\nindent_style = tab\n")
	proj := filepath.Join(tmp, "proj")
	writeFile(t, filepath.Join(proj, ".editorconfig"), "root = true\n\n[*.cs]\nindent_style = space\n")
	target := filepath.Join(proj, "src", "A.cs")
	writeFile(t, target, "")

	props, err := Resolve(target, Options{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	v, ok := props.Get("indent_style")
	if !ok || v != "space" {
		t.Fatalf("expected root file's indent_style=space to win and outer file to be ignored, got %q ok=%v", v, ok)
	}
}

func TestResolveInnerOverridesOuter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".editorconfig"), "root = true\n\n[*.cs]\nindent_size = 2\n")
	writeFile(t, filepath.Join(root, "src", ".editorconfig"), "[*.cs]\nindent_size = 4\n")
	target := filepath.Join(root, "src", "A.cs")
	writeFile(t, target, "")

	props, err := Resolve(target, Options{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	v, _ := props.Get("indent_size")
	if v != "4" {
		t.Fatalf("expected inner indent_size=4, got %q", v)
	}
}

func TestResolveIndentStyleTabInfersIndentSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".editorconfig"), "root = true\n\n[*.cs]\nindent_style = tab\n")
	target := filepath.Join(root, "A.cs")
	writeFile(t, target, "")

	props, err := Resolve(target, Options{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	size, ok := props.IndentSize()
	if !ok || !size.UseTabWidth {
		t.Fatalf("expected indent_size to resolve to UseTabWidth, got %+v ok=%v", size, ok)
	}
}

func TestResolveDeepVsShallowSectionAnchoring(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".editorconfig"), "root = true\n\n[**/*.md]\nindent_style = space\n\n[docs/*.md]\ncharset = utf-8\n")
	deep := filepath.Join(root, "docs", "deep", "x.md")
	shallow := filepath.Join(root, "docs", "x.md")
	writeFile(t, deep, "")
	writeFile(t, shallow, "")

	deepProps, err := Resolve(deep, Options{})
	if err != nil {
		t.Fatalf("Resolve deep: %v", err)
	}
	if _, ok := deepProps.Get("indent_style"); !ok {
		t.Fatalf("expected **/*.md to match deep file")
	}
	if _, ok := deepProps.Get("charset"); ok {
		t.Fatalf("expected docs/*.md to not match deep file")
	}

	shallowProps, err := Resolve(shallow, Options{})
	if err != nil {
		t.Fatalf("Resolve shallow: %v", err)
	}
	if _, ok := shallowProps.Get("charset"); !ok {
		t.Fatalf("expected docs/*.md to match shallow file")
	}
}

func TestResolveBogusValueReportedAndOmittedFromProjection(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".editorconfig"), "root = true\n\n[*.cs]\nindent_size = banana\n")
	target := filepath.Join(root, "A.cs")
	writeFile(t, target, "")

	props, err := Resolve(target, Options{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	raw, ok := props.Get("indent_size")
	if !ok || raw != "banana" {
		t.Fatalf("expected raw indent_size=banana to survive, got %q ok=%v", raw, ok)
	}
	if _, ok := props.IndentSize(); ok {
		t.Fatalf("expected IndentSize projection to be omitted")
	}
	if props.Bogus["indent_size"] != "banana" {
		t.Fatalf("expected indent_size flagged bogus, got %q", props.Bogus["indent_size"])
	}
}

func TestResolveNoMatchingSectionsYieldsEmptyProperties(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".editorconfig"), "[*.js]\nindent_style = space\n")
	target := filepath.Join(root, "A.cs")
	writeFile(t, target, "")

	props, err := Resolve(target, Options{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(props.Keys()) != 0 {
		t.Fatalf("expected no properties, got %v", props.Keys())
	}
}

func TestResolveOverrideConfigFilename(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "custom.ini"), "root = true\n\n[*.cs]\nindent_style = space\n")
	target := filepath.Join(root, "A.cs")
	writeFile(t, target, "")

	props, err := Resolve(target, Options{ConfigFilename: "custom.ini"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if v, _ := props.Get("indent_style"); v != "space" {
		t.Fatalf("expected indent_style=space via custom filename, got %q", v)
	}
}
