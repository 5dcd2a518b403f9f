package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/escuelaing/webframework/pkg/config"
	"github.com/spf13/cobra"
)

func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestVersionFlag(t *testing.T) {
	output, err := executeCommand(newRootCmd(), "--version")
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if !strings.Contains(output, "webframework version 0.1.0") {
		t.Errorf("Expected version information, got: %s", output)
	}
}

func TestHelpFlag(t *testing.T) {
	output, err := executeCommand(newRootCmd(), "--help")
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	for _, content := range []string{"webframework", "--config", "--debug", "--version", "routes"} {
		if !strings.Contains(output, content) {
			t.Errorf("Help output missing: %s", content)
		}
	}
}

func TestRoutesCommand(t *testing.T) {
	output, err := executeCommand(newRootCmd(), "routes")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, path := range []string{"/hello", "/pi", "/time", "/greet", "/calc"} {
		if !strings.Contains(output, path) {
			t.Errorf("Routes output missing %s: %s", path, output)
		}
	}
	if !strings.Contains(output, "static root: /webroot") {
		t.Errorf("Expected static root in output, got: %s", output)
	}
}

func TestRoutesCommandWithConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	content := `
static:
  root: /public
`
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	output, err := executeCommand(newRootCmd(), "--config", configFile, "routes")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(output, "static root: /public") {
		t.Errorf("Expected configured static root, got: %s", output)
	}
}

func TestResourceFSFromDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "webroot"), 0755); err != nil {
		t.Fatalf("Failed to create webroot: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "webroot", "index.html"), []byte("disk"), 0644); err != nil {
		t.Fatalf("Failed to write index: %v", err)
	}

	cfg := config.Default()
	cfg.Static.Dir = dir
	fsys, err := resourceFS(cfg)
	if err != nil {
		t.Fatalf("resourceFS returned error: %v", err)
	}
	data, err := fs.ReadFile(fsys, "webroot/index.html")
	if err != nil || string(data) != "disk" {
		t.Errorf("Expected file from disk, got %q, %v", data, err)
	}
}

func TestEmbeddedResources(t *testing.T) {
	fsys, err := resourceFS(config.Default())
	if err != nil {
		t.Fatalf("resourceFS returned error: %v", err)
	}
	for _, name := range []string{"webroot/index.html", "webroot/app.js", "webroot/style.css"} {
		if _, err := fsys.Open(name); err != nil {
			t.Errorf("Expected embedded %s: %v", name, err)
		}
	}
}
