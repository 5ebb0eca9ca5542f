package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "one", "two")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	if _, _, err := FindConfigFile(nested); err != nil {
		t.Fatalf("FindConfigFile: %v", err)
	}

	want := ProjectConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(want), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(want, []byte("version = \"1.0\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, found, err := FindConfigFile(nested)
	if err != nil {
		t.Fatalf("FindConfigFile: %v", err)
	}
	if !found || got != want {
		t.Errorf("FindConfigFile = %q, %v; want %q", got, found, want)
	}
}

func TestFindConfigFileIgnoresDirectory(t *testing.T) {
	root := t.TempDir()
	// a directory named like the config file is not a config
	if err := os.MkdirAll(filepath.Join(root, DirName, FileName), 0755); err != nil {
		t.Fatal(err)
	}
	got, found, err := FindConfigFile(root)
	if err != nil {
		t.Fatal(err)
	}
	if found && got == ProjectConfigPath(root) {
		t.Errorf("directory %s treated as config", got)
	}
}

func TestGlobalConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	if got := GlobalConfigPath(); got != filepath.Join("/home/tester", DirName, FileName) {
		t.Errorf("GlobalConfigPath = %q", got)
	}
}
