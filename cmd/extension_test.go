package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeExtension creates an executable shell script named inv-<name> in a
// folder added to PATH.
func writeExtension(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "inv-"+name), []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("Failed to write inv-%s: %v", name, err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestExtensionMechanism(t *testing.T) {
	path, out := setup(t, "")
	*verbose = true
	t.Cleanup(func() { *verbose = false })
	writeExtension(t, "hello", `
echo "INV_BACKUP_FILE=$INV_BACKUP_FILE"
echo "INV_BACKUP_FORMAT=$INV_BACKUP_FORMAT"
echo "INV_LOG_LEVEL=$INV_LOG_LEVEL"
echo "args=$*"
`)

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found || code != 0 {
		t.Fatalf("RunExtension() = %v, %d, want true, 0", found, code)
	}
	for _, want := range []string{
		EnvBackupFile + "=" + path,
		EnvBackupFormat + "=legacy",
		EnvLogLevel + "=debug",
		"args=a b",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, out)
		}
	}
}

func TestExtensionExitCode(t *testing.T) {
	setup(t, "")
	writeExtension(t, "fail", "exit 3\n")

	if found, code := RunExtension("fail", nil); !found || code != 3 {
		t.Errorf("RunExtension() = %v, %d, want true, 3", found, code)
	}
	if found, _ := RunExtension("does-not-exist", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}

func TestIsCommand(t *testing.T) {
	if !IsCommand("list") || IsCommand("hello") {
		t.Error("IsCommand() does not match Commands")
	}
}
