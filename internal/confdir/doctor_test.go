package confdir

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stephen-fox/libspook/internal/platform"
)

func TestCheck_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")
	t.Setenv("LIBSPOOK_CONFIG_DIR", dir)

	var buf bytes.Buffer
	res, err := Check(&buf, false)
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if res.Files != 0 {
		t.Errorf("Files = %d, want 0", res.Files)
	}
	if !strings.Contains(buf.String(), "[MISS]") {
		t.Errorf("expected [MISS] in output:\n%s", buf.String())
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Check without fix created the directory")
	}
}

func TestCheck_FixCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "absent")
	t.Setenv("LIBSPOOK_CONFIG_DIR", dir)

	var buf bytes.Buffer
	if _, err := Check(&buf, true); err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "libspook.conf")); err != nil {
		t.Errorf("fix did not create libspook.conf: %v", err)
	}
}

func TestCheck_ReportsInvalidAndLint(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LIBSPOOK_CONFIG_DIR", dir)
	writeFile(t, filepath.Join(dir, "good.exe.conf"), "[good.exe]\nload = a.dll\n")
	writeFile(t, filepath.Join(dir, "bad.exe.conf"), "load = a.dll\n")
	writeFile(t, filepath.Join(dir, "dup.exe.conf"), "[dup.exe]\nload = a.dll\n[dup.exe]\nload = b.dll\n")

	var buf bytes.Buffer
	res, err := Check(&buf, false)
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if res.Files != 3 {
		t.Errorf("Files = %d, want 3", res.Files)
	}
	if res.Invalid != 1 {
		t.Errorf("Invalid = %d, want 1", res.Invalid)
	}
	out := buf.String()
	if !strings.Contains(out, "line 1: parameter \"load\" must be declared inside a section") {
		t.Errorf("missing parse error in output:\n%s", out)
	}
	if !strings.Contains(out, "declared more than once") {
		t.Errorf("missing duplicate warning in output:\n%s", out)
	}
}

func TestCheck_WorldWritableFile(t *testing.T) {
	if !platform.PermissionsEnforced() {
		t.Skip("permission bits are not enforced on this platform")
	}

	dir := t.TempDir()
	t.Setenv("LIBSPOOK_CONFIG_DIR", dir)
	path := filepath.Join(dir, "app.exe.conf")
	writeFile(t, path, "[app.exe]\nload = a.dll\n")
	if err := os.Chmod(path, 0666); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	res, err := Check(&buf, true)
	if err != nil {
		t.Fatalf("Check error: %v", err)
	}
	if res.Warnings == 0 {
		t.Errorf("expected a permission warning:\n%s", buf.String())
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0644 {
		t.Errorf("permissions after fix = %o, want 644", perm)
	}
}
