package confdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDir_EnvOverride(t *testing.T) {
	t.Setenv("LIBSPOOK_CONFIG_DIR", "/tmp/test-libspook")
	dir, err := Dir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/tmp/test-libspook" {
		t.Errorf("expected /tmp/test-libspook, got %s", dir)
	}
}

func TestDir_Default(t *testing.T) {
	t.Setenv("LIBSPOOK_CONFIG_DIR", "")
	dir, err := Dir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".libspook")
	if dir != expected {
		t.Errorf("expected %s, got %s", expected, dir)
	}
}

func TestSettingsPath(t *testing.T) {
	t.Setenv("LIBSPOOK_CONFIG_DIR", "/tmp/ls")
	p, err := SettingsPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != filepath.Join("/tmp/ls", "settings.yaml") {
		t.Errorf("expected /tmp/ls/settings.yaml, got %s", p)
	}
}

func TestFindIn_MissingDirectory(t *testing.T) {
	path, ok, err := FindIn(filepath.Join(t.TempDir(), "absent"), "app.exe")
	if err != nil {
		t.Fatalf("missing directory reported as error: %v", err)
	}
	if ok || path != "" {
		t.Errorf("FindIn = (%q, %t), want no file", path, ok)
	}
}

func TestFindIn_NoFiles(t *testing.T) {
	_, ok, err := FindIn(t.TempDir(), "app.exe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("found a config file in an empty directory")
	}
}

func TestFindIn_PrefersProcessFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.exe.conf"), "[app.exe]\n")
	writeFile(t, filepath.Join(dir, "libspook.conf"), "[general]\n")

	path, ok, err := FindIn(dir, "app.exe")
	if err != nil || !ok {
		t.Fatalf("FindIn = (%q, %t, %v)", path, ok, err)
	}
	if path != filepath.Join(dir, "app.exe.conf") {
		t.Errorf("path = %s, want app.exe.conf", path)
	}
}

func TestFindIn_FallsBackToSharedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "libspook.conf"), "[general]\n")

	path, ok, err := FindIn(dir, "other.exe")
	if err != nil || !ok {
		t.Fatalf("FindIn = (%q, %t, %v)", path, ok, err)
	}
	if path != filepath.Join(dir, "libspook.conf") {
		t.Errorf("path = %s, want libspook.conf", path)
	}
}

func TestFindIn_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "app.exe.conf"), 0755); err != nil {
		t.Fatal(err)
	}

	_, ok, err := FindIn(dir, "app.exe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("directory accepted as config file")
	}
}

func TestFindIn_DirectoryIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	writeFile(t, file, "")

	_, _, err := FindIn(file, "app.exe")
	var ae *AccessError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *AccessError, got %v", err)
	}
}

func TestFind_UsesEnvDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LIBSPOOK_CONFIG_DIR", dir)
	writeFile(t, filepath.Join(dir, "app.exe.conf"), "[app.exe]\n")

	path, ok, err := Find("app.exe")
	if err != nil || !ok {
		t.Fatalf("Find = (%q, %t, %v)", path, ok, err)
	}
}

func TestListConfigs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.exe.conf"), "")
	writeFile(t, filepath.Join(dir, "a.exe.conf"), "")
	writeFile(t, filepath.Join(dir, "settings.yaml"), "")

	files, err := ListConfigs(dir)
	if err != nil {
		t.Fatalf("ListConfigs error: %v", err)
	}
	want := []string{filepath.Join(dir, "a.exe.conf"), filepath.Join(dir, "b.exe.conf")}
	if len(files) != 2 || files[0] != want[0] || files[1] != want[1] {
		t.Errorf("ListConfigs = %v, want %v", files, want)
	}

	missing, err := ListConfigs(filepath.Join(dir, "absent"))
	if err != nil || len(missing) != 0 {
		t.Errorf("ListConfigs(absent) = (%v, %v), want empty", missing, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
