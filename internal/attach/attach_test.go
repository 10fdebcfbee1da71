package attach

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stephen-fox/libspook/internal/conf"
	"github.com/stephen-fox/libspook/internal/confdir"
	"github.com/stephen-fox/libspook/internal/loader"
)

const initDeclined = 1114

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string) {
	r.messages = append(r.messages, message)
}

func (r *recordingNotifier) errors() []string {
	var out []string
	for _, m := range r.messages {
		if strings.HasPrefix(m, loader.ErrorPrefix) {
			out = append(out, m)
		}
	}
	return out
}

// newEnv writes content to <dir>/libspook.conf and returns an Env whose
// locator looks in dir.
func newEnv(t *testing.T, exe, content string) (Env, *loader.DryRun, *recordingNotifier) {
	t.Helper()
	dir := t.TempDir()
	if content != "" {
		if err := os.WriteFile(filepath.Join(dir, confdir.SharedFile()), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	l := &loader.DryRun{}
	n := &recordingNotifier{}
	return Env{
		Identity: func() (string, error) { return exe, nil },
		Locate: func(name string) (string, bool, error) {
			return confdir.FindIn(dir, name)
		},
		Loader:           l,
		Notifier:         n,
		InitDeclinedCode: initDeclined,
		CommandLine:      exe + " --flag",
	}, l, n
}

func TestRun_LoadsMatchingSection(t *testing.T) {
	env, l, n := newEnv(t, "app.exe", "[general]\ndebug = false\n[app.exe]\nload = hook.dll\n")

	if err := Run(env); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if want := []string{"hook.dll"}; !reflect.DeepEqual(l.Attempted(), want) {
		t.Errorf("attempted = %v, want %v", l.Attempted(), want)
	}
	if len(n.messages) != 0 {
		t.Errorf("unexpected notifications: %v", n.messages)
	}
}

func TestRun_OtherProcess(t *testing.T) {
	env, l, n := newEnv(t, "other.exe", "[general]\ndebug = false\n[app.exe]\nload = hook.dll\n")

	if err := Run(env); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(l.Attempted()) != 0 {
		t.Errorf("attempted = %v, want none", l.Attempted())
	}
	if len(n.messages) != 0 {
		t.Errorf("unexpected notifications: %v", n.messages)
	}
}

func TestRun_NoConfiguration(t *testing.T) {
	env, l, n := newEnv(t, "app.exe", "")

	if err := Run(env); err != nil {
		t.Fatalf("missing configuration reported as error: %v", err)
	}
	if len(l.Attempted()) != 0 || len(n.messages) != 0 {
		t.Errorf("attempted = %v, notifications = %v, want none", l.Attempted(), n.messages)
	}
}

func TestRun_IdentityFailure(t *testing.T) {
	env, l, n := newEnv(t, "app.exe", "[app.exe]\nload = hook.dll\n")
	env.Identity = func() (string, error) { return "", errors.New("no exe") }

	err := Run(env)
	var ae *confdir.AccessError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *confdir.AccessError, got %v", err)
	}
	if len(l.Attempted()) != 0 {
		t.Errorf("attempted = %v, want none", l.Attempted())
	}
	if want := []string{"🤕 failed to get config path - failed to identify current process: no exe"}; !reflect.DeepEqual(n.messages, want) {
		t.Errorf("notifications = %v, want %v", n.messages, want)
	}
}

func TestRun_LocatorFailure(t *testing.T) {
	env, _, n := newEnv(t, "app.exe", "")
	env.Locate = func(string) (string, bool, error) {
		return "", false, &confdir.AccessError{Op: "failed to get home directory", Err: errors.New("$HOME is not defined")}
	}

	err := Run(env)
	var ae *confdir.AccessError
	if !errors.As(err, &ae) {
		t.Fatalf("expected *confdir.AccessError, got %v", err)
	}
	if len(n.errors()) != 1 {
		t.Errorf("error notifications = %v, want one", n.errors())
	}
}

func TestRun_ParseFailureLoadsNothing(t *testing.T) {
	env, l, n := newEnv(t, "app.exe", "[app.exe]\nload = first.dll\nbogus = 1\n")

	err := Run(env)
	var pe *conf.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *conf.ParseError, got %v", err)
	}
	if len(l.Attempted()) != 0 {
		t.Errorf("attempted = %v, want none", l.Attempted())
	}
	want := `🤕 failed to parse config file - line 3: unknown parameter "bogus" in [app.exe] section`
	if len(n.messages) != 1 || n.messages[0] != want {
		t.Errorf("notifications = %v, want [%s]", n.messages, want)
	}
}

func TestRun_LoadFailureReportedOnce(t *testing.T) {
	env, l, n := newEnv(t, "app.exe", "[app.exe]\nload = A\nload = B\nallow_init_failure = true\nload = C\nload = D\n")
	l.Failures = map[string]uint32{"B": initDeclined, "C": 126}

	err := Run(env)
	var le *loader.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *loader.LoadError, got %v", err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(l.Attempted(), want) {
		t.Errorf("attempted = %v, want %v", l.Attempted(), want)
	}
	if len(n.errors()) != 1 || !strings.Contains(n.errors()[0], "failed to load DLL (C)") {
		t.Errorf("error notifications = %v", n.errors())
	}
}

func TestRun_DebugFromConfig(t *testing.T) {
	env, _, n := newEnv(t, "other.exe", "[general]\ndebug = true\n[app.exe]\nload = hook.dll\n")

	if err := Run(env); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(n.messages) != 2 {
		t.Fatalf("notifications = %v, want config and no-section debug messages", n.messages)
	}
	if !strings.HasPrefix(n.messages[0], "debug: config file '") || !strings.Contains(n.messages[0], `"app.exe": ["hook.dll"]`) {
		t.Errorf("messages[0] = %q", n.messages[0])
	}
	if n.messages[1] != "debug: no [other.exe] section in config file" {
		t.Errorf("messages[1] = %q", n.messages[1])
	}
}

func TestRun_EarlyDebug(t *testing.T) {
	env, _, n := newEnv(t, "app.exe", "")
	env.Debug = true

	if err := Run(env); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	want := []string{
		"debug: loaded into: 'app.exe --flag'",
		"debug: no config file or directory available",
	}
	if !reflect.DeepEqual(n.messages, want) {
		t.Errorf("notifications = %v, want %v", n.messages, want)
	}
}
