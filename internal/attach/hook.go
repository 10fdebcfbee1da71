package attach

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/stephen-fox/libspook/internal/branding"
	"github.com/stephen-fox/libspook/internal/confdir"
	"github.com/stephen-fox/libspook/internal/platform"
	"github.com/stephen-fox/libspook/internal/settings"
)

// Hook runs the attach routine with the native platform adapters and the
// user's settings. It is called from the hook library's init.
func Hook() {
	env, closeLog := PlatformEnv()
	defer closeLog()
	_ = Run(env)
}

// PlatformEnv builds an Env from the native adapters and the user's settings.
// The returned function closes the log file, if one was opened.
func PlatformEnv() (Env, func()) {
	settingsErr := settings.Load()

	notifier, err := platform.NewNotifier(settings.Notifier())
	if err != nil {
		notifier = platform.MessageBox{Title: branding.LibName()}
		settingsErr = err
	}

	logger, closeLog := newLogger()

	return Env{
		Identity:         platform.CurrentExeName,
		Locate:           confdir.Find,
		Loader:           platform.NewLoader(),
		Notifier:         notifier,
		InitDeclinedCode: platform.InitDeclinedCode,
		Debug:            settings.Debug(),
		CommandLine:      platform.CommandLine(),
		Logger:           logger,
		SettingsErr:      settingsErr,
	}, closeLog
}

// newLogger logs to the configured file, or nowhere. The host's stderr is
// not ours to write to.
func newLogger() (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeLog := func() {}

	if path := settings.LogFile(); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, confdir.FilePerm)
		if err == nil {
			w = f
			closeLog = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          branding.LibName(),
		Level:           settings.LogLevel(),
		ReportTimestamp: true,
	})
	return logger, closeLog
}
