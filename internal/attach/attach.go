package attach

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/stephen-fox/libspook/internal/conf"
	"github.com/stephen-fox/libspook/internal/confdir"
	"github.com/stephen-fox/libspook/internal/loader"
)

// DebugPrefix starts every debug notification.
const DebugPrefix = "debug: "

// IdentityFunc returns the current process's executable base name.
type IdentityFunc func() (string, error)

// LocatorFunc returns the configuration file for an executable. ok is false
// when there is no configuration, which is not an error.
type LocatorFunc func(exeName string) (path string, ok bool, err error)

// Env holds the collaborators of one attach.
type Env struct {
	Identity         IdentityFunc
	Locate           LocatorFunc
	Loader           loader.Loader
	Notifier         loader.Notifier
	InitDeclinedCode uint32

	// Debug enables debug notifications before a configuration file has
	// been read. A file with debug = true enables them afterwards.
	Debug       bool
	CommandLine string
	Logger      *log.Logger

	// SettingsErr is a failure to read the tool settings. Run reports it
	// once, unless it is a *confdir.AccessError, which the config lookup
	// runs into and reports again.
	SettingsErr error
}

// Run performs one attach. Errors are returned after having been shown
// through env.Notifier; callers only need them for exit codes and tests.
func Run(env Env) error {
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	debugf := func(format string, args ...any) {
		if env.Debug {
			env.Notifier.Notify(DebugPrefix + fmt.Sprintf(format, args...))
		}
	}

	var accessErr *confdir.AccessError
	if env.SettingsErr != nil && !errors.As(env.SettingsErr, &accessErr) {
		logger.Error("failed to read settings", "err", env.SettingsErr)
		env.Notifier.Notify(fmt.Sprintf("%sfailed to read settings - %v", loader.ErrorPrefix, env.SettingsErr))
	}

	debugf("loaded into: '%s'", env.CommandLine)

	exeName, err := env.Identity()
	if err != nil {
		if !errors.As(err, &accessErr) {
			err = &confdir.AccessError{Op: "failed to identify current process", Err: err}
		}
		return fail(env, logger, "failed to get config path", err)
	}

	path, ok, err := env.Locate(exeName)
	if err != nil {
		return fail(env, logger, "failed to get config path", err)
	}
	if !ok {
		logger.Debug("no config file", "exe", exeName)
		debugf("no config file or directory available")
		return nil
	}

	cfg, err := conf.ParseFile(path)
	if err != nil {
		return fail(env, logger, "failed to parse config file", err)
	}

	env.Debug = env.Debug || cfg.Debug
	debugf("config file '%s': %s", path, cfg)

	o := &loader.Orchestrator{
		Loader:           env.Loader,
		Notifier:         env.Notifier,
		InitDeclinedCode: env.InitDeclinedCode,
		Logger:           logger,
	}
	report, err := o.Run(cfg, exeName)
	if err != nil {
		return err
	}
	if !report.Matched {
		debugf("no [%s] section in config file", exeName)
	}
	logger.Info("attach finished", "exe", exeName, "loaded", report.Count(loader.OutcomeLoaded),
		"tolerated", report.Count(loader.OutcomeTolerated))
	return nil
}

// fail reports err once and returns it wrapped with what.
func fail(env Env, logger *log.Logger, what string, err error) error {
	logger.Error(what, "err", err)
	env.Notifier.Notify(fmt.Sprintf("%s%s - %v", loader.ErrorPrefix, what, err))
	return fmt.Errorf("%s: %w", what, err)
}
