package loader

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/stephen-fox/libspook/internal/conf"
)

// ErrorPrefix starts every error notification.
const ErrorPrefix = "🤕 "

// Outcome classifies a single load attempt.
type Outcome int

const (
	// OutcomeLoaded means the library loaded and initialized.
	OutcomeLoaded Outcome = iota
	// OutcomeTolerated means the library declined to initialize and its
	// entry allows that.
	OutcomeTolerated
	// OutcomeFailed means the load failed and the sequence stopped.
	OutcomeFailed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeLoaded:
		return "loaded"
	case OutcomeTolerated:
		return "tolerated"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Attempt records what happened to one library entry.
type Attempt struct {
	Library conf.LibrarySpec
	Outcome Outcome
	Module  Module
	Code    uint32
	Err     error
}

// Report describes one Run. Entries after a failed attempt are absent
// because they were never tried.
type Report struct {
	ExeName  string
	Matched  bool
	Attempts []Attempt
}

// Count returns the number of attempts with the given outcome.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, a := range r.Attempts {
		if a.Outcome == o {
			n++
		}
	}
	return n
}

// Orchestrator loads the libraries configured for a process.
type Orchestrator struct {
	Loader   Loader
	Notifier Notifier
	// InitDeclinedCode is the platform error code meaning the library's own
	// initialization routine returned failure.
	InitDeclinedCode uint32
	// Logger receives per-attempt diagnostics. Nil discards them.
	Logger *log.Logger
}

// Run loads the libraries of the first section in cfg named exeName, in
// declared order. A failed load is skipped only when its entry allows init
// failure and the error code is InitDeclinedCode; any other failure is
// reported through the Notifier, returned as a *LoadError, and ends the
// sequence. Libraries loaded before a failure stay loaded.
//
// A configuration without a matching section is not an error.
func (o *Orchestrator) Run(cfg *conf.Config, exeName string) (*Report, error) {
	logger := o.logger()
	report := &Report{ExeName: exeName}

	scope, ok := cfg.Process(exeName)
	if !ok {
		logger.Debug("no section for process", "exe", exeName)
		return report, nil
	}
	report.Matched = true

	for _, lib := range scope.Libraries {
		logger.Debug("loading library", "exe", exeName, "path", lib.Path)

		mod, err := o.Loader.Load(lib.Path)
		if err == nil {
			logger.Debug("library loaded", "path", lib.Path)
			report.Attempts = append(report.Attempts, Attempt{
				Library: lib,
				Outcome: OutcomeLoaded,
				Module:  mod,
			})
			continue
		}

		code, hasCode := ErrorCode(err)
		if lib.AllowInitFailure && hasCode && code == o.InitDeclinedCode {
			logger.Debug("library declined to initialize", "path", lib.Path, "code", code)
			report.Attempts = append(report.Attempts, Attempt{
				Library: lib,
				Outcome: OutcomeTolerated,
				Code:    code,
				Err:     err,
			})
			continue
		}

		loadErr := &LoadError{Path: lib.Path, Code: code, Err: err}
		logger.Error("library failed to load", "path", lib.Path, "code", code, "err", err)
		report.Attempts = append(report.Attempts, Attempt{
			Library: lib,
			Outcome: OutcomeFailed,
			Code:    code,
			Err:     err,
		})
		if o.Notifier != nil {
			o.Notifier.Notify(ErrorPrefix + loadErr.Error())
		}
		return report, loadErr
	}

	return report, nil
}

func (o *Orchestrator) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}
