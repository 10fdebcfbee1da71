package conf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ParseError reports the first problem found in a configuration file.
// Line is 1-based.
type ParseError struct {
	Line  int
	Cause string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Cause)
}

// scopeKind is the section the parser is currently filling.
type scopeKind int

const (
	noSection scopeKind = iota
	generalSection
	processSection
)

type parser struct {
	cfg  *Config
	kind scopeKind
	// index into cfg.Processes, valid when kind == processSection.
	index int
	line  int
}

// ParseFile opens and parses the configuration file at path.
func ParseFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file at '%s' - %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a configuration from r in a single forward pass. It stops at
// the first malformed line and returns a *ParseError carrying its number.
func Parse(r io.Reader) (*Config, error) {
	p := &parser{
		cfg:  &Config{Processes: []ProcessScope{}},
		kind: noSection,
	}

	br := bufio.NewReader(r)
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			p.line++
			return nil, p.errorf("failed to read from config - %v", readErr)
		}
		if raw == "" && readErr != nil {
			break
		}

		p.line++
		if p.line == 1 {
			raw = strings.TrimPrefix(raw, "\ufeff")
		}
		if !utf8.ValidString(raw) {
			return nil, p.errorf("failed to read from config - stream did not contain valid UTF-8")
		}

		if err := p.parseLine(raw); err != nil {
			return nil, err
		}

		if readErr != nil {
			break
		}
	}

	return p.cfg, nil
}

func (p *parser) parseLine(raw string) error {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	if strings.HasPrefix(line, "[") {
		return p.parseSection(line)
	}

	key, value, err := p.splitAssignment(line)
	if err != nil {
		return err
	}

	switch p.kind {
	case generalSection:
		return p.setGeneral(key, value)
	case processSection:
		return p.setProcess(key, value)
	default:
		return p.errorf("parameter %q must be declared inside a section", key)
	}
}

func (p *parser) parseSection(line string) error {
	if !strings.HasSuffix(line, "]") || len(line) < 2 {
		return p.errorf("missing closing bracket")
	}

	inner := line[1 : len(line)-1]
	if inner == "" {
		return p.errorf("missing section name")
	}

	name := strings.TrimSpace(inner)
	if name == "" {
		return p.errorf("empty section name")
	}

	if name == GeneralSection {
		p.kind = generalSection
		return nil
	}

	p.cfg.Processes = append(p.cfg.Processes, ProcessScope{
		ExeName:   name,
		Libraries: []LibrarySpec{},
	})
	p.kind = processSection
	p.index = len(p.cfg.Processes) - 1
	return nil
}

// splitAssignment splits "key = value" on the first '='. The value may
// itself contain '='.
func (p *parser) splitAssignment(line string) (string, string, error) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", p.errorf("missing '=' in parameter assignment")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", p.errorf("missing parameter name")
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", "", p.errorf("missing value for parameter %q", key)
	}

	return key, value, nil
}

func (p *parser) setGeneral(key, value string) error {
	switch key {
	case KeyDebug:
		b, err := p.parseBool(key, value)
		if err != nil {
			return err
		}
		p.cfg.Debug = b
		return nil
	default:
		return p.errorf("unknown parameter %q in [%s] section", key, GeneralSection)
	}
}

func (p *parser) setProcess(key, value string) error {
	scope := &p.cfg.Processes[p.index]

	switch key {
	case KeyLoad:
		scope.Libraries = append(scope.Libraries, LibrarySpec{Path: value})
		return nil
	case KeyAllowInitFailure:
		if len(scope.Libraries) == 0 {
			return p.errorf("%s must follow a %s parameter in [%s] section",
				KeyAllowInitFailure, KeyLoad, scope.ExeName)
		}
		b, err := p.parseBool(key, value)
		if err != nil {
			return err
		}
		scope.Libraries[len(scope.Libraries)-1].AllowInitFailure = b
		return nil
	default:
		return p.errorf("unknown parameter %q in [%s] section", key, scope.ExeName)
	}
}

// parseBool accepts the literals "true" and "false" exactly as written.
func (p *parser) parseBool(key, value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, p.errorf("invalid boolean value %q for parameter %q", value, key)
	}
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Line:  p.line,
		Cause: fmt.Sprintf(format, args...),
	}
}
