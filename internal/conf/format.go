package conf

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders the configuration on a single line for diagnostics, e.g.
// Config{debug: true, processes: ["app.exe": ["a.dll", "b.dll" (allow_init_failure)]]}.
func (c *Config) String() string {
	if c == nil {
		return "Config{}"
	}

	var b strings.Builder
	b.WriteString("Config{debug: ")
	b.WriteString(strconv.FormatBool(c.Debug))
	b.WriteString(", processes: [")
	for i, p := range c.Processes {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString("]}")
	return b.String()
}

// String renders the scope as "exe": ["lib", ...].
func (p ProcessScope) String() string {
	var b strings.Builder
	b.WriteString(strconv.Quote(p.ExeName))
	b.WriteString(": [")
	for i, lib := range p.Libraries {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(lib.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (l LibrarySpec) String() string {
	s := strconv.Quote(l.Path)
	if l.AllowInitFailure {
		s += " (" + KeyAllowInitFailure + ")"
	}
	return s
}

// Render writes cfg in the configuration file format. Parsing the output
// yields a Config equal to cfg.
func Render(w io.Writer, cfg *Config) error {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s]\n", GeneralSection)
	fmt.Fprintf(&b, "%s = %t\n", KeyDebug, cfg.Debug)

	for _, p := range cfg.Processes {
		fmt.Fprintf(&b, "\n[%s]\n", p.ExeName)
		for _, lib := range p.Libraries {
			fmt.Fprintf(&b, "%s = %s\n", KeyLoad, lib.Path)
			if lib.AllowInitFailure {
				fmt.Fprintf(&b, "%s = true\n", KeyAllowInitFailure)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
