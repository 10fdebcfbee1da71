package conf

// GeneralSection is the reserved section name for global settings.
const GeneralSection = "general"

// Recognized parameter names.
const (
	KeyDebug            = "debug"
	KeyLoad             = "load"
	KeyAllowInitFailure = "allow_init_failure"
)

// Config is the parsed form of one configuration file. It is built once by
// Parse and not modified afterwards.
type Config struct {
	Debug     bool           `json:"debug" yaml:"debug"`
	Processes []ProcessScope `json:"processes" yaml:"processes"`
}

// ProcessScope lists the libraries to load into processes whose executable
// base name equals ExeName. Matching is case-sensitive and includes the
// file extension.
type ProcessScope struct {
	ExeName   string        `json:"exe_name" yaml:"exe_name"`
	Libraries []LibrarySpec `json:"load_libraries" yaml:"load_libraries"`
}

// LibrarySpec is one load entry. Path is passed to the loader untouched.
type LibrarySpec struct {
	Path string `json:"path" yaml:"path"`
	// AllowInitFailure tolerates the library's own initialization routine
	// declining to load. Any other load failure is still fatal.
	AllowInitFailure bool `json:"allow_init_failure" yaml:"allow_init_failure"`
}

// Process returns the first scope whose ExeName equals exeName.
// Later scopes with the same name are never returned.
func (c *Config) Process(exeName string) (*ProcessScope, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.Processes {
		if c.Processes[i].ExeName == exeName {
			return &c.Processes[i], true
		}
	}
	return nil, false
}

// Duplicates returns the names of process scopes declared more than once,
// in the order their second declaration appears.
func (c *Config) Duplicates() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]int, len(c.Processes))
	var dups []string
	for _, p := range c.Processes {
		seen[p.ExeName]++
		if seen[p.ExeName] == 2 {
			dups = append(dups, p.ExeName)
		}
	}
	return dups
}
