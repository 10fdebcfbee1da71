package conf

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/config.schema.json
var schemaBytes []byte

// schemaURL identifies the embedded schema independently of the working
// directory.
const schemaURL = "urn:libspook:config.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Keyword used for issues that the schema cannot express.
const KeywordDuplicate = "duplicate"

// LintResult contains the outcome of linting a parsed configuration.
// Lint issues never prevent a configuration from being used; they point at
// entries that parse but are unlikely to do what the author meant.
type LintResult struct {
	Issues []LintIssue
}

// Clean reports whether no issues were found.
func (r *LintResult) Clean() bool {
	return len(r.Issues) == 0
}

// LintIssue is a single finding.
type LintIssue struct {
	Path    string // Instance location (e.g., "/processes/0/exe_name")
	Message string // Human-readable message
	Keyword string // Schema keyword that failed, or KeywordDuplicate
}

func (i LintIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Lint checks cfg against the embedded schema and reports duplicate process
// sections, whose entries are never used because the first match wins.
// The error return is for schema compilation or encoding failures.
func Lint(cfg *Config) (*LintResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	result := &LintResult{}

	if err := schema.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		result.Issues = append(result.Issues, extractIssues(ve)...)
	}

	for _, name := range cfg.Duplicates() {
		result.Issues = append(result.Issues, LintIssue{
			Message: printer.Sprintf("section [%s] is declared more than once; only the first one is used", name),
			Keyword: KeywordDuplicate,
		})
	}

	return result, nil
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []LintIssue {
	var issues []LintIssue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		return []LintIssue{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]LintIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword := ""
	msg := ""
	if ve.ErrorKind != nil {
		keyword = keywordOf(ve.ErrorKind)
		msg = ve.ErrorKind.LocalizedString(printer)
	}

	// Container keywords only repeat what their causes say.
	if keyword == "allOf" || keyword == "$ref" || keyword == "" {
		return
	}

	*issues = append(*issues, LintIssue{
		Path:    path,
		Message: describe(path, keyword, msg),
		Keyword: keyword,
	})
}

// keywordOf returns the schema keyword that produced k. Some kinds, such as
// "not", report an empty keyword path.
func keywordOf(k jsonschema.ErrorKind) string {
	switch k.(type) {
	case *kind.Not:
		return "not"
	}
	if kwPath := k.KeywordPath(); len(kwPath) > 0 {
		return kwPath[len(kwPath)-1]
	}
	return ""
}

// describe replaces raw schema messages with hints for the common cases.
func describe(path, keyword, msg string) string {
	switch {
	case keyword == "pattern" && strings.HasSuffix(path, "/exe_name"):
		return printer.Sprintf("section names are matched against executable base names and must not contain path separators or wildcards (%s)", msg)
	case keyword == "minItems" && strings.HasSuffix(path, "/load_libraries"):
		return printer.Sprintf("section has no %s parameters", KeyLoad)
	case keyword == "not" && strings.HasSuffix(path, "/path"):
		return printer.Sprintf("library path is wrapped in quotes, which are passed to the loader literally")
	default:
		return msg
	}
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []LintIssue) []LintIssue {
	seen := make(map[string]bool)
	var result []LintIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
