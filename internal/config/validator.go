package config

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"

	oerrors "github.com/reactfaststart/cli/internal/errors"
)

//go:embed schema/config.schema.json
var schemaFS embed.FS

const schemaURL = "config.schema.json"

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Unwrap marks every collection as a validation failure.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		data, err := schemaFS.ReadFile("schema/config.schema.json")
		if err != nil {
			schemaErr = fmt.Errorf("reading embedded schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
			schemaErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// ValidateBytes validates YAML config content against the embedded schema
// and checks values the schema cannot express.
func ValidateBytes(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return ValidationErrors{{Field: "(document)", Message: "invalid YAML: " + err.Error()}}
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}
	// An empty file is a valid, empty config.
	if document == nil {
		return nil
	}

	if err := sch.Validate(document); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return flattenSchemaError(verr)
		}
		return err
	}

	return validateSemantics(document)
}

// ValidateFile validates a configuration file at the given path.
func ValidateFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return oerrors.WrapFS(err, "reading config file", path)
	}
	return ValidateBytes(content)
}

// flattenSchemaError collects the leaf causes of a schema failure.
func flattenSchemaError(verr *jsonschema.ValidationError) ValidationErrors {
	var errs ValidationErrors
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			field := strings.TrimPrefix(strings.ReplaceAll(e.InstanceLocation, "/", "."), ".")
			if field == "" {
				field = "(root)"
			}
			errs = append(errs, ValidationError{Field: field, Message: e.Message})
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(verr)

	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}

// validateSemantics checks values that need more than a schema.
func validateSemantics(document any) error {
	root, ok := document.(map[string]any)
	if !ok {
		return nil
	}
	preflight, ok := root["preflight"].(map[string]any)
	if !ok {
		return nil
	}
	node, ok := preflight["node"].(string)
	if !ok {
		return nil
	}
	if _, err := semver.NewConstraint(node); err != nil {
		return ValidationErrors{{
			Field:   "preflight.node",
			Message: fmt.Sprintf("invalid semver constraint %q: %v", node, err),
		}}
	}
	return nil
}
