package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// FormValidator compiles entity form schemas and validates drafts.
type FormValidator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewFormValidator builds a validator backed by jsonschema v5.
func NewFormValidator() *FormValidator {
	return &FormValidator{compiled: make(map[string]*jsonschema.Schema)}
}

// Validate checks the draft against the named schema and returns field-keyed
// messages for every violation.
func (v *FormValidator) Validate(name string, schema map[string]any, draft map[string]any) (FieldErrors, error) {
	if len(schema) == 0 {
		return FieldErrors{}, nil
	}
	compiled, err := v.schemaFor(name, schema)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if draft == nil {
		payload = map[string]any{}
	} else {
		data, err := json.Marshal(draft)
		if err != nil {
			return nil, fmt.Errorf("console: marshal %s draft: %w", name, err)
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("console: normalize %s draft: %w", name, err)
		}
	}
	err = compiled.Validate(payload)
	if err == nil {
		return FieldErrors{}, nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, fmt.Errorf("console: validate %s draft: %w", name, err)
	}
	return fieldErrorsFrom(verr), nil
}

func (v *FormValidator) schemaFor(name string, schema map[string]any) (*jsonschema.Schema, error) {
	v.mu.RLock()
	compiled, ok := v.compiled[name]
	v.mu.RUnlock()
	if ok {
		return compiled, nil
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("console: marshal schema %s: %w", name, err)
	}
	compiler := jsonschema.NewCompiler()
	resource := name + ".json"
	if err := compiler.AddResource(resource, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("console: load schema %s: %w", name, err)
	}
	compiled, err = compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("console: compile schema %s: %w", name, err)
	}
	v.mu.Lock()
	v.compiled[name] = compiled
	v.mu.Unlock()
	return compiled, nil
}

var missingProps = regexp.MustCompile(`missing properties: (.+)`)

func fieldErrorsFrom(verr *jsonschema.ValidationError) FieldErrors {
	errs := FieldErrors{}
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			if field := strings.TrimPrefix(e.InstanceLocation, "/"); field != "" && !strings.Contains(field, "/") {
				errs[field] = e.Message
				return
			}
			if m := missingProps.FindStringSubmatch(e.Message); m != nil {
				for _, name := range strings.Split(m[1], ",") {
					errs[strings.Trim(strings.TrimSpace(name), "'")] = "this field is required"
				}
			}
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)
	return errs
}

// SubmitFunc persists a validated draft, returning the saved record's id.
type SubmitFunc func(ctx context.Context, draft map[string]any) error

// Form is the flat single-step draft used by the admin, customer, banner,
// service and subcategory screens. Each field setter replaces one key; Submit
// validates and only then reaches the network.
type Form struct {
	Name   string
	Schema map[string]any
	Draft  map[string]any
	Errors FieldErrors

	validator *FormValidator
	submit    SubmitFunc
	onSaved   func()
}

// NewForm starts an empty draft for the named entity schema.
func NewForm(name string, schema map[string]any, validator *FormValidator, submit SubmitFunc) *Form {
	if validator == nil {
		validator = NewFormValidator()
	}
	return &Form{
		Name:      name,
		Schema:    schema,
		Draft:     map[string]any{},
		Errors:    FieldErrors{},
		validator: validator,
		submit:    submit,
	}
}

// NewEditForm starts a draft prefilled with the selected entity's values.
func NewEditForm(name string, schema map[string]any, validator *FormValidator, current map[string]any, submit SubmitFunc) *Form {
	f := NewForm(name, schema, validator, submit)
	for k, v := range current {
		f.Draft[k] = v
	}
	return f
}

// SetField replaces one draft key, mirroring a controlled input.
func (f *Form) SetField(key string, value any) {
	f.Draft[key] = value
}

// OnSaved registers the list-refresh trigger fired after a successful submit.
func (f *Form) OnSaved(fn func()) { f.onSaved = fn }

// Submit validates the draft and, only if it passes, persists it. Validation
// failures populate Errors and never reach the network.
func (f *Form) Submit(ctx context.Context) error {
	errs, err := f.validator.Validate(f.Name, f.Schema, f.Draft)
	if err != nil {
		return err
	}
	f.Errors = errs
	if errs.Has() {
		return fmt.Errorf("console: %s form has %d invalid fields", f.Name, len(errs))
	}
	if f.submit == nil {
		return fmt.Errorf("console: %s form has no submit handler", f.Name)
	}
	if err := f.submit(ctx, f.Draft); err != nil {
		return err
	}
	if f.onSaved != nil {
		f.onSaved()
	}
	return nil
}

// Entity form schemas. Required-field presence mirrors what the backend
// rejects; everything richer stays server-side.
var (
	AdminFormSchema = map[string]any{
		"type":     "object",
		"required": []any{"name", "email"},
		"properties": map[string]any{
			"name":   map[string]any{"type": "string", "minLength": 1},
			"email":  map[string]any{"type": "string", "pattern": `^[^\s@]+@[^\s@]+\.[^\s@]+$`},
			"active": map[string]any{"type": "boolean"},
		},
	}

	CustomerFormSchema = map[string]any{
		"type":     "object",
		"required": []any{"name", "mobile"},
		"properties": map[string]any{
			"name":   map[string]any{"type": "string", "minLength": 1},
			"mobile": map[string]any{"type": "string", "pattern": `^[0-9]{10}$`},
			"email":  map[string]any{"type": "string"},
			"gender": map[string]any{"enum": []any{"male", "female", "other", ""}},
		},
	}

	BannerFormSchema = map[string]any{
		"type":     "object",
		"required": []any{"targetUrl"},
		"properties": map[string]any{
			"targetUrl": map[string]any{"type": "string", "minLength": 1},
			"active":    map[string]any{"type": "boolean"},
		},
	}

	ServiceFormSchema = map[string]any{
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name":         map[string]any{"type": "string", "minLength": 1},
			"description":  map[string]any{"type": "string"},
			"displayOrder": map[string]any{"type": "integer", "minimum": 0},
		},
	}

	SubcategoryFormSchema = map[string]any{
		"type":     "object",
		"required": []any{"name", "serviceId", "priceType"},
		"properties": map[string]any{
			"name":            map[string]any{"type": "string", "minLength": 1},
			"serviceId":       map[string]any{"type": "string", "minLength": 1},
			"basePrice":       map[string]any{"type": "number", "minimum": 0},
			"priceType":       map[string]any{"enum": []any{"fixed", "hourly", "per-area"}},
			"durationMinutes": map[string]any{"type": "integer", "minimum": 0},
			"images":          map[string]any{"type": "array", "maxItems": 5},
		},
	}
)
