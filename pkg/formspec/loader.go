package formspec

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed forms/*
var embeddedForms embed.FS

// Set holds definitions keyed by form key.
type Set struct {
	forms map[string]Form
}

// Form returns the definition for key.
func (s *Set) Form(key string) (Form, bool) {
	if s == nil {
		return Form{}, false
	}
	form, ok := s.forms[strings.TrimSpace(key)]
	return form, ok
}

// Keys returns the sorted form keys.
func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.forms))
	for key := range s.forms {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Embedded returns the bundled contact and membership definitions.
func Embedded() *Set {
	sub, err := fs.Sub(embeddedForms, "forms")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	set, err := LoadFS(sub)
	if err != nil {
		panic(fmt.Sprintf("formspec: embedded forms are invalid: %v", err))
	}
	return set
}

// LoadFS parses every JSON/YAML file in fsys.
func LoadFS(fsys fs.FS) (*Set, error) {
	set := &Set{forms: make(map[string]Form)}
	if fsys == nil {
		return set, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isFormFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("formspec: read %s: %w", path, err)
		}
		form, err := Parse(data, path)
		if err != nil {
			return err
		}
		if _, exists := set.forms[form.Key]; exists {
			return fmt.Errorf("formspec: duplicate form %q (file %s)", form.Key, path)
		}
		set.forms[form.Key] = form
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Parse decodes a JSON or YAML definition and validates it.
func Parse(data []byte, source string) (Form, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Form{}, fmt.Errorf("formspec: file %s is empty", source)
	}

	var form Form
	if err := json.Unmarshal(data, &form); err != nil {
		form = Form{}
		if err := yaml.Unmarshal(data, &form); err != nil {
			return Form{}, fmt.Errorf("formspec: parse %s: invalid JSON or YAML", source)
		}
	}

	normalize(&form)
	if err := Validate(form); err != nil {
		return Form{}, fmt.Errorf("formspec: %s: %w", source, err)
	}
	return form, nil
}

// Validate checks a definition for structural mistakes.
func Validate(form Form) error {
	if form.Key == "" {
		return fmt.Errorf("form key is empty")
	}
	if len(form.Fields) == 0 {
		return fmt.Errorf("form %q defines no fields", form.Key)
	}

	seen := make(map[string]struct{}, len(form.Fields))
	phones := 0
	for idx, field := range form.Fields {
		if field.Name == "" {
			return fmt.Errorf("form %q field %d has an empty name", form.Key, idx)
		}
		if _, dup := seen[field.Name]; dup {
			return fmt.Errorf("form %q defines duplicate field %q", form.Key, field.Name)
		}
		seen[field.Name] = struct{}{}

		if !field.Kind.valid() {
			return fmt.Errorf("form %q field %q has unknown kind %q", form.Key, field.Name, field.Kind)
		}
		if field.Kind == KindChoice && len(field.Choices) == 0 {
			return fmt.Errorf("form %q choice field %q has no choices", form.Key, field.Name)
		}
		if field.Kind == KindPhone {
			phones++
		}
		if field.MinLength < 0 {
			return fmt.Errorf("form %q field %q has negative minLength", form.Key, field.Name)
		}
	}
	if phones > 1 {
		return fmt.Errorf("form %q defines %d phone fields, at most one is supported", form.Key, phones)
	}
	if form.ReplyTo != "" {
		if _, ok := seen[form.ReplyTo]; !ok {
			return fmt.Errorf("form %q replyTo references unknown field %q", form.Key, form.ReplyTo)
		}
	}
	return nil
}

func normalize(form *Form) {
	form.Key = strings.TrimSpace(form.Key)
	form.ReplyTo = strings.TrimSpace(form.ReplyTo)
	for i := range form.Fields {
		field := &form.Fields[i]
		field.Name = strings.TrimSpace(field.Name)
		field.Kind = Kind(strings.ToLower(strings.TrimSpace(string(field.Kind))))
		if field.Kind == "" {
			field.Kind = KindText
		}
		for j := range field.Choices {
			field.Choices[j].Value = strings.TrimSpace(field.Choices[j].Value)
		}
	}
}

func isFormFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
