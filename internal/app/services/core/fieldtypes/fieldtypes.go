package fieldtypes

import (
	"avalia-service/internal/app/models"
	"avalia-service/internal/pkg/exceptions"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// FieldType is the closed set of field kinds the form engine understands.
// Adding a kind means extending every switch in this package; the compiler
// and the exhaustive tests keep the registry honest.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeSelect   FieldType = "select"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeDate     FieldType = "date"
)

const DateLayout = "2006-01-02"

func All() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeTextarea,
		FieldTypeNumber,
		FieldTypeSelect,
		FieldTypeRadio,
		FieldTypeCheckbox,
		FieldTypeDate,
	}
}

func Parse(raw string) (FieldType, bool) {
	fieldType := FieldType(strings.ToLower(strings.TrimSpace(raw)))
	switch fieldType {
	case FieldTypeText, FieldTypeTextarea, FieldTypeNumber, FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox, FieldTypeDate:
		return fieldType, true
	}
	return "", false
}

// IsChoice reports whether the kind carries an options list.
func (t FieldType) IsChoice() bool {
	return t == FieldTypeSelect || t == FieldTypeRadio || t == FieldTypeCheckbox
}

// Raw is one submitted answer before validation: a scalar string, or a list
// of selected options for checkbox fields.
type Raw struct {
	Scalar string
	List   []string
	IsList bool
}

func RawString(s string) Raw {
	return Raw{Scalar: s}
}

func RawList(items []string) Raw {
	return Raw{List: items, IsList: true}
}

// RawFromJSON converts a decoded JSON value (string or array of strings)
// into a Raw. The boolean is false for any other JSON shape.
func RawFromJSON(v interface{}) (Raw, bool) {
	switch typed := v.(type) {
	case string:
		return RawString(typed), true
	case []string:
		return RawList(typed), true
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			s, ok := item.(string)
			if !ok {
				return Raw{}, false
			}
			items = append(items, s)
		}
		return RawList(items), true
	}
	return Raw{}, false
}

// IsEmpty reports whether the answer carries no content; empty optional
// answers are skipped by the engine rather than stored.
func (r Raw) IsEmpty() bool {
	if r.IsList {
		return len(r.List) == 0
	}
	return strings.TrimSpace(r.Scalar) == ""
}

// Value is the typed form of a stored answer, a tagged union over FieldType.
// Exactly one of the payload fields is meaningful, selected by Type.
type Value struct {
	Type   FieldType `json:"type"`
	Text   string    `json:"text,omitempty"`
	Number float64   `json:"number,omitempty"`
	List   []string  `json:"list,omitempty"`
	Date   time.Time `json:"date,omitempty"`
}

// Display returns the presentation form of the value: string, float64,
// []string, or an ISO date string.
func (v Value) Display() interface{} {
	switch v.Type {
	case FieldTypeText, FieldTypeTextarea, FieldTypeSelect, FieldTypeRadio:
		return v.Text
	case FieldTypeNumber:
		return v.Number
	case FieldTypeCheckbox:
		return v.List
	case FieldTypeDate:
		return v.Date.Format(DateLayout)
	}
	return nil
}

// Default returns the empty value for the kind: empty string for scalars,
// empty list for checkbox.
func Default(fieldType FieldType) Value {
	if fieldType == FieldTypeCheckbox {
		return Value{Type: fieldType, List: []string{}}
	}
	return Value{Type: fieldType}
}

// Encode validates a submitted answer against the field's declared type and
// options and returns the canonical stored string. Pure; no I/O.
func Encode(field models.AssessmentField, raw Raw) (string, *exceptions.CustomError) {
	fieldType, ok := Parse(field.Type)
	if !ok {
		return "", exceptions.ErrFieldTypeUnknown(field.Type)
	}

	// An empty answer to a required field is a missing value for every
	// kind, not a per-kind mismatch.
	if field.Required && raw.IsEmpty() {
		return "", exceptions.ErrValueRequired(field.ID)
	}

	switch fieldType {
	case FieldTypeText, FieldTypeTextarea:
		if raw.IsList {
			return "", exceptions.ErrValueTypeMismatch(field.ID)
		}
		return raw.Scalar, nil

	case FieldTypeNumber:
		if raw.IsList {
			return "", exceptions.ErrValueTypeMismatch(field.ID)
		}
		number, err := strconv.ParseFloat(strings.TrimSpace(raw.Scalar), 64)
		if err != nil {
			return "", exceptions.ErrValueTypeMismatch(field.ID)
		}
		return strconv.FormatFloat(number, 'f', -1, 64), nil

	case FieldTypeSelect, FieldTypeRadio:
		if raw.IsList {
			return "", exceptions.ErrValueTypeMismatch(field.ID)
		}
		if !containsOption(field.Options, raw.Scalar) {
			return "", exceptions.ErrValueInvalidOption(field.ID)
		}
		return raw.Scalar, nil

	case FieldTypeCheckbox:
		if !raw.IsList {
			return "", exceptions.ErrValueTypeMismatch(field.ID)
		}
		seen := make(map[string]bool, len(raw.List))
		selected := make([]string, 0, len(raw.List))
		for _, item := range raw.List {
			if !containsOption(field.Options, item) {
				return "", exceptions.ErrValueInvalidOption(field.ID)
			}
			if seen[item] {
				continue
			}
			seen[item] = true
			selected = append(selected, item)
		}
		encoded, err := json.Marshal(selected)
		if err != nil {
			return "", exceptions.ErrCannotMarshalJSON(err)
		}
		return string(encoded), nil

	case FieldTypeDate:
		if raw.IsList {
			return "", exceptions.ErrValueTypeMismatch(field.ID)
		}
		parsed, err := time.Parse(DateLayout, strings.TrimSpace(raw.Scalar))
		if err != nil {
			return "", exceptions.ErrValueTypeMismatch(field.ID)
		}
		return parsed.Format(DateLayout), nil
	}

	return "", exceptions.ErrFieldTypeUnknown(field.Type)
}

// Decode maps a stored string back to its typed value, re-checked against the
// field's current type and options. A mismatch (for example options edited
// after submission) comes back as an error for the caller to surface as a
// per-entry warning.
func Decode(field models.AssessmentField, stored string) (Value, *exceptions.CustomError) {
	fieldType, ok := Parse(field.Type)
	if !ok {
		return Value{}, exceptions.ErrFieldTypeUnknown(field.Type)
	}

	switch fieldType {
	case FieldTypeText, FieldTypeTextarea:
		return Value{Type: fieldType, Text: stored}, nil

	case FieldTypeNumber:
		number, err := strconv.ParseFloat(stored, 64)
		if err != nil {
			return Value{}, exceptions.ErrValueTypeMismatch(field.ID)
		}
		return Value{Type: fieldType, Number: number}, nil

	case FieldTypeSelect, FieldTypeRadio:
		if !containsOption(field.Options, stored) {
			return Value{}, exceptions.ErrValueInvalidOption(field.ID)
		}
		return Value{Type: fieldType, Text: stored}, nil

	case FieldTypeCheckbox:
		var selected []string
		if err := json.Unmarshal([]byte(stored), &selected); err != nil {
			return Value{}, exceptions.ErrValueTypeMismatch(field.ID)
		}
		for _, item := range selected {
			if !containsOption(field.Options, item) {
				return Value{}, exceptions.ErrValueInvalidOption(field.ID)
			}
		}
		if selected == nil {
			selected = []string{}
		}
		return Value{Type: fieldType, List: selected}, nil

	case FieldTypeDate:
		parsed, err := time.Parse(DateLayout, stored)
		if err != nil {
			return Value{}, exceptions.ErrValueTypeMismatch(field.ID)
		}
		return Value{Type: fieldType, Date: parsed}, nil
	}

	return Value{}, exceptions.ErrFieldTypeUnknown(field.Type)
}

// ValidateOptions enforces the schema invariant: choice fields carry a
// non-empty, duplicate-free options list; other fields carry none.
func ValidateOptions(fieldType FieldType, options []string) *exceptions.CustomError {
	if fieldType.IsChoice() {
		if len(options) == 0 {
			return exceptions.ErrOptionsRequired()
		}
		seen := make(map[string]bool, len(options))
		for _, option := range options {
			if strings.TrimSpace(option) == "" || seen[option] {
				return exceptions.ErrOptionsRequired()
			}
			seen[option] = true
		}
		return nil
	}
	if len(options) > 0 {
		return exceptions.ErrOptionsNotAllowed()
	}
	return nil
}

func containsOption(options []string, candidate string) bool {
	for _, option := range options {
		if option == candidate {
			return true
		}
	}
	return false
}
