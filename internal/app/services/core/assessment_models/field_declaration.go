package assessmentModels

import (
	"avalia-service/internal/app/services/core/fieldtypes"
	"avalia-service/internal/pkg/exceptions"
	"strings"
)

// normalizeFieldDeclaration checks a field declaration against the type
// registry: the type must be known and options are carried by choice types
// only. Options are trimmed and deduplicated preserving first occurrence.
func normalizeFieldDeclaration(rawType string, rawOptions []string) (fieldtypes.FieldType, []string, *exceptions.CustomError) {
	fieldType, ok := fieldtypes.Parse(rawType)
	if !ok {
		return "", nil, exceptions.ErrFieldTypeUnknown(rawType)
	}

	var options []string
	seen := make(map[string]bool)
	for _, option := range rawOptions {
		option = strings.TrimSpace(option)
		if option == "" || seen[option] {
			continue
		}
		seen[option] = true
		options = append(options, option)
	}

	customErr := fieldtypes.ValidateOptions(fieldType, options)
	if customErr != nil {
		return "", nil, customErr
	}
	return fieldType, options, nil
}
