package application

import (
	"fmt"
	"strings"

	"classiflyer/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages.
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"binderID":        "binder ID",
		"folderID":        "folder ID",
		"archiveFolderID": "archive folder ID",
		"name":            "name",
		"newName":         "new name",
		"sourcePath":      "source path",
	}
	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateKeyType checks if a key matches the expected entity kind.
func ValidateKeyType(fieldName, key string, expected domain.KeyType) error {
	if domain.ParseKeyType(key) != expected {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("expected %s key, got: %s", expected, key),
		}
	}
	return nil
}
