package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"full_name": {"type": "string"},
		"skills": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {"name": {"type": "string"}},
				"required": ["name"]
			}
		}
	},
	"required": ["full_name"]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateJSON_Valid(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{"full_name":"Jane Doe","skills":[{"name":"Go"}]}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingRequiredField(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{"skills":[]}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Errors, 1)
	assert.Contains(t, ve.Errors[0].Message, "full_name")
}

func TestValidateJSON_SchemaFileNotFound(t *testing.T) {
	jsonPath := writeTemp(t, "doc.json", `{}`)

	err := ValidateJSON(filepath.Join(t.TempDir(), "missing.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateJSON_DocumentFileNotFound(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)

	err := ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateJSON_MalformedSchema(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", `{"type": `)
	jsonPath := writeTemp(t, "doc.json", `{}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var sle *SchemaLoadError
	assert.True(t, errors.As(err, &sle))
}

func TestValidateJSONString_Valid(t *testing.T) {
	assert.NoError(t, ValidateJSONString(testSchema, `{"full_name":"Jane Doe"}`))
}

func TestValidateJSONString_NestedFieldError(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"full_name":"Jane","skills":[{"level":"Expert"}]}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "skills.0", ve.Errors[0].Field)
}

func TestValidationError_ErrorFormatting(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "full_name", Message: "is required"},
		{Field: "skills.0.name", Message: "is required"},
	}}

	msg := ve.Error()
	assert.Contains(t, msg, "1. full_name: is required")
	assert.Contains(t, msg, "2. skills.0.name: is required")
}

func TestResolveSchemaPath_FindsRepoSchema(t *testing.T) {
	path := ResolveSchemaPath(CVSchemaPath)
	require.NotEmpty(t, path, "CV schema should resolve from the package directory")
	assert.True(t, filepath.IsAbs(path))
}

func TestResolveSchemaPath_MissingReturnsEmpty(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/nope.schema.json"))
}

func TestValidateCVFile_ValidDocument(t *testing.T) {
	jsonPath := writeTemp(t, "cv.json", `{
		"profile": {"full_name": "Jane Doe", "email": "jane@example.com"},
		"cv_data": {"skills": [{"name": "Go", "category": "Languages", "level": "Expert"}]},
		"config": {"includePhoto": true},
		"template": "modern"
	}`)

	assert.NoError(t, ValidateCVFile(jsonPath))
}

func TestValidateCVFile_BadCustomizationRejected(t *testing.T) {
	jsonPath := writeTemp(t, "cv.json", `{
		"config": {"customization": {"fontSize": "enormous"}}
	}`)

	err := ValidateCVFile(jsonPath)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
}
