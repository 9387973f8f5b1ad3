package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestCVSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "cv.schema.json"))
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestCVSchema_CompilesAsJSONSchema(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "cv.schema.json"))
	require.NoError(t, err)

	loader := gojsonschema.NewBytesLoader(data)
	_, err = gojsonschema.NewSchema(loader)
	assert.NoError(t, err, "schema should compile as a JSON Schema")
}

func TestCVSchema_AcceptsMinimalDocument(t *testing.T) {
	schemaData, err := os.ReadFile(filepath.Join(".", "cv.schema.json"))
	require.NoError(t, err)

	doc := `{"profile":{"full_name":"Jane Doe"},"cv_data":{},"template":"classic"}`
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewStringLoader(doc),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid(), "minimal document should pass: %v", result.Errors())
}

func TestCVSchema_RejectsBadColor(t *testing.T) {
	schemaData, err := os.ReadFile(filepath.Join(".", "cv.schema.json"))
	require.NoError(t, err)

	doc := `{"config":{"customization":{"colors":{"accent":"red"}}}}`
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewStringLoader(doc),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid(), "non-hex color should fail the pattern")
}
