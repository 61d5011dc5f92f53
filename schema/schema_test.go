package schema

import (
	"encoding/json"
	"io/fs"
	"strings"
	"testing"
)

// TestEmbeddedSchemasAreValidJSON verifies that all embedded schema files are valid JSON objects.
func TestEmbeddedSchemasAreValidJSON(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(FS, ".")
	if err != nil {
		t.Fatalf("failed to read embedded FS: %v", err)
	}

	schemaCount := 0
	for _, entry := range entries {
		entry := entry
		if !strings.HasSuffix(entry.Name(), ".schema.json") {
			continue
		}
		schemaCount++

		t.Run(entry.Name(), func(t *testing.T) {
			t.Parallel()

			data, err := FS.ReadFile(entry.Name())
			if err != nil {
				t.Fatalf("failed to read %s: %v", entry.Name(), err)
			}

			var v map[string]interface{}
			if err := json.Unmarshal(data, &v); err != nil {
				t.Errorf("%s is not a valid JSON object: %v", entry.Name(), err)
			}
			if _, ok := v["$schema"]; !ok {
				t.Errorf("%s has no $schema keyword", entry.Name())
			}
		})
	}

	if schemaCount == 0 {
		t.Error("no schema files embedded")
	}
}
