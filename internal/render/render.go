// Package render formats a resolved property map for CLI output, either
// as plain "key=value" lines or as JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"editorconfig-core-go/internal/editorconfig"
)

// KeyValues renders props as one "key=value" line per key, in the
// insertion order Resolve produced them, matching the reference
// editorconfig command-line tool's output format.
func KeyValues(w io.Writer, props *editorconfig.Properties) error {
	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		if _, err := fmt.Fprintf(w, "%s=%s\n", key, value); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders props as a single JSON object. encoding/json sorts map
// keys alphabetically on encode, giving deterministic output regardless
// of resolve order.
func JSON(w io.Writer, props *editorconfig.Properties) error {
	keys := props.Keys()
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value, _ := props.Get(key)
		values[key] = value
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(values)
}
