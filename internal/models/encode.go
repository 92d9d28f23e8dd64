package models

import (
	"bytes"
	"encoding/json"
)

// EncodeJSON marshals v as compact JSON without HTML escaping, so prompts
// and upstream messages keep characters like <, > and & as typed.
func EncodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
