// Package utils holds small helpers shared by the CLI and server.
package utils

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON writes v to w as tab-indented JSON followed by a newline.
func WriteJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// WriteRawJSON re-indents an already encoded JSON document onto w.
func WriteRawJSON(w io.Writer, data []byte) error {
	return WriteJSON(w, json.RawMessage(data))
}
