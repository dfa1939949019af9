package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON encodes r as indented JSON, the machine-readable counterpart of WriteTable.
func WriteJSON(r *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
