package pbx

import (
	"encoding/json"
	"fmt"
	"io"
)

// MarshalJSON implements json.Marshaler. The output is a one-way debug view
// of the document: the same value tree [Document.Encode] produces, rendered
// as JSON with comments dropped and map keys sorted. It is not meant to be
// decoded back into a Document.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Encode().Raw())
}

// MarshalIndentJSON returns the document's debug view as indented JSON.
func MarshalIndentJSON(d *Document) ([]byte, error) {
	return json.MarshalIndent(d.Encode().Raw(), "", "  ")
}

// WriteJSON writes the document's debug view as indented JSON to w.
func WriteJSON(d *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.Encode().Raw()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
