package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodeDocument writes the document as indented JSON. Amounts travel as
// quoted decimal strings, so no precision is lost to floating point.
func EncodeDocument(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}

// DecodeDocument reads a document from JSON.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return &doc, nil
}
