package importer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// NewReader wraps r with a decoder for the named encoding. Turkish
// spreadsheet tools still save CSV as Windows-1254.
func NewReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "windows-1254", "cp1254":
		return charmap.Windows1254.NewDecoder().Reader(r), nil
	}
	return nil, fmt.Errorf("unknown encoding %q", encoding)
}
