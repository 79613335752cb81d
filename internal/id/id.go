package id

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	docPrefix = "bilanco_"
	docSuffix = ".json"
)

// FormatDocName returns an archive file name like "bilanco_000042.json".
// Sequence numbers are zero-padded so lexical and numeric order agree.
func FormatDocName(seq int) string {
	return fmt.Sprintf("%s%06d%s", docPrefix, seq, docSuffix)
}

// ParseDocName parses an archive file name back into its sequence number.
func ParseDocName(name string) (int, error) {
	base, ok := strings.CutPrefix(name, docPrefix)
	if !ok {
		return 0, fmt.Errorf("invalid document name %q", name)
	}
	base, ok = strings.CutSuffix(base, docSuffix)
	if !ok {
		return 0, fmt.Errorf("invalid document name %q", name)
	}
	seq, err := strconv.Atoi(base)
	if err != nil || seq < 1 {
		return 0, fmt.Errorf("invalid sequence in document name %q", name)
	}
	return seq, nil
}

// IsDocName reports whether a file name looks like an archived document.
func IsDocName(name string) bool {
	_, err := ParseDocName(name)
	return err == nil
}
