package model

import (
	"fmt"
	"strings"
)

// Severity ranks analysis findings.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Finding is one advisory result from analyzing a balance sheet. Findings
// describe the state of the data; they are reported, never returned as errors.
type Finding struct {
	Severity Severity
	Code     string // stable identifier, e.g. "imbalance", "negative-equity"
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", strings.ToUpper(string(f.Severity)), f.Message)
}

// HasCritical reports whether any finding is critical.
func HasCritical(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
