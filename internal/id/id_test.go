package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDocName(t *testing.T) {
	tests := []struct {
		seq  int
		want string
	}{
		{1, "bilanco_000001.json"},
		{42, "bilanco_000042.json"},
		{123456, "bilanco_123456.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDocName(tt.seq))
	}
}

func TestParseDocName(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"bilanco_000001.json", 1},
		{"bilanco_000042.json", 42},
		{"bilanco_999999.json", 999999},
	}
	for _, tt := range tests {
		seq, err := ParseDocName(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, seq)
	}
}

func TestParseDocName_Errors(t *testing.T) {
	badInputs := []string{
		"",
		"draft.json",
		"bilanco_000001",
		"bilanco_abc.json",
		"bilanco_000000.json",
		"bilanco_-00001.json",
		"other_000001.json",
	}
	for _, input := range badInputs {
		_, err := ParseDocName(input)
		assert.Error(t, err, "expected error for input: %s", input)
	}
}

func TestIsDocName(t *testing.T) {
	assert.True(t, IsDocName("bilanco_000007.json"))
	assert.False(t, IsDocName("bilanco.yaml"))
	assert.False(t, IsDocName("schema.yaml"))
}
