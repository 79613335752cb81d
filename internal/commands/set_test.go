package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_UpdatesDraft(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runBilanco(t, "set", "stoklar", "1500,50", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Updated 1 item(s)")

	out, err = runBilanco(t, "show", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "1.500,50")
}

func TestSet_MultiplePairs(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runBilanco(t, "set", "stoklar", "100", "odenmisSermaye", "100", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Updated 2 item(s)")

	out, err = runBilanco(t, "check", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "(DENGELİ)")
}

func TestSet_TurkishNumberFormat(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runBilanco(t, "set", "stoklar", "12 500,75", "--dir", dir)
	require.NoError(t, err, out)

	out, err = runBilanco(t, "show", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "12.500,75")
}

func TestSet_BadValueDoesNotBlockBatch(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runBilanco(t, "set", "stoklar", "abc", "odenmisSermaye", "250", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "is not a number")
	assert.Contains(t, out, "Updated 1 item(s)", "the good pair is still applied")

	out, err = runBilanco(t, "show", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "250,00")
}

func TestSet_UnknownItem(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runBilanco(t, "set", "hayalet", "5", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, `unknown item "hayalet"`)
	assert.Contains(t, out, "Updated 0 item(s)")
}

func TestSet_GroupCodeRejected(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runBilanco(t, "set", "donenVarliklar", "5", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "is a group")
}

func TestSet_OddArguments(t *testing.T) {
	dir := initWorkspace(t)

	out, err := runBilanco(t, "set", "stoklar", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "expected <code> <value> pairs")
}
