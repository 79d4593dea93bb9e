package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsStr(t *testing.T) {
	args := []string{"simulate", "--report-base", "--file", "a.yaml"}

	assert.True(t, ContainsStr(args, "--report-base"))
	assert.False(t, ContainsStr(args, "--json"))
	assert.Equal(t, 2, IndexOfStr(args, "--file"))
	assert.Equal(t, -1, IndexOfStr(nil, "--file"))
}

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "go.mod"))
	assert.NoError(t, err)
}
