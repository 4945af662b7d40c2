package external

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicproject/backend/internal/pkg/apperrors"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marks.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNormalizeReturnsCommandOutput(t *testing.T) {
	path := writeCSV(t, "STU001,SUB101,75\n")
	n := NewCommandNormalizerWith("cat", nil, 5*time.Second)

	out, err := n.Normalize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "STU001,SUB101,75\n", out)
}

func TestNormalizeTimeoutKeepsPartialOutput(t *testing.T) {
	path := writeCSV(t, "STU001,SUB101,75\n")
	n := NewCommandNormalizerWith("sh", []string{"-c", "cat \"$0\"; sleep 2"}, 300*time.Millisecond)

	out, err := n.Normalize(context.Background(), path)
	require.ErrorIs(t, err, apperrors.ErrExternalCallTimeout)
	assert.Equal(t, "STU001,SUB101,75\n", out)
}

func TestNormalizeReportsCommandFailure(t *testing.T) {
	n := NewCommandNormalizerWith("sh", []string{"-c", "echo broken >&2; exit 3"}, 5*time.Second)

	out, err := n.Normalize(context.Background(), "ignored")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrExternalCallTimeout)
	assert.Contains(t, out, "broken")
}

func TestNormalizePathIsArgumentNotShellText(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "marker")
	hostile := filepath.Join(dir, "a;touch "+marker)
	require.NoError(t, os.WriteFile(hostile, []byte("row\n"), 0o644))

	n := NewCommandNormalizerWith("cat", nil, 5*time.Second)
	out, err := n.Normalize(context.Background(), hostile)
	require.NoError(t, err)
	assert.Equal(t, "row\n", out)

	_, err = os.Stat(marker)
	assert.True(t, os.IsNotExist(err))
}
