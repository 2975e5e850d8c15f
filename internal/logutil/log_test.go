package logutil_test

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neox5/sqwave/internal/logutil"
)

func TestInitRejectsBadLevel(t *testing.T) {
	assert.Error(t, logutil.Init("noisy", "", false))
}

func TestInitFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sqwave.log")
	require.NoError(t, logutil.Init("info", path, false))
	defer func() {
		require.NoError(t, logutil.Init("info", "", false))
	}()

	log.Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
