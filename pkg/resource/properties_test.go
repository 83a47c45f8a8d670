package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitFlattensNestedKeys(t *testing.T) {
	Init(writeProperties(t, `
app:
  api:
    base-url: http://localhost:8080
  watch:
    sync-interval: 30s
`))

	assert.Equal(t, "http://localhost:8080", GetString("app.api.base-url"))
	assert.Equal(t, 30*time.Second, GetDuration("app.watch.sync-interval"))
}

func TestEnvPlaceholderResolution(t *testing.T) {
	t.Setenv("TEST_RESOURCE_URL", "http://override:9090")

	Init(writeProperties(t, `
app:
  test:
    from-env: ${TEST_RESOURCE_URL:http://fallback}
    from-default: ${TEST_RESOURCE_UNSET:fallback-value}
`))

	assert.Equal(t, "http://override:9090", GetString("app.test.from-env"))
	assert.Equal(t, "fallback-value", GetString("app.test.from-default"))
}

func TestOrDefaultGetters(t *testing.T) {
	assert.Equal(t, "fallback", GetStringOrDefault("missing.string.key", "fallback"))
	assert.Equal(t, 42, GetIntOrDefault("missing.int.key", 42))
	assert.Equal(t, time.Minute, GetDurationOrDefault("missing.duration.key", time.Minute))
}

func TestMissingFileIsNotFatal(t *testing.T) {
	Init(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Equal(t, "still-works", GetStringOrDefault("some.key", "still-works"))
}
