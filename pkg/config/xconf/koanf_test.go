package xconf

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string        `koanf:"name"`
	Limit   int           `koanf:"limit"`
	Timeout time.Duration `koanf:"timeout"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "app.yaml", "app:\n  name: demo\n  limit: 3\n  timeout: 500ms\n")
		cfg, err := New(path)
		require.NoError(t, err)
		assert.Equal(t, FormatYAML, cfg.Format())
		assert.Equal(t, path, cfg.Path())
		assert.True(t, cfg.Exists("app.name"))

		var s sample
		require.NoError(t, cfg.Unmarshal("app", &s))
		assert.Equal(t, sample{Name: "demo", Limit: 3, Timeout: 500 * time.Millisecond}, s)
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "app.json", `{"app":{"name":"demo","limit":2}}`)
		cfg, err := New(path)
		require.NoError(t, err)
		assert.Equal(t, FormatJSON, cfg.Format())
		assert.Equal(t, "demo", cfg.Client().String("app.name"))
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := New("")
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := New("config.toml")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, ErrLoadFailed)
	})

	t.Run("invalid content", func(t *testing.T) {
		path := writeFile(t, "bad.json", "{not json")
		_, err := New(path)
		assert.ErrorIs(t, err, ErrParseFailed)
	})
}

func TestNewFromBytes(t *testing.T) {
	cfg, err := NewFromBytes([]byte("name: demo\n"), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, cfg.Path())
	assert.Equal(t, "demo", cfg.Client().String("name"))

	_, err = NewFromBytes(nil, Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	empty, err := NewFromBytes(nil, FormatJSON)
	require.NoError(t, err)
	var s sample
	require.NoError(t, empty.Unmarshal("", &s))
	assert.Zero(t, s)

	assert.ErrorIs(t, cfg.Reload(), ErrReloadFromBytes)
}

func TestUnmarshal_Error(t *testing.T) {
	cfg, err := NewFromBytes([]byte("limit: many\n"), FormatYAML)
	require.NoError(t, err)
	var s sample
	assert.ErrorIs(t, cfg.Unmarshal("", &s), ErrUnmarshalFailed)
}

func TestOptions(t *testing.T) {
	cfg, err := NewFromBytes([]byte(`{"a":{"b":"c"}}`), FormatJSON, WithDelim("/"), WithTag("json"), nil)
	require.NoError(t, err)
	assert.Equal(t, "c", cfg.Client().String("a/b"))

	var out struct {
		B string `json:"b"`
	}
	require.NoError(t, cfg.Unmarshal("a", &out))
	assert.Equal(t, "c", out.B)

	o := applyOptions([]Option{WithDelim(""), WithTag("")})
	assert.Equal(t, ".", o.Delim)
	assert.Equal(t, "koanf", o.Tag)
}

func TestReload(t *testing.T) {
	path := writeFile(t, "app.yml", "limit: 1\n")
	cfg, err := New(path)
	require.NoError(t, err)
	old := cfg.Client()

	require.NoError(t, os.WriteFile(path, []byte("limit: 2\n"), 0o600))
	require.NoError(t, cfg.Reload())
	assert.Equal(t, 2, cfg.Client().Int("limit"))
	assert.Equal(t, 1, old.Int("limit"), "旧快照保持不变")

	require.NoError(t, os.WriteFile(path, []byte("limit: [\n"), 0o600))
	assert.ErrorIs(t, cfg.Reload(), ErrParseFailed)
	assert.Equal(t, 2, cfg.Client().Int("limit"), "失败时保留旧配置")

	require.NoError(t, os.Remove(path))
	assert.ErrorIs(t, cfg.Reload(), ErrLoadFailed)
}

func TestReload_Concurrent(t *testing.T) {
	path := writeFile(t, "app.yaml", "limit: 7\n")
	cfg, err := New(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, cfg.Reload())
			assert.Equal(t, 7, cfg.Client().Int("limit"))
		}()
	}
	wg.Wait()
}
