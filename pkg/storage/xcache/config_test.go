package xcache

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xcache/pkg/config/xconf"
)

const sampleYAML = `
cache:
  name: sessions
  limit: 2
  duplicate_add_throws: true
  throw_on_empty: true
  add_objects_as: clone
  lifetime:
    duration: 500ms
    frequency: 1h
`

func TestLoadConfig(t *testing.T) {
	conf, err := xconf.NewFromBytes([]byte(sampleYAML), xconf.FormatYAML)
	require.NoError(t, err)

	cfg, err := LoadConfig(conf, "cache")
	require.NoError(t, err)
	assert.Equal(t, Config{
		Name:               "sessions",
		Limit:              2,
		DuplicateAddThrows: true,
		ThrowOnEmpty:       true,
		AddObjectsAs:       Clone,
		Lifetime:           Lifetime{Duration: 500 * time.Millisecond, Frequency: time.Hour},
	}, cfg)
}

func TestLoadConfig_JSON(t *testing.T) {
	conf, err := xconf.NewFromBytes([]byte(`{"limit":3,"add_objects_as":"stringify"}`), xconf.FormatJSON)
	require.NoError(t, err)

	cfg, err := LoadConfig(conf, "")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Limit)
	assert.Equal(t, Stringify, cfg.AddObjectsAs)
	assert.Zero(t, cfg.Lifetime)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(nil, "cache")
	assert.ErrorIs(t, err, ErrNilConfig)

	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"negative limit", "limit: -1\n", ErrInvalidLimit},
		{"negative lifetime", "lifetime:\n  duration: -1s\n", ErrInvalidLifetime},
		{"unknown mode", "add_objects_as: deep\n", xconf.ErrUnmarshalFailed},
		{"bad duration", "lifetime:\n  duration: soon\n", xconf.ErrUnmarshalFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf, err := xconf.NewFromBytes([]byte(tt.yaml), xconf.FormatYAML)
			require.NoError(t, err)
			_, err = LoadConfig(conf, "")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()
	conf, err := xconf.NewFromBytes([]byte(sampleYAML), xconf.FormatYAML)
	require.NoError(t, err)
	cfg, err := LoadConfig(conf, "cache")
	require.NoError(t, err)

	clock := clockwork.NewFakeClock()
	c, err := NewFromConfig[string, *user](cfg, WithClock(clock))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, c.Close()) })

	u := &user{Name: "alice"}
	require.NoError(t, c.Add(ctx, "u", u))
	assert.ErrorIs(t, c.Add(ctx, "u", u), ErrDuplicateKey)

	got, _, err := c.Get(ctx, "u")
	require.NoError(t, err)
	assert.NotSame(t, u, got, "clone 模式")

	clock.Advance(600 * time.Millisecond)
	_, _, err = c.Get(ctx, "u")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NewFromConfig[string, int](Config{Limit: -5})
	assert.ErrorIs(t, err, ErrInvalidLimit)
}
