package source

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSourceConfigGetters(t *testing.T) {
	cfg := &SourceConfig{
		Type: SourceTypeHTTP,
		Name: "primary",
		Options: map[string]interface{}{
			"listen_addr":  ":9090",
			"max_body_size": 2048,
			"read_timeout": "5s",
			"enabled_flag": true,
			"tags":         []string{"a", "b"},
		},
	}

	assert.Equal(t, ":9090", cfg.GetString("listen_addr", ":8080"))
	assert.Equal(t, "default", cfg.GetString("missing", "default"))

	assert.Equal(t, 2048, cfg.GetInt("max_body_size", 0))
	assert.Equal(t, 7, cfg.GetInt("missing", 7))

	assert.Equal(t, 5*time.Second, cfg.GetDuration("read_timeout", time.Second))
	assert.Equal(t, 30*time.Second, cfg.GetDuration("missing", 30*time.Second))

	assert.True(t, cfg.GetBool("enabled_flag", false))
	assert.False(t, cfg.GetBool("missing", false))

	assert.Equal(t, []string{"a", "b"}, cfg.GetStringSlice("tags", nil))
	assert.Equal(t, []string{"z"}, cfg.GetStringSlice("missing", []string{"z"}))
}

func TestRegisterAndCreateSource(t *testing.T) {
	assert.True(t, IsRegistered(SourceTypeHTTP))
	assert.True(t, IsRegistered(SourceTypeKafka))
	assert.Contains(t, RegisteredTypes(), SourceTypeHTTP)

	src, err := CreateSource(&SourceConfig{Type: SourceTypeHTTP, Name: "test", Options: map[string]interface{}{}})
	assert.NoError(t, err)
	assert.Equal(t, SourceTypeHTTP, src.Type())
	assert.Equal(t, "test", src.Name())
}

func TestCreateSourceUnknownType(t *testing.T) {
	_, err := CreateSource(&SourceConfig{Type: SourceType("nope"), Name: "x"})
	assert.Error(t, err)
}

func TestCreateSourcesSkipsDisabled(t *testing.T) {
	cfgs := []*SourceConfig{
		{Type: SourceTypeHTTP, Name: "a", Enabled: true, Options: map[string]interface{}{"listen_addr": ":18080"}},
		{Type: SourceTypeKafka, Name: "b", Enabled: false},
	}

	sources, err := CreateSources(cfgs)
	assert.NoError(t, err)
	assert.Len(t, sources, 1)
	assert.Equal(t, SourceTypeHTTP, sources[0].Type())
}
