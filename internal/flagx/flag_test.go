package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPick(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-c", "conf.json", "-a", "http://localhost"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=alt.json", "-a", "http://localhost"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "unknown flags and positionals dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-d"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "next flag is not a value",
			args:    []string{"-c", "-l", "debug"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "several allowed flags keep order",
			args:    []string{"-a", "http://h:1/api", "-c", "conf.json", "-l", "warn"},
			allowed: []string{"-a", "-l"},
			want:    []string{"-a", "http://h:1/api", "-l", "warn"},
		},
		{
			name:    "repeated flag preserved",
			args:    []string{"-d", "one.db", "-d", "two.db"},
			allowed: []string{"-d"},
			want:    []string{"-d", "one.db", "-d", "two.db"},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pick(tt.args, tt.allowed...))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/p/short.json", ConfigPath([]string{"-c", "/p/short.json"}))
	assert.Equal(t, "/p/long.json", ConfigPath([]string{"-config", "/p/long.json"}))
	assert.Equal(t, "/p/eq.json", ConfigPath([]string{"-a", "http://x", "-config=/p/eq.json"}))
	assert.Equal(t, "/p/2.json", ConfigPath([]string{"-c", "/p/1.json", "-config", "/p/2.json"}))
	assert.Empty(t, ConfigPath([]string{"-x", "1"}))
	assert.Empty(t, ConfigPath(nil))
}
