package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.yaml", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.yaml"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
		{
			name:         "value that looks like a flag is not consumed",
			args:         []string{"-c", "-a", "x"},
			allowedFlags: []string{"-c", "-a"},
			want:         []string{"-c", "-a", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "a.yaml", ConfigFile([]string{"--http-addr", ":1", "-c", "a.yaml"}))
	assert.Equal(t, "b.json", ConfigFile([]string{"--config=b.json"}))
	assert.Equal(t, "", ConfigFile([]string{"--http-addr", ":1"}))
	assert.Equal(t, "", ConfigFile(nil))
}
