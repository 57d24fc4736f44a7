package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseFlags tests flag parsing against a fresh flag set per case.
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedSecret string
		expectedJSON   string
	}{
		{
			name:           "no flags",
			args:           []string{},
			expectedSecret: "",
			expectedJSON:   "",
		},
		{
			name:           "crypto secret",
			args:           []string{"-crypto-secret", "s3cr3t-passphrase"},
			expectedSecret: "s3cr3t-passphrase",
			expectedJSON:   "",
		},
		{
			name:           "short config flag",
			args:           []string{"-c", "/etc/phicrypt/config.json"},
			expectedSecret: "",
			expectedJSON:   "/etc/phicrypt/config.json",
		},
		{
			name:           "long config flag",
			args:           []string{"-config", "/etc/phicrypt/config.json"},
			expectedSecret: "",
			expectedJSON:   "/etc/phicrypt/config.json",
		},
		{
			name:           "all flags together",
			args:           []string{"-crypto-secret", "abc", "-c", "cfg.json"},
			expectedSecret: "abc",
			expectedJSON:   "cfg.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset the global flag set so each case parses cleanly
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			// Set os.Args to simulate command line arguments
			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()

			assert.Equal(t, tt.expectedSecret, cfg.Crypto.Secret)
			assert.Equal(t, tt.expectedJSON, cfg.JSONFilePath)
		})
	}
}
