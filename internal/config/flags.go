package config

import "flag"

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-crypto-secret encryption secret (raw 64-hex key or passphrase)
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var cryptoSecret string
	var jsonConfigPath string

	flag.StringVar(&cryptoSecret, "crypto-secret", "", "Encryption secret (64-hex raw key or passphrase)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Crypto: Crypto{
			Secret: cryptoSecret,
		},
		JSONFilePath: jsonConfigPath,
	}
}
