// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ClinicKit

// Command keygen generates a fresh raw field-encryption key and prints it
// as 64 hexadecimal characters. The operator installs the value as
// CRYPTO_SECRET (or via -crypto-secret / the JSON config file) once during
// setup or rotation. It is never used in the request path.
package main

import (
	"fmt"

	"github.com/clinickit/phicrypt"
	"github.com/clinickit/phicrypt/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("keygen")

	key, err := phicrypt.GenerateRawKey()
	if err != nil {
		log.Fatal().Err(err).Msg("error generating encryption key")
	}

	fmt.Println(key)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
