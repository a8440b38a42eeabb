package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
casino-backend - user account and authentication service

Usage:
  casino [flags]

Flags:
  -config-path string   Path to the config yaml file (default "config.yaml")
  -help                 Show this help message

Configuration is read from the YAML file and may be overridden with
environment variables (SERVER_PORT, DATABASE_*, AUTH_JWT_SECRET,
AUTH_TOKEN_TTL, LOG_LEVEL).
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}
