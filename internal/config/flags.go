package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a portal base URL (e.g. https://portal.example.com)
//	-t/-token bearer token for portal requests
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval background profile refresh interval (e.g., "5m")
func ParseFlags() *StructuredConfig {
	var portalAddress string
	var token string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var refreshInterval time.Duration

	flag.StringVar(&portalAddress, "a", "", "Portal base URL")
	flag.StringVar(&token, "t", "", "Bearer token")
	flag.StringVar(&token, "token", "", "Bearer token (alias)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Profile refresh interval (e.g., 5m)")

	flag.Parse()

	return &StructuredConfig{
		Portal: Portal{
			Address:        portalAddress,
			Token:          token,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
