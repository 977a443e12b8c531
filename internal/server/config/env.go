package config

import (
	"os"
	"time"
)

// parseEnv overlays configuration from environment variables. Unset or empty
// variables keep the current value. TOKEN_VALIDITY accepts time.ParseDuration
// syntax ("1h", "30m"); an unparsable value panics.
//
// Recognized variables: ADDR, DATABASE_DSN, JWT_SECRET, TOKEN_VALIDITY,
// S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT.
func parseEnv(config *Config) {
	config.Addr = env("ADDR", config.Addr)
	config.DatabaseDSN = env("DATABASE_DSN", config.DatabaseDSN)
	config.SecretKey = env("JWT_SECRET", config.SecretKey)

	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.TokenValidityDuration = d
	}

	config.S3RootUser = env("S3_ROOT_USER", config.S3RootUser)
	config.S3RootPassword = env("S3_ROOT_PASSWORD", config.S3RootPassword)
	config.S3Bucket = env("S3_BUCKET", config.S3Bucket)
	config.S3Region = env("S3_REGION", config.S3Region)
	config.S3BaseEndpoint = env("S3_BASE_ENDPOINT", config.S3BaseEndpoint)
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
