package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonConfig_Unmarshal(t *testing.T) {
	raw := `{
		"addr": ":8088",
		"database_dsn": "postgres://u:p@h:5432/db",
		"secret_key": "json-secret",
		"token_validity_duration": "2h",
		"s3_bucket": "logos"
	}`

	var c JsonConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	assert.Equal(t, c.Addr, ":8088")
	assert.Equal(t, c.DatabaseDSN, "postgres://u:p@h:5432/db")
	assert.Equal(t, c.SecretKey, "json-secret")
	assert.Equal(t, c.TokenValidityDuration.Duration, 2*time.Hour)
	assert.Equal(t, c.S3Bucket, "logos")
}

func TestJsonConfig_DurationAsNanoseconds(t *testing.T) {
	raw := `{"token_validity_duration": 3600000000000}`

	var c JsonConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	assert.Equal(t, c.TokenValidityDuration.Duration, time.Hour)
}
