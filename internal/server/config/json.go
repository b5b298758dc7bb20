package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mkravets/tasklist/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, set fields are copied into the runtime Config.
// The token validity is accepted as an integer number of minutes, mirroring
// the flag layer.
type JsonConfig struct {
	EndpointAddr         string   `json:"endpoint_addr"`
	DatabaseDSN          string   `json:"database_dsn"`
	SecretKey            string   `json:"secret_key"`
	TokenValidityMinutes int      `json:"token_validity_minutes"`
	AllowedOrigins       []string `json:"allowed_origins"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flags, if any. Only fields present in the file override the
// current values. An unreadable or invalid file panics: a config file that
// was explicitly pointed at must be usable.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityMinutes != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityMinutes) * time.Minute
	}
	if len(c.AllowedOrigins) != 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
}
