package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/resumatch/resumatch-cli/internal/flagx"
	"github.com/resumatch/resumatch-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be written either as a string like "10s"
// or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL   string         `json:"server_base_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	CredentialsPath string         `json:"credentials_path"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. Absent flag means no JSON source. Only fields
// actually present in the file override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CredentialsPath != "" {
		cfg.CredentialsPath = jc.CredentialsPath
	}
}
