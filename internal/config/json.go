package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dznutri/dznutri/internal/flagx"
	"github.com/dznutri/dznutri/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can express the timeout either as a string like
// "15s" or as integer nanoseconds.
type jsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	DatabasePath       string         `json:"database_path"`
}

// parseJSON overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when absent, no JSON is loaded.
// Only fields present in the file override existing values.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
