package config

import (
	"encoding/json"
	"os"

	"greeter-demo/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero, so a partial file only overrides
// what it names.
type JsonConfig struct {
	GreetName    *string `json:"greet_name"`
	StatusLabel  *string `json:"status_label"`
	CounterStart *int    `json:"counter_start"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags; with neither flag given, nothing is loaded.
// Read or unmarshal errors panic, matching the loader's
// defaults -> JSON -> flags pipeline where a named-but-broken config file
// is a startup failure.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.GreetName != nil {
		cfg.GreetName = *jc.GreetName
	}
	if jc.StatusLabel != nil {
		cfg.StatusLabel = *jc.StatusLabel
	}
	if jc.CounterStart != nil {
		cfg.CounterStart = *jc.CounterStart
	}
}
