// Package config loads runtime configuration for the greeter demo.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-n string       name for the demo user
//	-s int          counter start value
//	-status string  status label for the demo user ("active" or "inactive")
//	-debug          enable debug logging
//	-version        print build information and exit
//
// # JSON schema
//
// All fields are optional; a partial file only overrides what it names:
//
//	{
//	  "greet_name": "Ada",
//	  "status_label": "active",
//	  "counter_start": 1
//	}
//
// The defaults reproduce the demo's canonical output, so running with no
// flags and no file prints exactly the two stock lines.
package config
