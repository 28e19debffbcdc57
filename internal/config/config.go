package config

// Config holds runtime settings for the greeter demo.
//
// Fields:
//   - GreetName: name used for the demo user and the greeting line.
//   - CounterStart: initial value of the demo counter.
//   - StatusLabel: status label for the demo user ("active" or "inactive").
//   - Debug: raise log verbosity to debug.
//   - ShowVersion: print build information and exit.
type Config struct {
	GreetName    string
	StatusLabel  string
	CounterStart int
	Debug        bool
	ShowVersion  bool
}

// LoadDefaults populates c with the stock demo values. A run with defaults
// prints the canonical two output lines.
func (c *Config) LoadDefaults() {
	c.GreetName = "Ada"
	c.StatusLabel = "active"
	c.CounterStart = 1
	c.Debug = false
	c.ShowVersion = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
