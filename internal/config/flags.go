package config

import (
	"flag"
	"os"

	"greeter-demo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-n string    name for the demo user (default from Config)
//	-s int       counter start value (default from Config)
//	-status string  status label for the demo user (default from Config)
//	-debug       enable debug logging
//	-version     print build information and exit
//
// os.Args is filtered through flagx.FilterArgs so the flag set here never
// sees flags owned by other components (such as -c/-config).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-n", "-s", "-status", "-debug", "-version"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.GreetName, "n", cfg.GreetName, "name for the demo user")
	fs.IntVar(&cfg.CounterStart, "s", cfg.CounterStart, "counter start value")
	fs.StringVar(&cfg.StatusLabel, "status", cfg.StatusLabel, "status label for the demo user")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	fs.BoolVar(&cfg.ShowVersion, "version", cfg.ShowVersion, "print build information and exit")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
