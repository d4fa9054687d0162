package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"sequniq/internal/config"
	"sequniq/internal/logger"
)

// Common holds flags shared by sequniq and sequniq-ids.
type Common struct {
	Inputs []string

	Paired bool

	Output      string // "-" = stdout
	MetricsFile string

	LogLevel string
	LogJSON  bool
	Quiet    bool
}

// Register wires shared flags onto fs. Defaults come from cfg, so an
// explicit flag overrides the environment.
func (c *Common) Register(fs *pflag.FlagSet, cfg config.Config) {
	fs.BoolVar(&c.Paired, "paired", false, "records are interleaved mate pairs")
	fs.StringVarP(&c.Output, "output", "o", "-", "output file ('-' = stdout)")
	fs.StringVar(&c.Output, "out", "-", "alias of --output")
	_ = fs.MarkHidden("out")
	fs.StringVar(&c.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus textfile metrics to this path")
	fs.StringVar(&c.LogLevel, "log-level", cfg.Log.Level, "log level: debug | info | warn | error | disabled")
	fs.BoolVar(&c.LogJSON, "log-json", cfg.Log.JSON, "log as JSON")
	fs.BoolVarP(&c.Quiet, "quiet", "q", cfg.Quiet, "suppress non-essential warnings")
}

// Validate applies shared invariants.
func (c *Common) Validate() error {
	if len(c.Inputs) == 0 {
		return errors.New("at least one input file (or '-') is required")
	}
	stdin := 0
	for _, in := range c.Inputs {
		if in == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("'-' (stdin) may be given only once")
	}
	if c.Output == "" {
		return errors.New("--output must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("invalid --log-level %q", c.LogLevel)
	}
	return nil
}

// LoggerConfig builds the logger settings; --quiet raises the level to error.
func (c *Common) LoggerConfig() *logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = logger.ParseLevel(c.LogLevel)
	if c.Quiet && lc.Level != logger.DisabledLevel {
		lc.Level = logger.ErrorLevel
	}
	lc.JSON = c.LogJSON
	return lc
}
