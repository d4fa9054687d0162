// Package config resolves tool settings from defaults and SEQUNIQ_*
// environment variables. Command-line flags are applied on top by the
// cli package.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "SEQUNIQ_"

type Log struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

type Config struct {
	Log Log `koanf:"log"`

	// MaxFingerprints > 0 bounds the record filter's memory.
	MaxFingerprints int `koanf:"max_fingerprints"`
	// MetricsFile, when set, receives Prometheus textfile metrics.
	MetricsFile string `koanf:"metrics_file"`
	Quiet       bool   `koanf:"quiet"`
}

func Default() Config {
	return Config{
		Log: Log{Level: "info"},
	}
}

// envKey maps SEQUNIQ_LOG_LEVEL to log.level and SEQUNIQ_MAX_FINGERPRINTS
// to max_fingerprints.
func envKey(name string) string {
	k := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	if rest, ok := strings.CutPrefix(k, "log_"); ok {
		return "log." + rest
	}
	return k
}

// Load reads defaults, then SEQUNIQ_* entries of environ (os.Environ()
// when nil).
func Load(environ []string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}
	if environ == nil {
		environ = os.Environ()
	}
	err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return envKey(key), value
		},
		EnvironFunc: func() []string { return environ },
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
		},
	}); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxFingerprints < 0 {
		return fmt.Errorf("max_fingerprints must be >= 0, got %d", c.MaxFingerprints)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}
