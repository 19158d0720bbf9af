package perfband

import (
	"io/ioutil"
	"os"

	"github.com/codingconcepts/env"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output   string `json:"output" yaml:"output" env:"PERFBAND_OUTPUT"`
	TimeUnit string `json:"timeUnit" yaml:"timeUnit" env:"PERFBAND_TIME_UNIT"`
	Color    bool   `json:"color" yaml:"color" env:"PERFBAND_COLOR"`
	Stats    bool   `json:"stats" yaml:"stats" env:"PERFBAND_STATS"`
}

func LoadConfig(configFile string) (*Config, error) {
	data, err := ioutil.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", configFile)
	}

	if err := env.Set(&config); err != nil {
		return nil, err
	}

	return &config, err
}

// SessionOptions translates the config into the options NewSession accepts.
func (c *Config) SessionOptions() ([]SessionOption, error) {
	var opts []SessionOption

	switch c.Output {
	case "", "stdout":
	case "stderr":
		opts = append(opts, WithOutput(os.Stderr))
	default:
		return nil, errors.Errorf("unsupported output %q, expecting stdout or stderr", c.Output)
	}

	switch TimeUnit(c.TimeUnit) {
	case "", TimeUnitAuto:
	case TimeUnitMilliseconds, TimeUnitMicroseconds:
		opts = append(opts, WithTimeUnit(TimeUnit(c.TimeUnit)))
	default:
		return nil, errors.Errorf("unsupported time unit %q, expecting auto, ms or us", c.TimeUnit)
	}

	if c.Color {
		opts = append(opts, WithColor(true))
	}

	if c.Stats {
		opts = append(opts, WithStats(true))
	}

	return opts, nil
}
