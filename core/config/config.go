// File: config.go
// Title: Logging Configuration
// Description: Implements loading and applying the logging configuration
//              from TOML and YAML files with environment variable
//              overrides. The configuration decides the minimum priority,
//              the backend for the deployment mode, and the rate-limit
//              parameters handed to call sites.
// Author: Tessera Core Team
// Version: v0.1.0
// Created: 2026-08-30
// Modified: 2026-08-30
//
// Change History:
// - 2026-08-30 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tserror "github.com/tessera-storage/foundation/core/error"
	"github.com/tessera-storage/foundation/core/log"
	"github.com/tessera-storage/foundation/utils/stringx"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "TESSERA_LOG_"

// Backend names accepted in the configuration.
const (
	BackendStderr = "stderr"
	BackendSyslog = "syslog"
	BackendKmsg   = "kmsg"
)

// Duration wraps time.Duration so "5s" style values work in both TOML and
// YAML files.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for YAML decoding.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Config is the logging section of a Tessera deployment.
type Config struct {
	// Level names the minimum priority; unrecognized names mean INFO.
	Level string `toml:"level" yaml:"level"`

	// Backend selects the sink: stderr, syslog (service mode), or kmsg
	// (appliance mode).
	Backend string `toml:"backend" yaml:"backend"`

	// Tag is the syslog ident or kmsg record tag.
	Tag string `toml:"tag" yaml:"tag"`

	// Development disables pointer redaction in appliance mode.
	Development bool `toml:"development" yaml:"development"`

	// KmsgPath overrides the kernel log device, mainly for appliances
	// that relocate it.
	KmsgPath string `toml:"kmsg_path" yaml:"kmsg_path"`

	// RateInterval and RateBurst parameterize the limiters call sites
	// create in appliance mode.
	RateInterval Duration `toml:"rate_interval" yaml:"rate_interval"`
	RateBurst    int      `toml:"rate_burst" yaml:"rate_burst"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Level:        "info",
		Backend:      BackendStderr,
		Tag:          "tessera",
		RateInterval: Duration(log.DefaultRateInterval),
		RateBurst:    log.DefaultRateBurst,
	}
}

// Load reads the configuration file at path, decodes it by extension
// (.yaml/.yml as YAML, everything else as TOML), and applies environment
// overrides. Values absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	if stringx.IsBlank(path) {
		return nil, tserror.New("config file path cannot be empty").
			WithCode(tserror.BadConfiguration)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tserror.Wrap(err, "cannot read config file").
			WithCode(tserror.BadConfiguration)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, tserror.Wrap(err, "cannot parse config file").
			WithCode(tserror.BadConfiguration)
	}

	cfg.applyEnv()
	return cfg, nil
}

// FromEnv returns the default configuration with environment overrides
// applied, for deployments that run without a config file.
func FromEnv() *Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

// applyEnv overlays TESSERA_LOG_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPrefix + "LEVEL"); !stringx.IsBlank(v) {
		c.Level = v
	}
	if v := os.Getenv(EnvPrefix + "BACKEND"); !stringx.IsBlank(v) {
		c.Backend = v
	}
	if v := os.Getenv(EnvPrefix + "TAG"); !stringx.IsBlank(v) {
		c.Tag = v
	}
	if v := os.Getenv(EnvPrefix + "DEVELOPMENT"); !stringx.IsBlank(v) {
		c.Development = v == "1" || strings.EqualFold(v, "true")
	}
}

// Apply installs the configured backend and level on the logger. The
// caller opens the logger afterwards; Apply itself touches no channel.
// Pointer redaction is enabled for production appliance deployments.
func (c *Config) Apply(logger *log.Logger) error {
	backend, err := c.buildBackend()
	if err != nil {
		return err
	}

	logger.SetBackend(backend)
	logger.SetLevel(log.ParsePriority(c.Level))
	log.SetPointerRedaction(c.isApplianceMode() && !c.Development)
	return nil
}

// NewRateState creates limiter state with the configured parameters.
func (c *Config) NewRateState() *log.RateState {
	return log.NewRateState(time.Duration(c.RateInterval), c.RateBurst)
}

func (c *Config) isApplianceMode() bool {
	return strings.ToLower(strings.TrimSpace(c.Backend)) == BackendKmsg
}

func (c *Config) buildBackend() (log.Backend, error) {
	tag := stringx.DefaultIfBlank(c.Tag, "tessera")

	switch strings.ToLower(strings.TrimSpace(c.Backend)) {
	case BackendStderr, "":
		return log.NewWriterBackend(nil), nil
	case BackendSyslog:
		return log.NewSyslogBackend(tag), nil
	case BackendKmsg:
		b := log.NewKmsgBackend(tag)
		if !stringx.IsBlank(c.KmsgPath) {
			b.WithPath(c.KmsgPath)
		}
		return b, nil
	default:
		return nil, tserror.New("unknown logging backend " + c.Backend).
			WithCode(tserror.BadConfiguration)
	}
}
