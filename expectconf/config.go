// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package expectconf selects the global expectation handler from a YAML
// file and the environment.
//
//	mode: log      # continue | log | panic
//	level: warn    # zap level name
//	stack: true    # attach stack traces to log entries
//
// EXPECT_MODE and EXPECT_LEVEL override the file.
package expectconf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/expect"
	"code.hybscloud.com/expect/expectzap"
)

// Mode names the global failure policy.
type Mode string

const (
	// ModeContinue ignores failures.
	ModeContinue Mode = "continue"
	// ModeLog logs failures and continues.
	ModeLog Mode = "log"
	// ModePanic logs failures and then panics.
	ModePanic Mode = "panic"
)

// ValidModes lists the accepted modes.
var ValidModes = []Mode{ModeContinue, ModeLog, ModePanic}

// Environment variables read by [Load] and [Parse].
const (
	EnvMode  = "EXPECT_MODE"
	EnvLevel = "EXPECT_LEVEL"
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("expectconf: invalid config")

// Config holds the global handler settings.
type Config struct {
	Mode  Mode   `yaml:"mode"`
	Level string `yaml:"level"`
	Stack bool   `yaml:"stack"`
}

// Default returns the configuration matching [expect.DefaultGlobalHandler]
// with error-level logging.
func Default() *Config {
	mode := ModeContinue
	if expect.Debug {
		mode = ModePanic
	}
	return &Config{Mode: mode, Level: "error"}
}

// Parse decodes YAML over the defaults and applies environment overrides.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// Load reads the YAML file at path. A missing file yields the defaults
// with environment overrides applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func (c *Config) applyEnvOverrides() {
	if mode := os.Getenv(EnvMode); mode != "" {
		c.Mode = Mode(strings.ToLower(strings.TrimSpace(mode)))
	}
	if level := os.Getenv(EnvLevel); level != "" {
		c.Level = strings.TrimSpace(level)
	}
}

// Validate checks the mode and the level.
func (c *Config) Validate() error {
	valid := false
	for _, m := range ValidModes {
		if c.Mode == m {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: mode %q (valid: %v)", ErrInvalidConfig, c.Mode, ValidModes)
	}
	if _, err := c.level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) level() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.ErrorLevel, nil
	}
	return zapcore.ParseLevel(c.Level)
}

// GlobalHandler builds the handler described by c. Log entries go to
// logger; a nil logger discards them.
func (c *Config) GlobalHandler(logger *zap.Logger) (expect.GlobalHandler, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	lvl, _ := c.level()
	switch c.Mode {
	case ModeLog:
		opts := []expectzap.Option{expectzap.WithLevel(lvl)}
		if c.Stack {
			opts = append(opts, expectzap.WithStack())
		}
		return expectzap.Log(logger, opts...), nil
	case ModePanic:
		return expect.Panic(expectzap.Also(logger, lvl)), nil
	default:
		return expect.Continue(), nil
	}
}

// Apply installs the handler described by c as the global handler of x.
func (c *Config) Apply(x *expect.Expect, logger *zap.Logger) error {
	h, err := c.GlobalHandler(logger)
	if err != nil {
		return err
	}
	x.SetOnGlobalFail(h)
	return nil
}
