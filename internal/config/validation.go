package config

import (
	"time"

	"git.home.luguber.info/inful/seostudio/internal/foundation/errors"
)

// Validate checks values that defaults cannot repair.
func Validate(cfg *Config) error {
	d, err := time.ParseDuration(cfg.StageDelay)
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid stage_delay").
			WithContext("stage_delay", cfg.StageDelay).
			Build()
	}
	if d < 0 {
		return errors.ConfigError("stage_delay must not be negative").
			WithContext("stage_delay", cfg.StageDelay).
			Build()
	}
	if cfg.Preview.Port < 1 || cfg.Preview.Port > 65535 {
		return errors.ConfigError("preview.port must be between 1 and 65535").
			WithContext("port", cfg.Preview.Port).
			Build()
	}
	return nil
}
