package config

import (
	"github.com/aikumo/baremp3/internal/errors"
)

// Validate checks the loaded configuration for values the decoder
// cannot honor.
func (c *Config) Validate() error {
	switch c.Output.BitDepth {
	case 16, 24:
	default:
		return errors.Wrapf(errors.ErrInvalidBitDepth, "output.bit_depth %d", c.Output.BitDepth)
	}

	if c.Decode.Jobs < 1 {
		return errors.Wrapf(errors.ErrInvalidJobs, "decode.jobs %d", c.Decode.Jobs)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "log.format %q (valid: text, json)", c.Log.Format)
	}

	return nil
}
