// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Lexer's operations.
	Config struct {
		Logger logrus.FieldLogger
		Debug  bool

		// ZeroWidthLimit caps the zero-length matches accepted at one cursor position.
		ZeroWidthLimit int
	}
)

const (
	// DefaultZeroWidthLimit is the default Config.ZeroWidthLimit.
	DefaultZeroWidthLimit = 16

	// RootState names the state every scan starts in.
	RootState = "root"

	// debugOption is the lexer option enabling the debug decorator.
	debugOption = "debug"
)

// DefaultConfig configures the Lexer's Config.
func DefaultConfig() *Config {
	return &Config{
		Logger:         logrus.New(),
		ZeroWidthLimit: DefaultZeroWidthLimit,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.ZeroWidthLimit < 1 {
		c.ZeroWidthLimit = DefaultZeroWidthLimit
	}
}
