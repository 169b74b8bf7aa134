// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config // import "robpike.io/cas/config"

import "github.com/sirupsen/logrus"

// A Config holds information about the configuration of the system. The
// zero value of a Config holds the default values for all settings.
type Config struct {
	prompt string
	debug  map[string]bool
	logger *logrus.Logger
}

func (c *Config) init() {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
		c.logger.SetLevel(logrus.InfoLevel)
	}
}

// Logger returns the logger diagnostics are written to, creating the
// default one on first use.
func (c *Config) Logger() *logrus.Logger {
	c.init()
	return c.logger
}

// SetLogger replaces the logger; a nil argument restores the default.
func (c *Config) SetLogger(l *logrus.Logger) {
	c.logger = l
}

// Debug reports whether the named debug switch is on. The switches are
// "tokens", "parse", "simplify", and "panic".
func (c *Config) Debug(s string) bool {
	if c == nil {
		return false
	}
	return c.debug[s]
}

// SetDebug sets the state of the named debug switch. Turning any switch
// on drops the logger to debug level.
func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
	if state {
		c.Logger().SetLevel(logrus.DebugLevel)
	}
}

func (c *Config) Prompt() string {
	if c == nil {
		return ""
	}
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}
