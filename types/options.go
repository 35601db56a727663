// SPDX-License-Identifier: MIT
package types

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type (
	// Options holds lexer options, e.g. from "tag?debug=1&indent=2".
	Options map[string]string
)

const (
	ReadErrFmt = "failed to read (%s): %w"
)

// Options errors.
var (
	ErrInvalidType    = errors.New("invalid data type")
	ErrInvalidOptions = errors.New("invalid options")
)

// ParseOptions parses a URL-query style option string; a bare key reads as "true".
func ParseOptions(raw string) (opts Options, err error) {
	opts = make(Options)
	if raw == "" {
		return
	}

	values, err := url.ParseQuery(raw)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		return
	}

	for key, vals := range values {
		val := "true"
		if last := vals[len(vals)-1]; last != "" {
			val = last
		}
		opts[strings.ToLower(key)] = val
	}

	return
}

// Get value from `Options`.
func (o Options) Get(key string) (out string, ok bool) {
	out, ok = o[key]
	return
}

// GetBool reads a boolean option; a missing key reads as false.
func (o Options) GetBool(key string) (boolVal bool, err error) {
	val, ok := o[key]
	if !ok {
		return
	}

	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		boolVal = true
	case "0", "false", "no", "off":
	default:
		err = fmt.Errorf(ReadErrFmt, key, ErrInvalidType)
	}

	return
}

// Merge another `Options` into the current one; data takes precedence.
func (o Options) Merge(data Options) Options {
	merged := make(Options, len(o)+len(data))
	for k, v := range o {
		merged[k] = v
	}
	for k, v := range data {
		merged[k] = v
	}

	return merged
}
