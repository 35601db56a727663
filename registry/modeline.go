// SPDX-License-Identifier: MIT
package registry

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// modelineLines is the number of leading & trailing lines searched for a modeline.
const modelineLines = 5

var modelines = []*regexp2.Regexp{
	// vim: set ft=ruby : / vi: filetype=ruby
	regexp2.MustCompile(`(?:^|\s)(?:vi|vim|ex)(?:[<=>]?\d*)?:.*?\b(?:ft|filetype|syn|syntax)=([\w.+-]+)`, regexp2.None),
	// -*- mode: ruby -*- / -*- ruby -*-
	regexp2.MustCompile(`-\*-\s*(?:[^;*]*?;\s*)*?(?:mode:\s*)?([\w.+-]+)\s*(?:;[^*]*)?-\*-`, regexp2.IgnoreCase),
}

// modeline retrieves the lower-case language named by a vim or emacs modeline in sample.
func modeline(sample string) string {
	if sample == "" {
		return ""
	}

	lines := strings.Split(sample, "\n")
	if len(lines) > 2*modelineLines {
		lines = append(lines[:modelineLines:modelineLines], lines[len(lines)-modelineLines:]...)
	}

	for _, line := range lines {
		for _, re := range modelines {
			m, err := re.FindStringMatch(line)
			if err != nil || m == nil {
				continue
			}
			if g := m.GroupByNumber(1); g != nil && g.Length > 0 {
				return strings.ToLower(g.String())
			}
		}
	}

	return ""
}
