// SPDX-License-Identifier: MIT
package registry

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

type (
	// filenameGlob is a compiled filename pattern; literal patterns name an exact basename.
	filenameGlob struct {
		pattern string
		literal bool
		g       glob.Glob
	}
)

const globMeta = `*?[]{}\`

func compileGlobs(patterns []string) (globs []filenameGlob, err error) {
	globs = make([]filenameGlob, 0, len(patterns))

	for _, pattern := range patterns {
		fg := filenameGlob{pattern: pattern, literal: !strings.ContainsAny(pattern, globMeta)}
		if !fg.literal {
			if fg.g, err = glob.Compile(pattern); err != nil {
				return nil, fmt.Errorf("filename glob %q: %w", pattern, err)
			}
		}
		globs = append(globs, fg)
	}

	return
}

// filenameWeight scores the most specific glob matching filename's basename.
func filenameWeight(globs []filenameGlob, filename string, w Weights) (weight float64) {
	if filename == "" {
		return
	}
	base := filepath.Base(filename)

	for _, fg := range globs {
		switch {
		case fg.literal && fg.pattern == base:
			return w.FilenameExact
		case !fg.literal && fg.g.Match(base):
			weight = w.FilenameGlob
		}
	}

	return
}

// normalizeMimetype strips parameters & case from a media type.
func normalizeMimetype(mimetype string) string {
	if mediatype, _, err := mime.ParseMediaType(mimetype); err == nil {
		return mediatype
	}

	return strings.ToLower(strings.TrimSpace(mimetype))
}
