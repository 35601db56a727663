// SPDX-License-Identifier: MIT

// Package lexers holds the built-in lexer Definitions.
package lexers

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"time"

	"gitlab.com/fisherprime/hilite/lexer"
	"gitlab.com/fisherprime/hilite/registry"
)

//go:embed data/*.yaml
var data embed.FS

const dataDir = "data"

// MatchTimeout bounds a single pattern evaluation of the declarative Definitions.
const MatchTimeout = 250 * time.Millisecond

// Builtin lists the Definitions declared in Go, sorted by tag.
func Builtin() []*lexer.Definition {
	return []*lexer.Definition{Docker, GHCCore, JSON, Lustre, PlainText, Prolog, Syzprog, Wollok}
}

// Declarative loads the embedded YAML Definitions, their patterns bounded by MatchTimeout.
func Declarative(opts ...lexer.BuildOption) (defs []*lexer.Definition, err error) {
	opts = append([]lexer.BuildOption{lexer.WithMatchTimeout(MatchTimeout)}, opts...)

	entries, err := fs.ReadDir(data, dataDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}

		var raw []byte
		if raw, err = data.ReadFile(path.Join(dataDir, entry.Name())); err != nil {
			return nil, err
		}

		var def *lexer.Definition
		if def, err = lexer.ParseYAML(raw, opts...); err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		defs = append(defs, def)
	}

	return
}

// All lists every built-in Definition.
func All(opts ...lexer.BuildOption) (defs []*lexer.Definition, err error) {
	if defs, err = Declarative(opts...); err != nil {
		return
	}

	return append(Builtin(), defs...), nil
}

// NewRegistry creates a frozen Registry holding every built-in Definition.
func NewRegistry(opts ...registry.Option) (r *registry.Registry, err error) {
	defs, err := All()
	if err != nil {
		return
	}

	r = registry.New(opts...)
	if err = r.Register(defs...); err != nil {
		return nil, err
	}
	r.Freeze()

	return
}
