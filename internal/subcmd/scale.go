/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package subcmd

import (
	"fmt"
	"strings"

	"dirpx.dev/dxtheory/dxcore/model/pitch"
	"dirpx.dev/dxtheory/dxcore/model/scale"
	"dirpx.dev/dxtheory/internal/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

type spelling struct {
	Root      pitch.Note  `json:"root" yaml:"root"`
	Scale     string      `json:"scale" yaml:"scale"`
	Intervals scale.Set   `json:"intervals" yaml:"intervals"`
	Notes     pitch.Notes `json:"notes" yaml:"notes"`
}

var Spell = cli.Command{
	Name:      "spell",
	Aliases:   []string{"s"},
	Usage:     "Spells a mode or a catalog scale from a root note",
	ArgsUsage: "<root>",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "mode, m",
			Usage: `Diatonic mode (lydian, ionian, mixolydian, dorian, aeolian, phrygian, locrian, major, minor)`,
			Value: scale.IonianStr,
		},
		cli.StringFlag{
			Name:  "scale, s",
			Usage: `Scale name from the catalog; overrides --mode`,
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			return usage(ctx, "<root>")
		}
		root, err := pitch.ParseNote(ctx.Args().First())
		if err != nil {
			return errors.Wrap(err, "spell")
		}

		var (
			s    scale.Scale
			name string
		)
		if n := ctx.String("scale"); n != "" {
			catalog, err := loadCatalog(ctx)
			if err != nil {
				return err
			}
			def, ok := catalog.Lookup(n)
			if !ok {
				return errors.Errorf("spell: unknown scale %q (known: %s)", n, strings.Join(catalog.Names(), ", "))
			}
			s, name = def.At(root), def.Name
		} else {
			m, err := scale.ParseMode(ctx.String("mode"))
			if err != nil {
				return errors.Wrap(err, "spell")
			}
			s, name = scale.NewDiatonic(root, m), m.String()
		}

		log.Debugf("spelling %s %s [%s]", root, name, s.Intervals())
		notes := scale.Spell(s)

		return render(ctx, spelling{
			Root:      root,
			Scale:     name,
			Intervals: s.Intervals(),
			Notes:     notes,
		}, notes.String())
	},
}

type modeSpelling struct {
	Mode  scale.Mode  `json:"mode" yaml:"mode"`
	Root  pitch.Note  `json:"root" yaml:"root"`
	Notes pitch.Notes `json:"notes" yaml:"notes"`
}

var Modes = cli.Command{
	Name:      "modes",
	Aliases:   []string{"m"},
	Usage:     "Lists the seven modes of a major key",
	ArgsUsage: "<key>",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			return usage(ctx, "<key>")
		}
		key, err := pitch.ParseNote(ctx.Args().First())
		if err != nil {
			return errors.Wrap(err, "modes")
		}

		out := make([]modeSpelling, 0, len(scale.Modes()))
		lines := make([]string, 0, len(scale.Modes()))
		for _, m := range scale.Modes() {
			tonic := m.Tonic(key)
			notes := scale.NewDiatonic(tonic, m).Notes()
			out = append(out, modeSpelling{Mode: m, Root: tonic, Notes: notes})
			lines = append(lines, fmt.Sprintf("%-10s %s", m, notes))
		}

		return render(ctx, out, strings.Join(lines, "\n"))
	},
}

var Catalog = cli.Command{
	Name:    "catalog",
	Aliases: []string{"ls"},
	Usage:   "Lists the known scale definitions",
	Action: func(ctx *cli.Context) error {
		catalog, err := loadCatalog(ctx)
		if err != nil {
			return err
		}
		return render(ctx, catalog, catalog.String())
	},
}
