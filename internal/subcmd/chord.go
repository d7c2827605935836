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
	"strings"

	"dirpx.dev/dxtheory/dxcore/model/chord"
	"dirpx.dev/dxtheory/dxcore/model/pitch"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

type chordSpelling struct {
	Symbol string      `json:"symbol" yaml:"symbol"`
	Chord  chord.Chord `json:"chord" yaml:"chord"`
	Notes  pitch.Notes `json:"notes" yaml:"notes"`
}

var Chord = cli.Command{
	Name:      "chord",
	Aliases:   []string{"c"},
	Usage:     "Spells a chord from a root note",
	ArgsUsage: "<root>",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "quality, k",
			Usage: `Triad quality (major, minor, diminished, sus4, sus2)`,
			Value: chord.MajorStr,
		},
		cli.StringSliceFlag{
			Name:  "tension, t",
			Usage: `Tension to add (7, M7, 9, 11, 13); repeatable or comma-separated`,
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 {
			return usage(ctx, "<root>")
		}
		root, err := pitch.ParseNote(ctx.Args().First())
		if err != nil {
			return errors.Wrap(err, "chord")
		}
		q, err := chord.ParseQuality(ctx.String("quality"))
		if err != nil {
			return errors.Wrap(err, "chord")
		}

		var tensions []chord.Tension
		for _, arg := range ctx.StringSlice("tension") {
			for _, field := range strings.Split(arg, ",") {
				t, err := chord.ParseTension(strings.TrimSpace(field))
				if err != nil {
					return errors.Wrap(err, "chord")
				}
				tensions = append(tensions, t)
			}
		}

		c, err := chord.New(root, q, tensions...)
		if err != nil {
			return errors.Wrap(err, "chord")
		}
		notes := c.Notes()

		return render(ctx, chordSpelling{Symbol: c.Symbol(), Chord: c, Notes: notes}, c.Symbol()+": "+notes.String())
	},
}
