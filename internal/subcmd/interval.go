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
	"dirpx.dev/dxtheory/dxcore/model/interval"
	"dirpx.dev/dxtheory/dxcore/model/pitch"
	"dirpx.dev/dxtheory/internal/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

type motion struct {
	From     pitch.Note        `json:"from" yaml:"from"`
	Interval interval.Interval `json:"interval" yaml:"interval"`
	To       pitch.Note        `json:"to" yaml:"to"`
}

var Leap = cli.Command{
	Name:      "leap",
	Aliases:   []string{"up"},
	Usage:     "Raises a note by an interval (M3, P5, d7)",
	ArgsUsage: "<note> <interval>",
	Action: func(ctx *cli.Context) error {
		from, i, err := motionArgs(ctx)
		if err != nil {
			return err
		}
		to := from.Leap(i)
		return render(ctx, motion{From: from, Interval: i, To: to}, from.String()+" + "+i.String()+" = "+to.String())
	},
}

var Fall = cli.Command{
	Name:      "fall",
	Aliases:   []string{"down"},
	Usage:     "Lowers a note by an interval (M3, P5, d7)",
	ArgsUsage: "<note> <interval>",
	Action: func(ctx *cli.Context) error {
		from, i, err := motionArgs(ctx)
		if err != nil {
			return err
		}
		to, err := from.Fall(i)
		if err != nil {
			return errors.Wrap(err, "fall")
		}
		return render(ctx, motion{From: from, Interval: i, To: to}, from.String()+" - "+i.String()+" = "+to.String())
	},
}

func motionArgs(ctx *cli.Context) (pitch.Note, interval.Interval, error) {
	if ctx.NArg() < 2 {
		return pitch.Note{}, interval.Interval{}, usage(ctx, "<note> <interval>")
	}
	args := ctx.Args()

	from, err := pitch.ParseNote(args.Get(0))
	if err != nil {
		return pitch.Note{}, interval.Interval{}, errors.Wrap(err, ctx.Command.Name)
	}
	i, err := interval.ParseInterval(args.Get(1))
	if err != nil {
		return pitch.Note{}, interval.Interval{}, errors.Wrap(err, ctx.Command.Name)
	}
	if i.IsTritone() {
		return pitch.Note{}, interval.Interval{}, errors.Errorf("%s: spell the tritone as A4 or d5", ctx.Command.Name)
	}

	log.Debugf("%s %s by %s", ctx.Command.Name, from, i.Name())
	log.Enter()
	log.Debugf("%d letter steps, %d semitones", i.DiatonicSteps(), i.Size())
	log.Leave()

	return from, i, nil
}
