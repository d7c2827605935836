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

// Package subcmd holds the commands of the dxtheory CLI.
package subcmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"dirpx.dev/dxtheory/dxcore/model/scale"
	"dirpx.dev/dxtheory/internal/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

// NewApp returns the dxtheory application with every command registered.
func NewApp(version string) *cli.App {
	app := cli.NewApp()
	app.Name = "dxtheory"
	app.HelpName = "dxtheory"
	app.Version = version
	app.Usage = "Spells intervals, scales and chords with correct enharmonic names"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "format, f",
			Usage:  `Output format (text|json|yaml)`,
			Value:  "text",
			EnvVar: "DXTHEORY_FORMAT",
		},
		cli.StringFlag{
			Name:   "catalog, c",
			Usage:  `YAML file of additional scale definitions`,
			EnvVar: "DXTHEORY_CATALOG",
		},
		cli.BoolFlag{
			Name:   "debug, d",
			Usage:  `Show debug messages`,
			EnvVar: "DXTHEORY_DEBUG",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: `Suppress information messages`,
		},
		cli.BoolFlag{
			Name:  "silent, Q",
			Usage: `Do not output any messages`,
		},
	}

	app.Before = func(ctx *cli.Context) error {
		if ctx.GlobalBool("debug") {
			log.CurrentLevel = log.LevelDebug
		} else if ctx.GlobalBool("silent") {
			log.CurrentLevel = log.LevelNone
		} else if ctx.GlobalBool("quiet") {
			log.CurrentLevel = log.LevelWarn
		}
		return nil
	}

	app.Commands = []cli.Command{
		Spell,
		Modes,
		Leap,
		Fall,
		Chord,
		Catalog,
	}

	app.Action = func(ctx *cli.Context) error {
		return cli.ShowAppHelp(ctx)
	}

	return app
}

// render writes v in the format selected by --format. text is the plain
// form.
func render(ctx *cli.Context, v any, text string) error {
	w := ctx.App.Writer

	switch format := strings.ToLower(ctx.GlobalString("format")); format {
	case "", "text":
		_, err := fmt.Fprintln(w, text)
		return err
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode JSON")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encode YAML")
		}
		_, err = w.Write(data)
		return err
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

// loadCatalog returns the built-in catalog merged with the file named by
// --catalog, if any.
func loadCatalog(ctx *cli.Context) (scale.Catalog, error) {
	catalog := scale.Builtin()

	path := ctx.GlobalString("catalog")
	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return scale.Catalog{}, errors.Wrapf(err, "read catalog %s", path)
	}
	user, err := scale.LoadCatalog(data)
	if err != nil {
		return scale.Catalog{}, errors.Wrapf(err, "load catalog %s", path)
	}
	log.Debugf("loaded %d scale definitions from %s", len(user.Scales), path)

	return catalog.Merge(user), nil
}

func usage(ctx *cli.Context, args string) error {
	return errors.Errorf("%s: expected %s", ctx.Command.Name, args)
}
