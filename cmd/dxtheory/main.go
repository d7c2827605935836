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

package main

import (
	"os"

	"dirpx.dev/dxtheory/internal/log"
	"dirpx.dev/dxtheory/internal/subcmd"
	"github.com/joho/godotenv"
)

var version string

func init() {
	if version == "" {
		version = "unknown"
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("cannot load .env: %v", err)
	}

	if err := subcmd.NewApp(version).Run(os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
