// NEOcad parametric engine
// Copyright (C) the NEOcad project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/alphaladdin/NEOcad2-sub001/cli"
	cliUtil "github.com/alphaladdin/NEOcad2-sub001/cli/util"
)

// These constants are some global variables that are used throughout the code.
const (
	// Debug adds additional log messages.
	Debug = false

	// Tagline is the program description.
	Tagline = "a parametric dependency engine for cad elements"
)

// set at compile time
var (
	program string
	version string
)

func main() {
	if program == "" {
		program = "neoparam"
	}
	if version == "" {
		version = "unknown"
	}
	data := &cliUtil.Data{
		Program: program,
		Version: version,
		Tagline: Tagline,
		Flags: cliUtil.Flags{
			Debug: Debug,
		},
		Args: os.Args,
	}
	if err := cli.CLI(data); err != nil {
		fmt.Println(err)
		os.Exit(1)
		return
	}
}
