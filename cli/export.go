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

package cli

import (
	"encoding/json"
	"fmt"

	cliUtil "github.com/alphaladdin/NEOcad2-sub001/cli/util"
	"github.com/alphaladdin/NEOcad2-sub001/util/errwrap"
)

// ExportArgs is the CLI parsing structure and type of the parsed result. This
// particular one is for the `export` subcommand.
type ExportArgs struct {
	File string `arg:"--file,required" help:"path to the params yaml file"`
}

// Run loads the params file, settles the engine and prints the serialized
// records as json, with ids assigned. The output round-trips through import.
func (obj *ExportArgs) Run(data *cliUtil.Data) (bool, error) {
	eng, err := loadEngine(data, obj.File)
	if err != nil {
		return false, err
	}
	b, err := json.MarshalIndent(eng.Export(), "", "\t")
	if err != nil {
		return false, errwrap.Wrapf(err, "marshal records")
	}
	fmt.Printf("%s\n", b)
	return true, nil
}
