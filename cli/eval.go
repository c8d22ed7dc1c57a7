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
	"fmt"
	"log"
	"strconv"
	"strings"

	cliUtil "github.com/alphaladdin/NEOcad2-sub001/cli/util"
	"github.com/alphaladdin/NEOcad2-sub001/engine"
	"github.com/alphaladdin/NEOcad2-sub001/param"
	"github.com/alphaladdin/NEOcad2-sub001/yamlparams"

	"github.com/spf13/afero"
)

// EvalArgs is the CLI parsing structure and type of the parsed result. This
// particular one is for the `eval` subcommand.
type EvalArgs struct {
	File string `arg:"--file,required" help:"path to the params yaml file"`

	Set []string `arg:"--set,separate" help:"override a plain parameter, as Name=value"`
}

// Run loads the params file into a fresh engine, applies any overrides and
// prints the settled values.
func (obj *EvalArgs) Run(data *cliUtil.Data) (bool, error) {
	eng, err := loadEngine(data, obj.File)
	if err != nil {
		return false, err
	}

	for _, kv := range obj.Set {
		name, value, err := parseOverride(kv)
		if err != nil {
			return false, cliUtil.CliParseError(err)
		}
		p, exists := eng.GetByName(name)
		if !exists {
			return false, fmt.Errorf("unknown parameter: `%s`", name)
		}
		if err := eng.Update(p, value); err != nil {
			return false, err
		}
	}

	for _, p := range eng.Parameters() {
		value := "<nil>"
		if v := p.Value(); v != nil {
			value = v.String()
		}
		if unit := p.Unit.String(); unit != "" {
			fmt.Printf("%s = %s %s\n", p.Name, value, unit)
			continue
		}
		fmt.Printf("%s = %s\n", p.Name, value)
	}
	return true, nil
}

// loadEngine builds an engine from a params file. Import problems print as
// warnings, the engine still comes up with whatever loaded cleanly.
func loadEngine(data *cliUtil.Data, path string) (*engine.Engine, error) {
	config, err := yamlparams.Load(afero.NewOsFs(), path)
	if err != nil {
		return nil, err
	}
	name := config.Set
	if name == "" {
		name = path
	}
	eng := engine.New(name)
	eng.Debug = data.Flags.Debug
	eng.Logf = func(format string, v ...interface{}) {
		log.Printf("engine: "+format, v...)
	}
	if err := eng.Import(config.Records()); err != nil {
		log.Printf("import warnings: %v", err)
	}
	return eng, nil
}

// parseOverride splits a Name=value argument. The value parses as a number,
// a bool, or falls back to a plain string.
func parseOverride(kv string) (string, param.Value, error) {
	split := strings.SplitN(kv, "=", 2)
	if len(split) != 2 || split[0] == "" {
		return "", nil, fmt.Errorf("invalid override: `%s`", kv)
	}
	name, raw := split[0], split[1]
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return name, &param.IntValue{V: i}, nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return name, &param.FloatValue{V: f}, nil
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return name, &param.BoolValue{V: b}, nil
	}
	return name, &param.StrValue{V: raw}, nil
}
