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

// Package yamlparams provides the facilities for loading a parameter set
// from a yaml file. The file is a flat list of parameter records, formulas
// may reference parameters declared further down: the engine's two-pass
// import resolves them.
package yamlparams

import (
	"fmt"

	"github.com/alphaladdin/NEOcad2-sub001/param"
	"github.com/alphaladdin/NEOcad2-sub001/util/errwrap"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// Config is the data structure that describes a single parameter set.
type Config struct {
	Set        string         `yaml:"set"`
	Comment    string         `yaml:"comment"`
	Parameters []param.Record `yaml:"parameters"`
}

// Parse parses a data stream into the config structure.
func (obj *Config) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, obj); err != nil {
		return errwrap.Wrapf(err, "parse yaml")
	}
	if obj.Parameters == nil {
		return fmt.Errorf("parse error: no parameters")
	}
	seen := make(map[string]struct{})
	for i, r := range obj.Parameters {
		if r.Name == "" {
			return fmt.Errorf("parameter #%d is missing a name", i)
		}
		if _, exists := seen[r.Name]; exists {
			return fmt.Errorf("duplicate parameter name: `%s`", r.Name)
		}
		seen[r.Name] = struct{}{}
		// fail early on junk kinds and units
		if _, err := param.ParseKind(r.Kind); err != nil {
			return errwrap.Wrapf(err, "parameter `%s`", r.Name)
		}
		if _, err := param.ParseUnit(r.Unit); err != nil {
			return errwrap.Wrapf(err, "parameter `%s`", r.Name)
		}
	}
	return nil
}

// Records returns the parameter records of this config, ready for an engine
// import.
func (obj *Config) Records() []param.Record {
	return obj.Parameters
}

// Load reads and parses a params file from the given filesystem.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errwrap.Wrapf(err, "read `%s`", path)
	}
	config := &Config{}
	if err := config.Parse(data); err != nil {
		return nil, errwrap.Wrapf(err, "load `%s`", path)
	}
	return config, nil
}
