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

package yamlparams

import (
	"testing"

	"github.com/alphaladdin/NEOcad2-sub001/engine"
	"github.com/alphaladdin/NEOcad2-sub001/param"

	"github.com/kylelemons/godebug/pretty"
	"github.com/spf13/afero"
)

const wallYaml = `
set: wall
comment: a simple wall
parameters:
- name: Width
  value: 1000
  kind: length
  unit: mm
- name: Height
  value: 2000
  kind: length
  unit: mm
- name: Area
  value: 0
  kind: area
  formula: (Width * Height) / 1000000
  readonly: true
`

func TestParse1(t *testing.T) {
	config := &Config{}
	if err := config.Parse([]byte(wallYaml)); err != nil {
		t.Fatalf("parse failed: %+v", err)
	}
	if config.Set != "wall" {
		t.Errorf("expected set `wall`, got: %s", config.Set)
	}
	exp := []param.Record{
		{
			Name:  "Width",
			Value: 1000,
			Kind:  "length",
			Unit:  "mm",
		},
		{
			Name:  "Height",
			Value: 2000,
			Kind:  "length",
			Unit:  "mm",
		},
		{
			Name:     "Area",
			Value:    0,
			Kind:     "area",
			Formula:  "(Width * Height) / 1000000",
			ReadOnly: true,
		},
	}
	if diff := pretty.Compare(exp, config.Records()); diff != "" {
		t.Errorf("unexpected records (-exp +got):\n%s", diff)
	}
}

func TestParse2(t *testing.T) {
	type test struct { // an individual test
		name string
		yaml string
	}
	testCases := []test{
		{
			name: "empty",
			yaml: ``,
		},
		{
			name: "no parameters",
			yaml: `set: x`,
		},
		{
			name: "missing name",
			yaml: `
parameters:
- value: 1
  kind: number
`,
		},
		{
			name: "duplicate name",
			yaml: `
parameters:
- name: X
  value: 1
- name: X
  value: 2
`,
		},
		{
			name: "unknown kind",
			yaml: `
parameters:
- name: X
  value: 1
  kind: squiggle
`,
		},
		{
			name: "unknown unit",
			yaml: `
parameters:
- name: X
  value: 1
  kind: length
  unit: furlong
`,
		},
		{
			name: "not yaml",
			yaml: `{{{`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := &Config{}
			if err := config.Parse([]byte(tc.yaml)); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestLoad1(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/wall.yaml", []byte(wallYaml), 0644); err != nil {
		t.Fatalf("write failed: %+v", err)
	}

	config, err := Load(fs, "/wall.yaml")
	if err != nil {
		t.Fatalf("load failed: %+v", err)
	}

	// the loaded records feed straight into an engine
	eng := engine.New(config.Set)
	eng.Logf = t.Logf
	if err := eng.Import(config.Records()); err != nil {
		t.Errorf("import failed: %+v", err)
	}
	area, exists := eng.GetByName("Area")
	if !exists {
		t.Fatalf("Area not found")
	}
	if v := area.Value().Float(); v != 2 {
		t.Errorf("expected Area == 2, got: %v", v)
	}
}

func TestLoad2(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, err := Load(fs, "/missing.yaml"); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
