// Copyright 2026 The LabRAD-Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hydrant

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/tags.yaml
var tagsYAML []byte

// TagFixture is one row of the golden type-tag conformance table: a tag,
// its expected pretty form, and its expected inline layout.
type TagFixture struct {
	Tag    string `yaml:"tag"`
	Pretty string `yaml:"pretty"`
	Width  int    `yaml:"width"`
	Fixed  bool   `yaml:"fixed"`
}

// TagFixtures parses and returns the embedded golden type-tag table.
func TagFixtures() ([]TagFixture, error) {
	var fixtures []TagFixture
	if err := yaml.Unmarshal(tagsYAML, &fixtures); err != nil {
		return nil, err
	}
	return fixtures, nil
}
