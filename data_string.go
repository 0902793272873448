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

package labrad

import (
	"golang.org/x/text/encoding/charmap"
)

// GetString is a convenience over GetBytes for callers who know a Str
// holds text: LabRAD treats string content as opaque ISO-8859-1, so this
// decodes through that codec rather than assuming UTF-8.
func GetString(d Data, indices ...int) (string, error) {
	b, err := GetBytes(d, indices...)
	if err != nil {
		return "", err
	}
	return charmap.ISO8859_1.NewDecoder().String(string(b))
}

// SetString is a convenience over SetBytes: it encodes s as ISO-8859-1
// before storing it, matching how a LabRAD peer will interpret the bytes
// on read-back. It fails if s contains a character outside that codec's
// range.
func SetString(d Data, s string, indices ...int) error {
	encoded, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return err
	}
	return SetBytes(d, []byte(encoded), indices...)
}
