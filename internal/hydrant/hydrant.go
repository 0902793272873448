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

// Package hydrant generates legal, randomly-populated values for any
// labrad.Type, for seeding round-trip tests. It plays the role the
// teacher library's internal/testdata corpus plays, generalized from "load
// a fixed set of recorded test messages" to "synthesize an arbitrary legal
// value for a given type on demand."
package hydrant

import (
	"math/rand/v2"

	"github.com/google/uuid"

	labrad "github.com/labrad-go/core"
)

// maxErrorDepth bounds recursive Error(Error(...)) generation so Generate
// always terminates.
const maxErrorDepth = 3

// Hydrant produces deterministic pseudo-random data from a seed, so a
// failing test can be reproduced by recording the seed that triggered it.
type Hydrant struct {
	rng *rand.Rand
}

// New returns a Hydrant seeded deterministically from seed.
func New(seed uint64) *Hydrant {
	return &Hydrant{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate returns a Data of type t with every slot filled with a
// uniformly random legal value. List shapes are drawn with each dimension
// in [0, 5].
func (h *Hydrant) Generate(t labrad.Type) labrad.Data {
	d := labrad.New(t)
	h.fill(d, 0)
	return d
}

func (h *Hydrant) fill(d labrad.Data, errorDepth int) {
	t := d.Type()
	switch t.Variant() {
	case labrad.VariantEmpty:
		// no content to fill

	case labrad.VariantBool:
		_ = labrad.SetBool(d, h.rng.IntN(2) == 1)

	case labrad.VariantInt:
		_ = labrad.SetInt(d, int32(h.rng.Int64N(1<<32)-1<<31))

	case labrad.VariantWord:
		_ = labrad.SetWord(d, h.rng.Uint32())

	case labrad.VariantValue:
		_ = labrad.SetValue(d, h.randFloat())

	case labrad.VariantComplex:
		_ = labrad.SetComplex(d, complex(h.randFloat(), h.randFloat()))

	case labrad.VariantTime:
		_ = labrad.SetTime(d, labrad.Instant{Seconds: h.rng.Uint64(), Fraction: h.rng.Uint64()})

	case labrad.VariantStr:
		_ = labrad.SetBytes(d, h.randBytes(h.rng.IntN(17)))

	case labrad.VariantList:
		h.fillList(d, t, errorDepth)

	case labrad.VariantCluster:
		for i := 0; i < t.Size(); i++ {
			child, err := labrad.GetData(d, i)
			if err != nil {
				continue
			}
			h.fill(child, errorDepth)
		}

	case labrad.VariantError:
		h.fillError(d, t, errorDepth)
	}
}

func (h *Hydrant) fillList(d labrad.Data, t labrad.Type, errorDepth int) {
	depth := t.Depth()
	shape := make([]int, depth)
	for i := range shape {
		shape[i] = h.rng.IntN(6) // [0, 5]
	}
	shaped, err := labrad.SetArrayShape(d, shape)
	if err != nil {
		return
	}

	total := 1
	for _, n := range shape {
		total *= n
	}
	indices := make([]int, depth)
	for flat := 0; flat < total; flat++ {
		rem := flat
		for i := depth - 1; i >= 0; i-- {
			if shape[i] == 0 {
				indices[i] = 0
				continue
			}
			indices[i] = rem % shape[i]
			rem /= shape[i]
		}
		child, err := labrad.GetData(shaped, indices...)
		if err != nil {
			continue
		}
		h.fill(child, errorDepth)
	}
}

func (h *Hydrant) fillError(d labrad.Data, t labrad.Type, errorDepth int) {
	code := int32(h.rng.Int64N(1000))
	msg := string(h.randBytes(h.rng.IntN(33)))
	_ = labrad.SetError(d, code, msg)

	payloadType, has := t.Payload()
	if !has {
		return
	}
	if payloadType.Variant() == labrad.VariantError && errorDepth >= maxErrorDepth {
		return
	}
	payload, err := labrad.ErrorPayload(d)
	if err != nil {
		return
	}
	depth := errorDepth
	if payloadType.Variant() == labrad.VariantError {
		depth++
	}
	h.fill(payload, depth)
}

func (h *Hydrant) randFloat() float64 {
	return h.rng.Float64()*2e6 - 1e6
}

func (h *Hydrant) randBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(h.rng.IntN(256))
	}
	return b
}

// RandomContext mints a visually distinct, non-sequential Context from a
// fresh random UUID, for fixtures that want obviously-not-handwritten
// identifiers rather than sequential test counters.
func RandomContext() labrad.Context {
	id := uuid.New()
	high := uint32(id[0])<<24 | uint32(id[1])<<16 | uint32(id[2])<<8 | uint32(id[3])
	low := uint32(id[4])<<24 | uint32(id[5])<<16 | uint32(id[6])<<8 | uint32(id[7])
	return labrad.NewContext(high, low)
}
