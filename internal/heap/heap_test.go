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

package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocAndGet(t *testing.T) {
	h := New()
	idx := h.Alloc(4)
	require.Equal(t, int32(0), idx)
	require.Equal(t, 1, h.Len())

	slot := h.Get(idx)
	require.Len(t, slot, 4)
}

func TestGetUnassignedReturnsNil(t *testing.T) {
	h := New()
	require.Nil(t, h.Get(-1))
	require.Nil(t, h.Get(5))
}

func TestSetReusesIndexWithoutGrowingLength(t *testing.T) {
	h := New()
	idx := h.Alloc(3)
	require.Equal(t, 1, h.Len())

	h.Set(idx, []byte("hello"))
	require.Equal(t, 1, h.Len())
	require.Equal(t, []byte("hello"), h.Get(idx))

	h.Set(idx, []byte("hi"))
	require.Equal(t, 1, h.Len())
	require.Equal(t, []byte("hi"), h.Get(idx))
}

func TestCloneIsIndependent(t *testing.T) {
	h := New()
	idx := h.Alloc(2)
	h.Set(idx, []byte{1, 2})

	clone, err := h.Clone()
	require.NoError(t, err)
	require.Equal(t, h.Get(idx), clone.Get(idx))

	clone.Set(idx, []byte{9, 9})
	require.Equal(t, []byte{1, 2}, h.Get(idx))
	require.Equal(t, []byte{9, 9}, clone.Get(idx))
}

func TestCloneOfEmptyHeap(t *testing.T) {
	h := New()
	clone, err := h.Clone()
	require.NoError(t, err)
	require.Equal(t, 0, clone.Len())
}
