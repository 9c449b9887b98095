// Copyright 2024 EMQ Technologies Co., Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepContains(t *testing.T) {
	tests := []struct {
		name      string
		step      Step
		hasFilter bool
		hasGroup  bool
	}{
		{
			name: "empty row",
			step: Step{},
		},
		{
			name: "filter only",
			step: Step{None, Filter},

			hasFilter: true,
		},
		{
			name:     "group only",
			step:     Step{Group(1), None},
			hasGroup: true,
		},
		{
			name:      "both",
			step:      Step{Group(0), Filter, Map},
			hasFilter: true,
			hasGroup:  true,
		},
		{
			name: "neither",
			step: Step{Name("a"), Select, Map, Join("b")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hasFilter, tt.step.ContainsFilter())
			assert.Equal(t, tt.hasGroup, tt.step.ContainsGroup())
		})
	}
}

func TestRightmostFilterIndex(t *testing.T) {
	tests := []struct {
		name  string
		step  Step
		index int
		found bool
	}{
		{
			name:  "ties prefer the right-most",
			step:  Step{None, Filter, Filter, None},
			index: 2,
			found: true,
		},
		{
			name:  "single filter at head",
			step:  Step{Filter, Map, Select},
			index: 0,
			found: true,
		},
		{
			name:  "filter at tail",
			step:  Step{Map, Map, Filter},
			index: 2,
			found: true,
		},
		{
			name: "no filter",
			step: Step{Name("a"), Map},
		},
		{
			name: "empty row",
			step: Step{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, found := tt.step.RightmostFilterIndex()
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.index, index)
		})
	}
}
