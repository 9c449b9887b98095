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
	"github.com/stretchr/testify/require"
)

func TestExplainFromPlan(t *testing.T) {
	query := New(
		Step{Name("a"), Select},
		Step{Group(0), Filter},
	)
	explain, err := ExplainFromPlan(query)
	require.NoError(t, err)
	assert.Equal(t, `{"op":"Step_0","info":"Name(\"a\"), Select"}
{"op":"Step_1","info":"Group(0), Filter"}`, explain)

	explain, err = ExplainFromPlan(New())
	require.NoError(t, err)
	assert.Equal(t, "", explain)
}

func TestExplainNilPlan(t *testing.T) {
	_, err := ExplainFromPlan(nil)
	require.Error(t, err)
}
