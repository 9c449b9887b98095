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

package def

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOptimizeEnabled(t *testing.T) {
	var nilStrategy *PlanOptimizeStrategy
	assert.True(t, nilStrategy.IsOptimizeEnabled(RuleColumnPruner))
	assert.True(t, nilStrategy.IsOptimizeEnabled(RuleFilterHoist))

	s := &PlanOptimizeStrategy{DisableColumnPrune: true}
	assert.False(t, s.IsOptimizeEnabled(RuleColumnPruner))
	assert.True(t, s.IsOptimizeEnabled(RuleFilterHoist))
	assert.True(t, s.IsOptimizeEnabled("unknownRule"))

	s = &PlanOptimizeStrategy{DisableFilterHoist: true}
	assert.True(t, s.IsOptimizeEnabled(RuleColumnPruner))
	assert.False(t, s.IsOptimizeEnabled(RuleFilterHoist))
}

func TestRuleOptionFromMap(t *testing.T) {
	o, err := RuleOptionFromMap(map[string]interface{}{
		"debug": true,
		"planOptimizeStrategy": map[string]interface{}{
			"disableFilterHoist": true,
		},
	})
	require.NoError(t, err)
	assert.True(t, o.Debug)
	require.NotNil(t, o.PlanOptimizeStrategy)
	assert.True(t, o.PlanOptimizeStrategy.DisableFilterHoist)
	assert.False(t, o.PlanOptimizeStrategy.DisableColumnPrune)
}
