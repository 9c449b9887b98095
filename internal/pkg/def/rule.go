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
	"github.com/gridplan/gridplan/pkg/cast"
)

// RuleOption carries the per-run knobs of the plan rewrite stage.
type RuleOption struct {
	Debug                bool                  `json:"debug" yaml:"debug"`
	LogFilename          string                `json:"logFilename,omitempty" yaml:"logFilename,omitempty"`
	PlanOptimizeStrategy *PlanOptimizeStrategy `json:"planOptimizeStrategy,omitempty" yaml:"planOptimizeStrategy,omitempty"`
}

type PlanOptimizeStrategy struct {
	DisableColumnPrune bool `json:"disableColumnPrune,omitempty" yaml:"disableColumnPrune,omitempty"`
	DisableFilterHoist bool `json:"disableFilterHoist,omitempty" yaml:"disableFilterHoist,omitempty"`
}

const (
	RuleColumnPruner = "columnPruner"
	RuleFilterHoist  = "filterHoist"
)

func (p *PlanOptimizeStrategy) IsOptimizeEnabled(name string) bool {
	if p == nil {
		return true
	}
	switch name {
	case RuleColumnPruner:
		return !p.DisableColumnPrune
	case RuleFilterHoist:
		return !p.DisableFilterHoist
	default:
		return true
	}
}

// RuleOptionFromMap builds a RuleOption from a generic property map, e.g. one
// decoded from a json or yaml document.
func RuleOptionFromMap(props map[string]interface{}) (*RuleOption, error) {
	o := &RuleOption{}
	if err := cast.MapToStruct(props, o); err != nil {
		return nil, err
	}
	return o, nil
}
