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
	"github.com/gridplan/gridplan/internal/conf"
	"github.com/gridplan/gridplan/internal/pkg/def"
	"github.com/gridplan/gridplan/pkg/timex"
)

// The rule order is fixed: filter hoisting compares row widths against the
// post-pruning rows, so the pruner must run first.
var optRuleList = []logicalOptRule{
	&columnPruner{},
	&filterHoist{},
}

// Optimize applies the enabled rewrite rules in order and returns the
// rewritten plan. The receiver is cloned first and never mutated. A nil
// options value selects the defaults, all rules enabled.
func (p *Plan) Optimize(options *def.RuleOption) (*Plan, error) {
	var strategy *def.PlanOptimizeStrategy
	debug := false
	if options != nil {
		strategy = options.PlanOptimizeStrategy
		debug = options.Debug
	}
	q := p.clone()
	for _, rule := range optRuleList {
		if !strategy.IsOptimizeEnabled(rule.name()) {
			conf.Log.Debugf("rule %s disabled, skip", rule.name())
			continue
		}
		start := timex.GetNow()
		if err := rule.optimize(q); err != nil {
			return nil, err
		}
		conf.Log.Debugf("rule %s applied in %v", rule.name(), timex.GetNow().Sub(start))
		if debug {
			conf.Log.Infof("plan after rule %s:\n%s", rule.name(), q)
		}
	}
	return q, nil
}
