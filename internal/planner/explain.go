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
	"fmt"
	"strings"

	"github.com/gridplan/gridplan/pkg/errorx"
)

// ExplainFromPlan builds a one-line-per-step description of the plan for
// inspection, in the form {"op":"Step_0","info":"..."}.
func ExplainFromPlan(p *Plan) (string, error) {
	if p == nil {
		return "", errorx.NewPlanError("cannot explain a nil plan")
	}
	rows := make([]string, 0, len(p.steps))
	for i, step := range p.steps {
		infos := make([]string, 0, len(step))
		for _, a := range step {
			infos = append(infos, a.String())
		}
		rows = append(rows, fmt.Sprintf("{%q:%q,%q:%q}", "op", fmt.Sprintf("Step_%d", i), "info", strings.Join(infos, ", ")))
	}
	return strings.Join(rows, "\n"), nil
}
