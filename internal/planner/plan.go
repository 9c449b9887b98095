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
)

// Plan is an ordered sequence of steps over a jagged matrix of actions. A
// plan value is built once by the caller; Optimize never rewrites its
// receiver, it works on a deep copy.
type Plan struct {
	steps []Step
}

func New(steps ...Step) *Plan {
	return &Plan{steps: steps}
}

// Width is the number of columns currently active, defined by the last step.
// Earlier, narrower steps are padded when read as columns.
func (p *Plan) Width() int {
	if len(p.steps) == 0 {
		return 0
	}
	return len(p.steps[len(p.steps)-1])
}

// Col materializes the column at the given position, substituting Empty for
// rows that are too short to reach it.
func (p *Plan) Col(index int) Column {
	col := make(Column, 0, len(p.steps))
	for _, step := range p.steps {
		if index < len(step) {
			col = append(col, step[index])
		} else {
			col = append(col, Empty)
		}
	}
	return col
}

func (p *Plan) Cols() []Column {
	cols := make([]Column, 0, p.Width())
	for i := 0; i < p.Width(); i++ {
		cols = append(cols, p.Col(i))
	}
	return cols
}

// removeCol drops position index from every step long enough to have it.
// Steps already shorter than index+1 do not have that column and are left
// untouched.
func (p *Plan) removeCol(index int) {
	for i, step := range p.steps {
		if index < len(step) {
			p.steps[i] = append(step[:index], step[index+1:]...)
		}
	}
}

// clone deep copies the plan, steps and actions included, so that the copy
// never aliases the receiver.
func (p *Plan) clone() *Plan {
	steps := make([]Step, len(p.steps))
	for i, step := range p.steps {
		steps[i] = make(Step, len(step))
		copy(steps[i], step)
	}
	return &Plan{steps: steps}
}

// String renders one line per step, each action left-justified in a fixed
// width cell. Inspection only, the text is never parsed back.
func (p *Plan) String() string {
	var sb strings.Builder
	for _, step := range p.steps {
		for _, a := range step {
			fmt.Fprintf(&sb, "%-11v", a)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
