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
	"github.com/gridplan/gridplan/internal/pkg/def"
)

type logicalOptRule interface {
	optimize(p *Plan) error
	name() string
}

// columnPruner removes dead columns. The columns are materialized once up
// front; removals shift the positions of later columns while the walk keeps
// indexing into the pre-materialized slice, so indices after a removed column
// refer to what was previously the next column.
type columnPruner struct{}

func (r *columnPruner) optimize(p *Plan) error {
	for i, col := range p.Cols() {
		if col.IsDead() {
			p.removeCol(i)
		}
	}
	return nil
}

func (r *columnPruner) name() string {
	return def.RuleColumnPruner
}

// filterHoist moves each Filter step as early as possible without crossing
// the nearest preceding Group step. The anchor is the hard wall: the most
// recent Group row, refined further down within the current segment when an
// intervening row is too narrow to host the filter column.
type filterHoist struct{}

func (r *filterHoist) optimize(p *Plan) error {
	anchor := 0
	for i := 0; i < len(p.steps); i++ {
		if p.steps[i].ContainsGroup() {
			anchor = i
		}
		if !p.steps[i].ContainsFilter() {
			continue
		}
		// A row with no filter cannot occur here; keep the anchor as is
		// rather than abort when it does.
		if rmf, ok := p.steps[i].RightmostFilterIndex(); ok {
			for j := i - 1; j >= anchor; j-- {
				if len(p.steps[j]) < rmf-1 {
					anchor = j
					break
				}
			}
		}
		// Raise the filter step to anchor+1 by adjacent swaps, shifting the
		// displaced steps one position later while keeping their order.
		for k := i; k >= anchor+2; k-- {
			p.steps[k], p.steps[k-1] = p.steps[k-1], p.steps[k]
		}
	}
	return nil
}

func (r *filterHoist) name() string {
	return def.RuleFilterHoist
}
