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

// Step is one row of the plan: the per-column actions applied at one stage.
// Rows are jagged, each row knows how many columns were active at its stage.
type Step []Action

func (s Step) ContainsFilter() bool {
	for _, a := range s {
		if a.Kind == ActionFilter {
			return true
		}
	}
	return false
}

func (s Step) ContainsGroup() bool {
	for _, a := range s {
		if a.Kind == ActionGroup {
			return true
		}
	}
	return false
}

// RightmostFilterIndex returns the index of the right-most Filter cell in the
// row, scanning from the last cell backwards. The second return value is
// false when the row holds no Filter.
func (s Step) RightmostFilterIndex() (int, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Kind == ActionFilter {
			return i, true
		}
	}
	return 0, false
}
