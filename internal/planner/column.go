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

// Column is a derived vertical slice of the plan at a fixed position, padded
// with Empty where a row is shorter than the position. It is a value computed
// on demand, it goes stale as soon as the plan is rewritten.
type Column []Action

// IsDead reports whether the column was introduced by a Name and later shows
// an Empty hole without having been consumed by a Filter or Join. The scan
// runs over the whole column: a later Empty can still mark the column dead,
// and both isUsed and isDead are never cleared once set.
func (c Column) IsDead() bool {
	var (
		isDead   bool
		isUsed   bool
		seenName bool
	)
	for _, a := range c {
		switch a.Kind {
		case ActionEmpty:
			if seenName && !isUsed {
				isDead = true
			}
		case ActionName:
			seenName = true
		case ActionFilter, ActionJoin:
			isUsed = true
		}
	}
	return isDead
}
