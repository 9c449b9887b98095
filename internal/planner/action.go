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

import "fmt"

type ActionKind int

const (
	// ActionEmpty marks a hole: the column does not exist at this step.
	ActionEmpty ActionKind = iota
	// ActionNone reserves the slot without doing anything to the column.
	ActionNone
	ActionName
	ActionSelect
	ActionMap
	ActionFilter
	ActionGroup
	ActionJoin
)

// Action is one primitive operation occupying a single plan cell. The Ident
// and Index payloads are opaque to the rewrite rules, they are only carried
// along.
type Action struct {
	Kind  ActionKind
	Ident string
	Index int
}

var (
	Empty  = Action{Kind: ActionEmpty}
	None   = Action{Kind: ActionNone}
	Select = Action{Kind: ActionSelect}
	Map    = Action{Kind: ActionMap}
	Filter = Action{Kind: ActionFilter}
)

// Name introduces a named column.
func Name(ident string) Action {
	return Action{Kind: ActionName, Ident: ident}
}

// Group aggregates on the grouping key at the given index.
func Group(index int) Action {
	return Action{Kind: ActionGroup, Index: index}
}

// Join consumes the column against the named one.
func Join(ident string) Action {
	return Action{Kind: ActionJoin, Ident: ident}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionEmpty:
		return "Empty"
	case ActionNone:
		return "None"
	case ActionName:
		return fmt.Sprintf("Name(%q)", a.Ident)
	case ActionSelect:
		return "Select"
	case ActionMap:
		return "Map"
	case ActionFilter:
		return "Filter"
	case ActionGroup:
		return fmt.Sprintf("Group(%d)", a.Index)
	case ActionJoin:
		return fmt.Sprintf("Join(%q)", a.Ident)
	default:
		return fmt.Sprintf("Unknown(%d)", int(a.Kind))
	}
}
