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

package main

import (
	"fmt"

	"github.com/gridplan/gridplan/internal/conf"
	"github.com/gridplan/gridplan/internal/planner"
)

func main() {
	conf.InitLogger()
	query := planner.New(
		planner.Step{planner.Name("a"), planner.Name("b"), planner.Name("c")},
		planner.Step{planner.Map, planner.Map, planner.Map},
		planner.Step{planner.None, planner.None, planner.Filter},
		planner.Step{planner.Join("d"), planner.None, planner.None, planner.Name("d"), planner.Name("e")},
		planner.Step{planner.Group(0), planner.None, planner.None, planner.None, planner.None},
		planner.Step{planner.Empty, planner.Select, planner.Empty, planner.Select, planner.Empty},
	)
	optimized, err := query.Optimize(nil)
	if err != nil {
		conf.Log.Fatal(err)
	}
	fmt.Printf("-> Query: \n%s\n", query)
	fmt.Printf("-> Optimized: \n%s\n", optimized)
}
