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

package conf

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/gridplan/gridplan/pkg/errorx"
)

// LoadConfigFromPath reads the yaml document at p into c. The document is
// first decoded into a generic map so that unknown keys are tolerated, then
// mapped onto the target struct.
func LoadConfigFromPath(p string, c interface{}) error {
	b, err := os.ReadFile(p)
	if err != nil {
		return errorx.NewIOErr(fmt.Sprintf("cannot read config file %s: %v", p, err))
	}
	configMap := make(map[string]interface{})
	if err := yaml.Unmarshal(b, &configMap); err != nil {
		return errorx.NewConfKeyError(fmt.Sprintf("invalid config file %s: %v", p, err))
	}
	return mapstructure.Decode(configMap, c)
}
