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
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gridplan/gridplan/internal/pkg/def"
)

const ConfFileName = "gridplan.yaml"

var Config *GridConf

type BasicConf struct {
	Debug      bool   `json:"debug" yaml:"debug"`
	ConsoleLog bool   `json:"consoleLog" yaml:"consoleLog"`
	FileLog    bool   `json:"fileLog" yaml:"fileLog"`
	LogLevel   string `json:"logLevel" yaml:"logLevel"`
}

// Validate the configuration and reset to the default value for invalid values.
func (bc *BasicConf) Validate() error {
	var errs error
	if bc.LogLevel == "" {
		bc.LogLevel = "info"
	}
	if _, err := logrus.ParseLevel(bc.LogLevel); err != nil {
		Log.Warnf("invalid basic.logLevel configuration %s, set to info", bc.LogLevel)
		errs = errors.Join(errs, errors.New("invalidLogLevel:logLevel must be a valid logrus level"))
		bc.LogLevel = "info"
	}
	return errs
}

type GridConf struct {
	Basic BasicConf      `json:"basic" yaml:"basic"`
	Rule  def.RuleOption `json:"rule" yaml:"rule"`
}

// InitConfFromPath loads the configuration document at cpath and applies the
// logging settings. Callers that have no configuration file, like the demo
// binary, simply never call it and run on defaults.
func InitConfFromPath(cpath string) error {
	gc := GridConf{}
	if err := LoadConfigFromPath(cpath, &gc); err != nil {
		return err
	}
	if err := gc.Basic.Validate(); err != nil {
		Log.Warn(err)
	}
	Config = &gc

	level, _ := logrus.ParseLevel(gc.Basic.LogLevel)
	Log.SetLevel(level)
	if gc.Basic.Debug {
		Log.SetLevel(logrus.DebugLevel)
	}
	if gc.Basic.FileLog {
		if err := initFileLog(gc.Basic.ConsoleLog); err != nil {
			Log.Infof("Failed to log to file, using default stderr.")
		}
	} else if gc.Basic.ConsoleLog {
		Log.SetOutput(os.Stdout)
	}
	return nil
}
