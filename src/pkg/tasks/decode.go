// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024-Present the rnr Authors

package tasks

import (
	"errors"
	"fmt"

	goyaml "github.com/goccy/go-yaml"
	"github.com/rnr-dev/rnr/src/types"
)

func unmarshal(data []byte, nodes *map[string]taskNode) error {
	return goyaml.Unmarshal(data, nodes)
}

// taskNode decodes either a command string or a task mapping.
type taskNode struct {
	def types.TaskDef
}

// UnmarshalYAML implements goyaml.InterfaceUnmarshaler.
func (n *taskNode) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch raw.(type) {
	case string:
		var cmd string
		if err := unmarshal(&cmd); err != nil {
			return err
		}
		n.def = types.Shorthand(cmd)
		return nil
	case map[string]any, map[any]any:
		var spec types.TaskSpec
		if err := unmarshal(&spec); err != nil {
			return err
		}
		if err := checkSteps(spec.Steps); err != nil {
			return err
		}
		n.def = spec.Def()
		return nil
	case nil:
		return errors.New("task definition is empty")
	default:
		return fmt.Errorf("task must be a command string or a mapping, got %v", raw)
	}
}

func checkSteps(steps []types.StepSpec) error {
	for i, step := range steps {
		if step.IsParallel() && step.HasSimpleFields() {
			return fmt.Errorf("step %d: parallel cannot be combined with dir, cmd or task", i+1)
		}
	}
	return nil
}
