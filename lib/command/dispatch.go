// Copyright 2026 The Cardano Node Authors
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Dispatcher consumes one finished Command. Implementations own all
// execution: file access, cryptography, node networking. The parsing
// layer hands ownership of the Command across this boundary and does
// nothing further with it.
type Dispatcher interface {
	Dispatch(cmd Command) error
}

// DispatchFunc adapts a function to the Dispatcher interface.
type DispatchFunc func(cmd Command) error

// Dispatch calls f.
func (f DispatchFunc) Dispatch(cmd Command) error {
	return f(cmd)
}

// Describe returns a Dispatcher that renders the assembled command as
// YAML on w. This is the hand-off boundary made visible: what it
// prints is exactly what an executing dispatcher would receive.
func Describe(w io.Writer) Dispatcher {
	return DispatchFunc(func(cmd Command) error {
		document := struct {
			Command string `yaml:"command"`
			With    any    `yaml:"with,omitempty"`
		}{
			Command: cmd.Name(),
			With:    cmd,
		}
		encoded, err := yaml.Marshal(document)
		if err != nil {
			return fmt.Errorf("render %s command: %w", cmd.Name(), err)
		}
		_, err = w.Write(encoded)
		return err
	})
}
