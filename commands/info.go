package commands

import (
	"fmt"

	"roved/store"
)

const InfoCommand = "INFO"

func RegisterInfoCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     InfoCommand,
		Validate: validateInfo(),
		Execute:  executeInfo(),
	})
}

func validateInfo() ValidationHook {
	return func(args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("expected 0 arguments, got %d", len(args))
		}
		return nil
	}
}

func executeInfo() ExecutionHook {
	return func(args []string, st store.Store) (string, error) {
		return fmt.Sprintf("vertices %d\nedges %d\ngraph %s",
			st.VertexCount(), st.EdgeCount(), st.Source()), nil
	}
}
