package commands

import (
	"fmt"

	"roved/store"
)

const IsPathCommand = "ISPATH"

func RegisterIsPathCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     IsPathCommand,
		Validate: validateIsPath(),
		Execute:  executeIsPath(),
	})
}

func validateIsPath() ValidationHook {
	return func(args []string) error {
		// The empty sequence is rejected here so the core's empty-path
		// signal never reaches the wire as a server error.
		if len(args) == 0 {
			return fmt.Errorf("expected at least 1 vertex id, got none")
		}
		_, err := parseVertices(args)
		return err
	}
}

func executeIsPath() ExecutionHook {
	return func(args []string, st store.Store) (string, error) {
		vs, err := parseVertices(args)
		if err != nil {
			return "", err
		}
		ok, err := st.IsPath(vs)
		if err != nil {
			return "", err
		}
		if ok {
			return "1", nil
		}
		return "0", nil
	}
}
