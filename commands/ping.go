package commands

import (
	"fmt"

	"roved/store"
)

const PingCommand = "PING"

func RegisterPingCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     PingCommand,
		Validate: validatePing(),
		Execute:  executePing(),
	})
}

func validatePing() ValidationHook {
	return func(args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("expected 0 arguments, got %d", len(args))
		}
		return nil
	}
}

func executePing() ExecutionHook {
	return func(args []string, store store.Store) (string, error) {
		return "PONG", nil
	}
}
