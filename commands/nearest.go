package commands

import (
	"fmt"

	"roved/store"
)

const NearestCommand = "NEAREST"

func RegisterNearestCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     NearestCommand,
		Validate: validateNearest(),
		Execute:  executeNearest(),
	})
}

func validateNearest() ValidationHook {
	return func(args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("expected 2 coordinates, got %d arguments", len(args))
		}
		for _, tok := range args {
			if _, err := parseCoord(tok); err != nil {
				return err
			}
		}
		return nil
	}
}

func executeNearest() ExecutionHook {
	return func(args []string, st store.Store) (string, error) {
		lat, err := parseCoord(args[0])
		if err != nil {
			return "", err
		}
		lon, err := parseCoord(args[1])
		if err != nil {
			return "", err
		}
		v, c, err := st.Nearest(lat, lon)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d %d %d", v, c.Lat, c.Lon), nil
	}
}
