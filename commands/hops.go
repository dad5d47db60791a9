package commands

import (
	"fmt"
	"strconv"
	"strings"

	"roved/store"
)

const HopsCommand = "HOPS"

func RegisterHopsCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     HopsCommand,
		Validate: validateHops(),
		Execute:  executeHops(),
	})
}

func validateHops() ValidationHook {
	return func(args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("expected 2 vertex ids, got %d arguments", len(args))
		}
		_, err := parseVertices(args)
		return err
	}
}

// executeHops renders the minimum-hop path as the point count
// followed by one vertex id per line. No route renders as a bare 0.
func executeHops() ExecutionHook {
	return func(args []string, st store.Store) (string, error) {
		vs, err := parseVertices(args)
		if err != nil {
			return "", err
		}
		path, err := st.HopRoute(vs[0], vs[1])
		if err != nil {
			return "", err
		}

		var b strings.Builder
		b.WriteString(strconv.Itoa(len(path)))
		for _, v := range path {
			b.WriteString(fmt.Sprintf("\n%d", v))
		}
		return b.String(), nil
	}
}
