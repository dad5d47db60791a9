package commands

import (
	"fmt"
	"strconv"
	"strings"

	"roved/store"
)

const RouteCommand = "ROUTE"

// costsModifier switches ROUTE from Euclidean pricing to the explicit
// costs loaded from the graph file.
const costsModifier = "COSTS"

func RegisterRouteCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     RouteCommand,
		Validate: validateRoute(),
		Execute:  executeRoute(),
	})
}

func validateRoute() ValidationHook {
	return func(args []string) error {
		if len(args) != 4 && len(args) != 5 {
			return fmt.Errorf("expected 4 coordinates, got %d arguments", len(args))
		}
		for _, tok := range args[:4] {
			if _, err := parseCoord(tok); err != nil {
				return err
			}
		}
		if len(args) == 5 && strings.ToUpper(args[4]) != costsModifier {
			return fmt.Errorf("unknown modifier %q", args[4])
		}
		return nil
	}
}

// executeRoute renders the path as the point count followed by one
// "lat lon" line per vertex, in travel order. No route renders as a
// bare 0.
func executeRoute() ExecutionHook {
	return func(args []string, st store.Store) (string, error) {
		coords := make([]int32, 4)
		for i, tok := range args[:4] {
			c, err := parseCoord(tok)
			if err != nil {
				return "", err
			}
			coords[i] = c
		}
		tableCosts := len(args) == 5

		path, err := st.Route(coords[0], coords[1], coords[2], coords[3], tableCosts)
		if err != nil {
			return "", err
		}

		var b strings.Builder
		b.WriteString(strconv.Itoa(len(path)))
		for _, c := range path {
			b.WriteString(fmt.Sprintf("\n%d %d", c.Lat, c.Lon))
		}
		return b.String(), nil
	}
}
