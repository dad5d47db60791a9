package commands

import (
	"fmt"
	"strconv"
	"strings"

	"roved/store"
)

const CompressCommand = "COMPRESS"

func RegisterCompressCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     CompressCommand,
		Validate: validateCompress(),
		Execute:  executeCompress(),
	})
}

func validateCompress() ValidationHook {
	return func(args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("expected at least 1 vertex id, got none")
		}
		_, err := parseVertices(args)
		return err
	}
}

func executeCompress() ExecutionHook {
	return func(args []string, st store.Store) (string, error) {
		walk, err := parseVertices(args)
		if err != nil {
			return "", err
		}
		out := st.CompressWalk(walk)
		ids := make([]string, len(out))
		for i, v := range out {
			ids[i] = strconv.FormatInt(int64(v), 10)
		}
		return strings.Join(ids, " "), nil
	}
}
