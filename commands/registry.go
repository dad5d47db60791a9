package commands

import (
	"fmt"
	"strings"

	"roved/store"
)

type CommandRegistry interface {
	Add(*CommandRegistration) error
	Retrieve(string) (*CommandRegistration, error)
}

type commandRegistry struct {
	commands map[string]*CommandRegistration
}

// ValidationHook rejects malformed arguments before the store is
// touched.
type ValidationHook func(args []string) error

// ExecutionHook runs a validated command against the store and
// returns the reply payload.
type ExecutionHook func(args []string, store store.Store) (string, error)

type CommandRegistration struct {
	Name     string
	Validate ValidationHook
	Execute  ExecutionHook
}

func NewRegistry() CommandRegistry {
	return &commandRegistry{
		commands: make(map[string]*CommandRegistration),
	}
}

func (c *commandRegistry) Add(reg *CommandRegistration) error {
	if _, ok := c.commands[reg.Name]; ok {
		return fmt.Errorf("command with name %s already present", reg.Name)
	}

	c.commands[reg.Name] = reg
	return nil
}

func (c *commandRegistry) Retrieve(name string) (*CommandRegistration, error) {
	reg, ok := c.commands[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("command with name %s not found in registry", name)
	}
	return reg, nil
}
