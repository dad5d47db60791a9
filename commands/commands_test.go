package commands

import (
	"errors"
	"testing"

	"roved/graph"
	"roved/store"
)

// TestRegisterCommands tests that every command lands in the registry.
func TestRegisterCommands(t *testing.T) {
	registry := NewRegistry()
	RegisterCommands(registry)

	for _, name := range []string{
		PingCommand, RouteCommand, NearestCommand, HopsCommand,
		IsPathCommand, CompressCommand, InfoCommand,
	} {
		if _, err := registry.Retrieve(name); err != nil {
			t.Errorf("command %s not registered: %v", name, err)
		}
	}
}

// TestRegistryDuplicate tests that re-adding a command fails.
func TestRegistryDuplicate(t *testing.T) {
	registry := NewRegistry()
	RegisterPingCommand(registry)

	err := registry.Add(&CommandRegistration{Name: PingCommand})
	if err == nil {
		t.Error("expected error adding duplicate command")
	}
}

// TestRetrieveCaseInsensitive tests lower-case lookups.
func TestRetrieveCaseInsensitive(t *testing.T) {
	registry := NewRegistry()
	RegisterRouteCommand(registry)

	if _, err := registry.Retrieve("route"); err != nil {
		t.Errorf("lower-case lookup failed: %v", err)
	}
}

// TestExecutePing tests the executePing function.
func TestExecutePing(t *testing.T) {
	result, err := executePing()(nil, &MockStore{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "PONG" {
		t.Errorf("expected PONG, got %q", result)
	}
}

// TestValidateNearest tests the validateNearest function.
func TestValidateNearest(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		expectErr bool
	}{
		{"two integers", []string{"5365486", "-11333915"}, false},
		{"one arg", []string{"5365486"}, true},
		{"three args", []string{"1", "2", "3"}, true},
		{"non-integer", []string{"a", "2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateNearest()(tt.args)
			if (err != nil) != tt.expectErr {
				t.Errorf("expected error: %v, got: %v", tt.expectErr, err)
			}
		})
	}
}

// TestExecuteNearest tests the executeNearest function.
func TestExecuteNearest(t *testing.T) {
	st := &MockStore{
		nearestVertex: 276281417,
		nearestCoord:  store.Coord{Lat: 5361837, Lon: -11360299},
	}

	result, err := executeNearest()([]string{"5361840", "-11360300"}, st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "276281417 5361837 -11360299"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

// TestExecuteNearestEmptyStore tests error propagation from the store.
func TestExecuteNearestEmptyStore(t *testing.T) {
	st := &MockStore{nearestErr: store.ErrEmptyIndex}

	_, err := executeNearest()([]string{"0", "0"}, st)
	if !errors.Is(err, store.ErrEmptyIndex) {
		t.Errorf("expected ErrEmptyIndex, got %v", err)
	}
}

// TestExecuteHops tests the executeHops function.
func TestExecuteHops(t *testing.T) {
	tests := []struct {
		name        string
		store       *MockStore
		expectedMsg string
	}{
		{"path found", &MockStore{hopRoute: []graph.Vertex{1, 6, 7}}, "3\n1\n6\n7"},
		{"no path", &MockStore{}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := executeHops()([]string{"1", "7"}, tt.store)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, result)
			}
		})
	}
}

// TestValidateIsPath tests that the empty sequence is rejected before
// execution.
func TestValidateIsPath(t *testing.T) {
	if err := validateIsPath()([]string{}); err == nil {
		t.Error("expected error for empty sequence")
	}
	if err := validateIsPath()([]string{"1"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validateIsPath()([]string{"1", "x"}); err == nil {
		t.Error("expected error for non-integer vertex id")
	}
}

// TestExecuteIsPath tests the executeIsPath function.
func TestExecuteIsPath(t *testing.T) {
	result, err := executeIsPath()([]string{"1", "2"}, &MockStore{isPath: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "1" {
		t.Errorf("expected 1, got %q", result)
	}

	result, err = executeIsPath()([]string{"1", "2"}, &MockStore{isPath: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "0" {
		t.Errorf("expected 0, got %q", result)
	}
}

// TestExecuteCompress tests the executeCompress function.
func TestExecuteCompress(t *testing.T) {
	result, err := executeCompress()([]string{"1", "3", "0", "1", "6", "4", "8", "6", "2"}, &MockStore{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "1 6 2" {
		t.Errorf("expected %q, got %q", "1 6 2", result)
	}
}

// TestExecuteInfo tests the executeInfo function.
func TestExecuteInfo(t *testing.T) {
	st := &MockStore{vertexCount: 5, edgeCount: 8, source: "roads.txt"}

	result, err := executeInfo()(nil, st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "vertices 5\nedges 8\ngraph roads.txt"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}
