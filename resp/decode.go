package resp

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeRequest parses one client request into a command name and its
// arguments. Requests framed as RESP arrays of bulk strings are
// decoded per the protocol; anything else is treated as an inline
// command, split on whitespace, which is the form serial and netcat
// clients send ("ROUTE 5365486 -11333915 5364728 -11335891").
func DecodeRequest(input string) (string, []string, error) {
	if strings.HasPrefix(input, "*") {
		return decodeArray(input)
	}
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("empty request")
	}
	return fields[0], fields[1:], nil
}

func decodeArray(input string) (string, []string, error) {
	lines := strings.Split(input, "\r\n")
	n, err := strconv.Atoi(strings.TrimPrefix(lines[0], "*"))
	if err != nil {
		return "", nil, fmt.Errorf("invalid array length: %v", err)
	}
	if n < 1 {
		return "", nil, fmt.Errorf("invalid request: array length must be at least 1")
	}

	args := make([]string, 0, n)
	i := 1
	for len(args) < n && i < len(lines) {
		if len(lines[i]) == 0 || lines[i][0] != '$' {
			return "", nil, fmt.Errorf("expected bulk string prefix '$', found: %s", lines[i])
		}
		size, err := strconv.Atoi(lines[i][1:])
		if err != nil || size < 0 {
			return "", nil, fmt.Errorf("invalid bulk string length: %s", lines[i])
		}
		if i+1 >= len(lines) || len(lines[i+1]) != size {
			return "", nil, fmt.Errorf("bulk string length mismatch")
		}
		args = append(args, lines[i+1])
		i += 2
	}
	if len(args) != n {
		return "", nil, fmt.Errorf("mismatch between declared and parsed array length")
	}
	return args[0], args[1:], nil
}
