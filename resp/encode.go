// Package resp implements the slice of the Redis serialization
// protocol the route server speaks: bulk strings, simple strings and
// errors on the way out, and RESP arrays or inline space-separated
// commands on the way in.
package resp

import "fmt"

// EncodeSimpleString encodes a RESP simple string.
func EncodeSimpleString(s string) string {
	return "+" + s + "\r\n"
}

// EncodeBulkString encodes a RESP bulk string. Payloads may contain
// newlines; the length prefix frames them.
func EncodeBulkString(s string) string {
	return fmt.Sprintf("$%d\r\n%s\r\n", len(s), s)
}

// EncodeError encodes a RESP error string.
func EncodeError(msg string) string {
	return "-" + msg + "\r\n"
}
