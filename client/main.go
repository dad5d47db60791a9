package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/c-bata/go-prompt"
)

const DefaultPort = "7997"

func connectToRoved(address string) (net.Conn, error) {
	return net.Dial("tcp", address)
}

// Commands go over the wire inline: the command word and its
// arguments separated by single spaces, newline terminated.
func sendCommand(conn net.Conn, command string) error {
	_, err := conn.Write([]byte(strings.TrimSpace(command) + "\n"))
	return err
}

// readReply parses the single RESP value the server sends back.
func readReply(reader *bufio.Reader) (string, error) {
	header, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	header = strings.TrimRight(header, "\r\n")
	if header == "" {
		return "", fmt.Errorf("empty reply")
	}

	switch header[0] {
	case '+':
		return header[1:], nil
	case '-':
		return "", fmt.Errorf("%s", header[1:])
	case '$':
		size, err := strconv.Atoi(header[1:])
		if err != nil || size < 0 {
			return "", fmt.Errorf("bad bulk length %q", header[1:])
		}
		buf := make([]byte, size+2) // payload plus trailing CRLF
		if _, err := io.ReadFull(reader, buf); err != nil {
			return "", err
		}
		return string(buf[:size]), nil
	default:
		return "", fmt.Errorf("unexpected reply header %q", header)
	}
}

func completer(d prompt.Document) []prompt.Suggest {
	input := d.TextBeforeCursor()
	firstWord := strings.Split(input, " ")[0]
	if firstWord == "" {
		return []prompt.Suggest{}
	}
	s := []prompt.Suggest{
		{Text: "COMPRESS", Description: "COMPRESS v1 v2 ... - Remove revisit cycles from a walk of vertex ids"},
		{Text: "HOPS", Description: "HOPS from to - Minimum-hop path between two vertex ids"},
		{Text: "INFO", Description: "INFO - Vertex and edge counts and the loaded graph file"},
		{Text: "ISPATH", Description: "ISPATH v1 v2 ... - 1 if every consecutive pair is an edge, else 0"},
		{Text: "NEAREST", Description: "NEAREST lat lon - Vertex closest to a coordinate (1e-5 degree units)"},
		{Text: "PING", Description: "PING - Replies with a PONG"},
		{Text: "ROUTE", Description: "ROUTE lat1 lon1 lat2 lon2 [COSTS] - Least-cost path between two coordinates"},
	}
	return prompt.FilterHasPrefix(s, strings.ToUpper(firstWord), true)
}

func main() {
	host := flag.String("host", "localhost", "roved server host")
	port := flag.String("port", DefaultPort, "roved server port")
	flag.Parse()

	address := net.JoinHostPort(*host, *port)
	conn, err := connectToRoved(address)
	if err != nil {
		fmt.Println("Error connecting to roved:", err)
		os.Exit(1)
	}
	defer conn.Close()
	reader := bufio.NewReader(conn)

	fmt.Println("Connected to roved. Type commands and press Enter.")
	fmt.Println("Please use `Ctrl-D` to exit this program.")
	defer fmt.Println("Bye!")
	p := prompt.New(
		func(cmd string) {
			if strings.TrimSpace(cmd) == "" {
				return
			}
			startTime := time.Now()
			if err := sendCommand(conn, cmd); err != nil {
				fmt.Println("Error sending command:", err)
				return
			}
			response, rerr := readReply(reader)
			if rerr != nil {
				fmt.Println("Error:", rerr)
				return
			}
			fmt.Println(response)
			fmt.Printf("Time taken: %v\n", time.Since(startTime))
		},
		completer,
		prompt.OptionPrefix(">>> "),
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionSuggestionTextColor(prompt.Yellow),
		prompt.OptionSuggestionBGColor(prompt.Black),
		prompt.OptionDescriptionBGColor(prompt.Black),
		prompt.OptionDescriptionTextColor(prompt.Yellow),
		prompt.OptionScrollbarBGColor(prompt.Black),
	)
	p.Run()
}
