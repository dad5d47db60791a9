// Load generator: fires concurrent ROUTE requests at a running roved
// server and reports throughput. Coordinates are sampled uniformly
// from a bounding box, integer 1e-5 degree units.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	addr := flag.String("addr", "localhost:7997", "roved server address")
	clients := flag.Int("clients", 4, "concurrent connections")
	requests := flag.Int("requests", 1000, "requests per connection")
	minLat := flag.Int("min-lat", 5340000, "bounding box: minimum latitude")
	maxLat := flag.Int("max-lat", 5370000, "bounding box: maximum latitude")
	minLon := flag.Int("min-lon", -11370000, "bounding box: minimum longitude")
	maxLon := flag.Int("max-lon", -11330000, "bounding box: maximum longitude")
	flag.Parse()

	start := time.Now()
	var eg errgroup.Group
	for i := 0; i < *clients; i++ {
		seed := int64(i)
		eg.Go(func() error {
			return runClient(*addr, *requests, seed,
				int32(*minLat), int32(*maxLat), int32(*minLon), int32(*maxLon))
		})
	}
	if err := eg.Wait(); err != nil {
		fmt.Println("benchmark failed:", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	total := *clients * *requests
	fmt.Printf("%d requests over %d connections in %v (%.0f req/s, %v avg)\n",
		total, *clients, elapsed,
		float64(total)/elapsed.Seconds(),
		elapsed/time.Duration(total),
	)
}

func runClient(addr string, requests int, seed int64, minLat, maxLat, minLon, maxLon int32) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()
	reader := bufio.NewReader(conn)
	rng := rand.New(rand.NewSource(seed))

	randCoord := func(lo, hi int32) int32 {
		return lo + rng.Int31n(hi-lo+1)
	}

	for i := 0; i < requests; i++ {
		req := fmt.Sprintf("ROUTE %d %d %d %d\n",
			randCoord(minLat, maxLat), randCoord(minLon, maxLon),
			randCoord(minLat, maxLat), randCoord(minLon, maxLon))
		if _, err := conn.Write([]byte(req)); err != nil {
			return err
		}
		if err := discardReply(reader); err != nil {
			return err
		}
	}
	return nil
}

// discardReply consumes one RESP value.
func discardReply(reader *bufio.Reader) error {
	header, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	header = strings.TrimRight(header, "\r\n")
	if header == "" {
		return fmt.Errorf("empty reply")
	}
	switch header[0] {
	case '+':
		return nil
	case '-':
		return fmt.Errorf("server error: %s", header[1:])
	case '$':
		size, err := strconv.Atoi(header[1:])
		if err != nil || size < 0 {
			return fmt.Errorf("bad bulk length %q", header[1:])
		}
		_, err = io.CopyN(io.Discard, reader, int64(size)+2)
		return err
	default:
		return fmt.Errorf("unexpected reply header %q", header)
	}
}
