// Package server exposes the route store over TCP through a gnet
// event loop. One traffic event carries one request; replies are
// RESP-framed. The store is read-only after startup, so the handlers
// never take a lock.
package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/panjf2000/gnet/v2"

	"roved/commands"
	"roved/resp"
	"roved/store"
)

type Server struct {
	gnet.BuiltinEventEngine

	Port int

	registry commands.CommandRegistry
	store    store.Store
	log      hclog.Logger
}

func New(port int, st store.Store, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	registry := commands.NewRegistry()
	commands.RegisterCommands(registry)
	return &Server{
		Port:     port,
		registry: registry,
		store:    st,
		log:      logger,
	}
}

func (s *Server) protoAddr() string {
	return fmt.Sprintf("tcp://:%d", s.Port)
}

// ListenAndServe runs the event loop until Shutdown or a fatal error.
// The loop stays single-threaded; queries never mutate the store.
func (s *Server) ListenAndServe() error {
	return gnet.Run(s, s.protoAddr(), gnet.WithMulticore(false))
}

// Shutdown stops the event loop and closes all connections.
func (s *Server) Shutdown(ctx context.Context) error {
	return gnet.Stop(ctx, s.protoAddr())
}

func (s *Server) OnBoot(_ gnet.Engine) gnet.Action {
	s.log.Info("server started", "port", s.Port,
		"vertices", s.store.VertexCount(), "edges", s.store.EdgeCount())
	return gnet.None
}

func (s *Server) OnTraffic(c gnet.Conn) gnet.Action {
	data, _ := c.Next(-1)
	inp := strings.TrimRight(string(data), "\r\n")
	if inp == "" {
		s.respondErr(c, fmt.Errorf("empty request"))
		return gnet.None
	}

	command, args, err := resp.DecodeRequest(inp)
	if err != nil {
		s.respondErr(c, err)
		return gnet.None
	}

	reqID := uuid.NewString()
	s.log.Debug("request", "id", reqID, "command", command, "args", args,
		"remote", c.RemoteAddr())

	reg, err := s.registry.Retrieve(command)
	if err != nil {
		s.respondErr(c, err)
		return gnet.None
	}
	if err := reg.Validate(args); err != nil {
		// Malformed request; reject and keep serving.
		s.log.Debug("rejected", "id", reqID, "error", err)
		s.respondErr(c, err)
		return gnet.None
	}

	res, err := reg.Execute(args, s.store)
	if err != nil {
		s.log.Error("command failed", "id", reqID, "command", command, "error", err)
		s.respondErr(c, err)
		return gnet.None
	}

	if _, errConn := c.Write([]byte(resp.EncodeBulkString(res))); errConn != nil {
		s.log.Error("write failed", "id", reqID, "error", errConn)
	}
	return gnet.None
}

func (s *Server) OnClose(c gnet.Conn, err error) gnet.Action {
	if err != nil {
		s.log.Debug("connection closed", "remote", c.RemoteAddr(), "error", err)
	}
	return gnet.None
}

func (s *Server) respondErr(c gnet.Conn, err error) {
	if _, errConn := c.Write([]byte(resp.EncodeError("ERR " + err.Error()))); errConn != nil {
		s.log.Error("write failed", "error", errConn)
	}
}
