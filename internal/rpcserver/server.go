package rpcserver

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/kgcore/kgcore/internal/kgindex"
	"github.com/kgcore/kgcore/pkg/utils"
)

// Server wraps a grpc.Server bound to a single frozen index and the
// hand-written JSON codec, so google.golang.org/grpc has a concrete home
// without a protoc build step in this repo.
type Server struct {
	grpcServer *grpc.Server
	addr       string
	logger     utils.Logger
}

// NewServer builds a Server that answers Query RPCs against idx. idx is
// never mutated while the server runs.
func NewServer(addr string, idx *kgindex.Index, logger utils.Logger) *Server {
	if logger == nil {
		logger = utils.NewDefaultLogger(utils.LevelInfo, nil)
	}

	grpcServer := grpc.NewServer(grpc.ForceServerCodec(jsonCodec{}))
	grpcServer.RegisterService(&serviceDesc, NewQueryServer(idx))

	return &Server{
		grpcServer: grpcServer,
		addr:       addr,
		logger:     logger,
	}
}

// ListenAndServe blocks until the listener fails or Stop is called.
func (s *Server) ListenAndServe() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("rpcserver: listen %s: %w", s.addr, err)
	}

	s.logger.Info("RPC query server listening on %s (codec: json)", s.addr)
	if err := s.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("rpcserver: serve: %w", err)
	}
	return nil
}

// Stop gracefully stops the server.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}
