package rpcserver

import (
	"context"

	"google.golang.org/grpc"

	"github.com/kgcore/kgcore/internal/kgindex"
)

// QueryRequest and QueryResponse are the JSON wire types for the Query RPC.
// They mirror pkg/model.QueryRequest/QueryResult but are kept local so the
// wire format doesn't change shape if the internal model does.
type QueryRequest struct {
	K int `json:"k"`
	G int `json:"g"`
}

type QueryResponse struct {
	Vertices       []uint32 `json:"vertices"`
	Size           int      `json:"size"`
	DurationMicros int64    `json:"duration_micros"`
}

// queryServer implements the single Query RPC against a frozen index.
type queryServer struct {
	index *kgindex.Index
}

// NewQueryServer returns a grpc.ServiceDesc handler bound to idx. idx is
// never mutated by the RPC.
func NewQueryServer(idx *kgindex.Index) *queryServer {
	return &queryServer{index: idx}
}

// Query resolves a single (k,g) lookup. It never returns an error for an
// out-of-range (k,g): per the query contract, that's an empty result, not
// a failure.
func (s *queryServer) Query(ctx context.Context, req *QueryRequest) (*QueryResponse, error) {
	set := s.index.Query(req.K, req.G)
	resp := &QueryResponse{}
	if set == nil {
		return resp, nil
	}

	slice := set.Slice()
	vertices := make([]uint32, len(slice))
	for i, v := range slice {
		vertices[i] = uint32(v)
	}
	resp.Vertices = vertices
	resp.Size = len(vertices)
	return resp, nil
}

// serviceDesc is the hand-written equivalent of a protoc-generated
// ServiceDesc for a service with one unary RPC.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: "kgcore.QueryService",
	HandlerType: (*queryServerIface)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Query",
			Handler:    queryHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "kgcore/query.proto",
}

// queryServerIface is the handler type grpc uses for method dispatch; it
// exists only so ServiceDesc.HandlerType has something to point at.
type queryServerIface interface {
	Query(context.Context, *QueryRequest) (*QueryResponse, error)
}

func queryHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(queryServerIface).Query(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/kgcore.QueryService/Query",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(queryServerIface).Query(ctx, req.(*QueryRequest))
	}
	return interceptor(ctx, in, info, handler)
}
