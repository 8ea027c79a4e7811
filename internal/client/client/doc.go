// Package client talks to the passkeeper gRPC API on behalf of the CLI.
//
// Client is the transport-agnostic contract; GRPCClient implements it over
// a grpc.ClientConn, attaching the session token to authenticated calls
// through a unary interceptor and mapping status codes to the sentinel
// errors ErrUnavailable, ErrUnauthorized, ErrAlreadyExists and
// ErrInvalidInput.
package client
