// Package catalogpb holds the generated messages and gRPC stubs of the catalog service.
package catalogpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative catalog.proto
