// Package proto holds the wire definitions for the Ancora sync service.
// The Go stubs are generated from ancora.proto and are not checked in.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative ancora.proto
