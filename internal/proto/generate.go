// Package proto holds the generated messages and service stubs of
// imagevault.v1.AssetService.
package proto

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/imagevault --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/imagevault imagevault/v1/assets.proto
