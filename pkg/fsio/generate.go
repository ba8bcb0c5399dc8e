package fsio

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_file_io.go github.com/kylegrant/costar/pkg/fsio FileIO
