// Package fsx abstracts file storage so services do not care whether files
// live on local disk or in an object store.
package fsx

import "context"

type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte, contentType string) error
}

type FileSystem interface {
	FileReader
	FileWriter
	DeleteFile(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
}
