package storage

import "io"

// ImageStorage stores event image binaries under opaque object keys.
type ImageStorage interface {
	Upload(key string, reader io.Reader) error
	Download(key string) ([]byte, error)
	Delete(key string) error
}
