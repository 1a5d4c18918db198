package storage

import "io"

// ObjectStore is the contract the upload pipeline depends on. Upload may
// fail per call; PublicURL is assumed to succeed once the upload did.
type ObjectStore interface {
	Upload(key string, body io.Reader, contentType string) error
	PublicURL(key string) string
	Delete(key string) error
}
