package filestorage

import "mime/multipart"

// FileStorage defines the interface for the upload blob area.
type FileStorage interface {
	// SaveFile persists an uploaded file and returns the stored filename.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// List returns the names of every stored blob.
	List() ([]string, error)

	// Resolve maps a caller-supplied relative path to a full filesystem
	// path inside the storage root, rejecting traversal outside it.
	Resolve(relPath string) (string, error)
}
