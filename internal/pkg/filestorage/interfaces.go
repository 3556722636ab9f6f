package filestorage

import "mime/multipart"

// FileStorage defines the interface for storing uploaded and generated files.
// Implementations return an accessible URL/path for the stored file.
type FileStorage interface {
	// SaveUpload stores an uploaded file under the given subdirectory
	// (e.g. "resumes") and returns its accessible path.
	SaveUpload(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// SaveBytes stores raw content (e.g. a generated certificate PDF) under
	// the given subdirectory and filename and returns its accessible path.
	SaveBytes(content []byte, subPath, filename string) (string, error)

	// DeleteFile removes a previously stored file. Deleting a missing file is
	// not an error.
	DeleteFile(filePath string) error
}
