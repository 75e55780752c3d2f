package reader

import "errors"

var (
	// ErrRootNotMap is returned when the document root is not a mapping.
	ErrRootNotMap = errors.New("reader: document root is not a map")
	// ErrUnsupportedVersion is returned when neither a supported "openapi"
	// nor a "swagger" version is present.
	ErrUnsupportedVersion = errors.New("reader: unsupported or missing spec version")
)
