package api

const (
	// DefaultFilePermissions for temp directory creation
	DefaultFilePermissions = 0755

	// MaxErrorLength caps error messages returned to clients
	MaxErrorLength = 200

	// multipart form field names
	fieldPDF   = "pdf"
	fieldPages = "pages"
	fieldAngle = "angle"
)
