package pdf

import "os"

const (
	// DefaultAngle is the rotation applied when none is given
	DefaultAngle = 90

	// PDFExtension is the suffix every input file must carry
	PDFExtension = ".pdf"

	// OutputFileMode is the permission of written documents
	OutputFileMode os.FileMode = 0644

	// AllPages selects every page of a document when passed as a page specification to Rotate
	AllPages = "all"
)

// ValidAngles lists the clockwise rotations Rotate accepts.
var ValidAngles = []int{90, 180, 270}
