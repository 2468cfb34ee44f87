package canopy

import "errors"

var (
	// ErrEmptyPath is returned by mutating operations called with an
	// empty path. An empty path names the section itself, which is only
	// meaningful for whole-section reads.
	ErrEmptyPath = errors.New("empty path")

	// ErrSectionValue is returned when a section-kind value is passed to
	// Set. Sections enter the tree only through CreateSection.
	ErrSectionValue = errors.New("sections cannot be set directly, use CreateSection")
)
