// Package constants provides shared constants used throughout the skymatch
// codebase. This includes unit conversions, matching defaults, and file
// permissions that should be consistent across the application.
package constants

// Angular unit conversions
const (
	// ArcsecPerDegree is the number of arcseconds in one degree
	ArcsecPerDegree = 3600.0

	// DegreesPerArcsec converts arcseconds to degrees
	DegreesPerArcsec = 1.0 / ArcsecPerDegree
)

// Matching defaults
const (
	// DefaultRadiusArcsec is the default matching radius in arcseconds
	DefaultRadiusArcsec = 2.0

	// DefaultMode is the default matching mode for the CLI
	DefaultMode = "offset"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
