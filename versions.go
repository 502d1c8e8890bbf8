// Package midtransclient provides version information for the SDK and the
// gateway API generations it targets.
package midtransclient

const (
	// Version is the current version of midtrans-client-go
	Version = "1.2.0"

	// CoreAPIVersion is the Core API generation this library targets
	CoreAPIVersion = "v2"

	// SnapAPIVersion is the Snap API generation this library targets
	SnapAPIVersion = "v1"

	// SnapBIVersion is the SNAP open-banking specification version this
	// library implements for the Snap BI endpoints
	SnapBIVersion = "v1.0"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	SDKVersion     string
	CoreAPIVersion string
	SnapAPIVersion string
	SnapBIVersion  string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		SDKVersion:     Version,
		CoreAPIVersion: CoreAPIVersion,
		SnapAPIVersion: SnapAPIVersion,
		SnapBIVersion:  SnapBIVersion,
	}
}
