package yangvalidator

// Version is the library version.
const Version = "0.3.0"

// YANGVersion represents a YANG language version.
type YANGVersion string

// Supported YANG language versions.
const (
	// YANG10 is YANG version 1 (RFC 6020).
	YANG10 YANGVersion = "1"
	// YANG11 is YANG version 1.1 (RFC 7950).
	YANG11 YANGVersion = "1.1"
)

// String returns the version string.
func (v YANGVersion) String() string {
	return string(v)
}

// IsValid returns true if this is a supported YANG version.
func (v YANGVersion) IsValid() bool {
	switch v {
	case YANG10, YANG11:
		return true
	default:
		return false
	}
}
