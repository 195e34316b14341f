// Package version records ndnping version information.
package version

// V is replaced via -ldflags -X.
var V string

// Get returns the version string.
func Get() string {
	if V == "" {
		return "development"
	}
	return V
}
