// Package naming identifies portal nodes in a scene by their name.
//
// A portal node is named "portal_" followed by the name of the room it leads
// to. Scene editors that refuse duplicate names can append a '*' and any
// suffix, so "portal_kitchen*2" is a second portal leading to "kitchen".
package naming

import "strings"

// PortalPrefix starts the name of every portal node
const PortalPrefix = "portal_"

// suffixSeparator ends the meaningful part of a name
const suffixSeparator = '*'

// HasPrefix reports whether name starts with prefix.
func HasPrefix(name, prefix string) bool {
	return strings.HasPrefix(name, prefix)
}

// After returns what follows prefix in name, cut at the first '*'.
// name is expected to start with prefix.
func After(name, prefix string) string {
	if len(name) < len(prefix) {
		return ""
	}

	rest := name[len(prefix):]
	if i := strings.IndexByte(rest, suffixSeparator); i >= 0 {
		rest = rest[:i]
	}

	return rest
}

// IsPortal reports whether name designates a portal node.
func IsPortal(name string) bool {
	return HasPrefix(name, PortalPrefix)
}

// Target returns the name of the room a portal node leads to,
// or "" if name is not a portal name.
func Target(name string) string {
	if !IsPortal(name) {
		return ""
	}

	return After(name, PortalPrefix)
}
