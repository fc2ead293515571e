// Package safepath guards the file routes against directory traversal. A name
// is accepted only if it resolves to exactly one normal path component, so
// joining it under the served directory can never escape it.
package safepath

import "os"

// IsSafeSegment reports whether name is a single normal path component:
// not empty, not "." or "..", and free of path separators. It must be
// consulted before any filesystem access is made on behalf of a client.
func IsSafeSegment(name string) bool {
	switch name {
	case "", ".", "..":
		return false
	}

	for i := 0; i < len(name); i++ {
		if os.IsPathSeparator(name[i]) {
			return false
		}
	}

	return true
}
