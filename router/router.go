// Package router classifies parsed requests into a small fixed set of routes
// and runs the matching handler.
package router

import "strings"

// Kind enumerates the routes this server knows about. Keeping it a tagged
// enum produced by a single classification function makes the dispatch
// exhaustive and trivially testable.
type Kind uint8

const (
	Root Kind = iota + 1
	Echo
	UserAgent
	FileGet
	FilePost
	NoRoute
)

// Route is a classified request target. Arg carries the literal echo suffix
// or the requested filename, depending on the kind, and stays empty
// otherwise.
type Route struct {
	Kind Kind
	Arg  string
}

const (
	echoPrefix = "/echo/"
	// deliberately a prefix, not an exact path: /user-agent-foo matches too
	userAgentPrefix = "/user-agent"
	filesPrefix     = "/files/"
)

// Classify maps a method and a raw, undecoded path onto exactly one route.
// The prefixes are checked in a fixed sequence and are mutually exclusive by
// construction, so at most one branch ever fires.
func Classify(method, path string) Route {
	switch {
	case path == "/":
		return Route{Kind: Root}
	case strings.HasPrefix(path, echoPrefix):
		return Route{Kind: Echo, Arg: path[len(echoPrefix):]}
	case strings.HasPrefix(path, userAgentPrefix):
		return Route{Kind: UserAgent}
	case strings.HasPrefix(path, filesPrefix):
		name := path[len(filesPrefix):]

		switch method {
		case "GET":
			return Route{Kind: FileGet, Arg: name}
		case "POST":
			return Route{Kind: FilePost, Arg: name}
		default:
			return Route{Kind: NoRoute}
		}
	default:
		return Route{Kind: NoRoute}
	}
}
