package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		method, path string
		want         Route
	}{
		{"GET", "/", Route{Kind: Root}},
		{"POST", "/", Route{Kind: Root}},
		{"DELETE", "/", Route{Kind: Root}},

		{"GET", "/echo/abc", Route{Kind: Echo, Arg: "abc"}},
		{"GET", "/echo/", Route{Kind: Echo, Arg: ""}},
		{"GET", "/echo/with/slashes", Route{Kind: Echo, Arg: "with/slashes"}},
		{"GET", "/echo/%20literal", Route{Kind: Echo, Arg: "%20literal"}},
		// no trailing slash means no echo route
		{"GET", "/echo", Route{Kind: NoRoute}},

		{"GET", "/user-agent", Route{Kind: UserAgent}},
		{"GET", "/user-agent/extra", Route{Kind: UserAgent}},
		{"GET", "/user-agent-suffix", Route{Kind: UserAgent}},

		{"GET", "/files/name.txt", Route{Kind: FileGet, Arg: "name.txt"}},
		{"POST", "/files/name.txt", Route{Kind: FilePost, Arg: "name.txt"}},
		{"PUT", "/files/name.txt", Route{Kind: NoRoute}},
		{"DELETE", "/files/name.txt", Route{Kind: NoRoute}},
		{"GET", "/files/../escape", Route{Kind: FileGet, Arg: "../escape"}},
		{"GET", "/files", Route{Kind: NoRoute}},

		{"GET", "/unknown", Route{Kind: NoRoute}},
		{"GET", "", Route{Kind: NoRoute}},
		{"GET", "/index.html", Route{Kind: NoRoute}},
	} {
		assert.Equal(t, tc.want, Classify(tc.method, tc.path), "%s %s", tc.method, tc.path)
	}
}
