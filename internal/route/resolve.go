// internal/route/resolve.go
//
// Path → (controller, action) resolution.
//
// The first path segment names the controller and the second names the
// action; anything deeper is ignored.  Missing segments fall back to the
// configured defaults, so “/” is Application/index and “/robots.txt” is
// robots.txt/index.  Segments are taken verbatim (case-sensitive).

package route

import "strings"

// Defaults are the names used when the path omits a segment.
type Defaults struct {
	Controller string
	Action     string
}

// Resolve splits path into a controller and action name.
func Resolve(path string, def Defaults) (controller, action string) {
	controller, action = def.Controller, def.Action

	segs := strings.SplitN(strings.Trim(path, "/"), "/", 3)
	if len(segs) > 0 && segs[0] != "" {
		controller = segs[0]
	}
	if len(segs) > 1 && segs[1] != "" {
		action = segs[1]
	}
	return controller, action
}
