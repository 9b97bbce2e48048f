// internal/route/table.go
//
// Static controller/action routing table.
//
// Context
// -------
// The front controller resolves every page request to a (controller,
// action) pair and looks the pair up here.  The table is built once at
// startup from a list of Routes and never changes afterwards, so request
// goroutines read it without locking.
//
// Lookup is two-level and case-sensitive: controller first, then action.
// The two failure modes are reported with distinct sentinel errors so the
// HTTP layer can answer "controller not found" or "action not found".

package route

import (
	"errors"
	"fmt"
)

var (
	ErrControllerNotFound = errors.New("controller not found")
	ErrActionNotFound     = errors.New("action not found")
)

// Page is what an Action produces: a body and the media type to send it as.
type Page struct {
	ContentType string
	Body        string
}

// Action handles one (controller, action) pair.
type Action func(*Context) (Page, error)

// Route binds a handler to a controller and action name.
type Route struct {
	Controller string
	Action     string
	Handler    Action
}

// Table is the immutable lookup structure.  Construct with NewTable.
type Table struct {
	routes map[string]map[string]Action
}

// NewTable copies routes into a Table.  Registering the same pair twice, or
// a route without a handler, is an error.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{routes: make(map[string]map[string]Action)}
	for _, r := range routes {
		if r.Handler == nil {
			return nil, fmt.Errorf("route %s/%s: nil handler", r.Controller, r.Action)
		}
		actions, ok := t.routes[r.Controller]
		if !ok {
			actions = make(map[string]Action)
			t.routes[r.Controller] = actions
		}
		if _, dup := actions[r.Action]; dup {
			return nil, fmt.Errorf("route %s/%s: registered twice", r.Controller, r.Action)
		}
		actions[r.Action] = r.Handler
	}
	return t, nil
}

// Lookup returns the handler for controller/action.
func (t *Table) Lookup(controller, action string) (Action, error) {
	actions, ok := t.routes[controller]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrControllerNotFound, controller)
	}
	h, ok := actions[action]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %q", ErrActionNotFound, action, controller)
	}
	return h, nil
}

// Dispatch resolves controller/action and invokes the handler with rc.
// rc.Controller and rc.Action are set to the resolved pair first.
func (t *Table) Dispatch(controller, action string, rc *Context) (Page, error) {
	h, err := t.Lookup(controller, action)
	if err != nil {
		return Page{}, err
	}
	rc.Controller, rc.Action = controller, action
	return h(rc)
}

// Len reports the number of registered routes.
func (t *Table) Len() int {
	n := 0
	for _, actions := range t.routes {
		n += len(actions)
	}
	return n
}
