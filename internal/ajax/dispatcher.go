// internal/ajax/dispatcher.go
//
// AJAX method dispatcher.
//
// Context
//   Every POST request lands here.  The dispatcher checks the request is not
//   empty, that it names a method, and then looks the method up in its
//   registry.  The only method the front controller registers is
//   "formSubmit", which validates the contact form.
//
//   Handle always produces a value the HTTP layer encodes as JSON: either a
//   method's result or one of the *Error values from errors.go.

package ajax

import (
	"context"
	"fmt"

	"github.com/yanizio/landing/internal/form"
	"github.com/yanizio/landing/internal/logger"
	"github.com/yanizio/landing/internal/metrics"
)

// Method handles one AJAX method.  The returned value becomes the body.
type Method func(ctx context.Context, data []form.Field) any

// Dispatcher maps method names to handlers.  Register everything before the
// server starts; Handle only reads the map.
type Dispatcher struct {
	methods map[string]Method
}

// New returns a Dispatcher with formSubmit registered.
func New() *Dispatcher {
	d := &Dispatcher{methods: make(map[string]Method)}
	d.Register("formSubmit", FormSubmit)
	return d
}

// Register binds name to m, replacing any previous binding.
func (d *Dispatcher) Register(name string, m Method) {
	if m == nil {
		panic(fmt.Sprintf("ajax: nil method %q", name))
	}
	d.methods[name] = m
}

// Handle dispatches req.
func (d *Dispatcher) Handle(ctx context.Context, req Request) any {
	log := logger.FromContext(ctx)

	switch {
	case req.Empty:
		metrics.AjaxCallsTotal.WithLabelValues("", "error").Inc()
		log.Debugw("ajax empty request")
		return ErrEmptyRequest
	case !req.HasMethod:
		metrics.AjaxCallsTotal.WithLabelValues("", "error").Inc()
		log.Debugw("ajax request without method")
		return ErrUnspecifiedMethod
	}

	m, ok := d.methods[req.Method]
	if !ok {
		metrics.AjaxCallsTotal.WithLabelValues("unknown", "error").Inc()
		log.Infow("ajax unknown method", "method", req.Method)
		return ErrUnknownMethod
	}
	return m(ctx, req.Data)
}

// FormSubmit validates the contact form.
func FormSubmit(ctx context.Context, data []form.Field) any {
	res := form.Validate(data)

	outcome := "ok"
	if !res.Result {
		outcome = "invalid"
		for field := range res.Error {
			metrics.FieldErrorsTotal.WithLabelValues(field).Inc()
		}
	}
	metrics.AjaxCallsTotal.WithLabelValues("formSubmit", outcome).Inc()

	logger.FromContext(ctx).Infow("contact form submitted",
		"fields", len(data),
		"valid", res.Result,
		"errors", len(res.Error),
	)
	return res
}
