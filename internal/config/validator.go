// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// `Load` calls validateStruct right after it unmarshals the merged Koanf
// tree.  Any failure aborts startup, so the binary never runs with a
// malformed listen address, an unknown log level, or an empty view dir.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// validateStruct returns a single error listing every failed field, or nil.
func validateStruct(c *Config) error {
	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
