package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	reszerrors "github.com/alexisbeaulieu97/reszplay/pkg/errors"
)

// convertValidationError normalizes validator errors into reszplay validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return reszerrors.NewValidationError(field, msg, err)
	}

	return reszerrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving
// the YAML path (e.g. "min.width", "handles[1]").
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}
