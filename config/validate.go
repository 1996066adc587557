/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

// ErrInvalidConfig marks a config that failed validation.
var ErrInvalidConfig = errors.New("invalid config")

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// A scope marker is a selector line ending with its opening brace.
		_ = v.RegisterValidation("scope_marker", func(fl validator.FieldLevel) bool {
			marker := strings.TrimSpace(fl.Field().String())
			return len(marker) > 1 && strings.HasSuffix(marker, "{") && !strings.Contains(marker, "}")
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks field constraints, reporting every failing field.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: configuration is nil", ErrInvalidConfig)
	}

	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var errs error
	for _, fe := range fieldErrs {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, describe(fe)))
	}
	return errs
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	switch fe.Tag() {
	case "scope_marker":
		return fmt.Sprintf("%s %q must be a selector ending with '{'", field, fe.Value())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s %q must be one of: %s", field, fe.Value(), fe.Param())
	case "alpha":
		return fmt.Sprintf("%s %q must contain only letters", field, fe.Value())
	case "max":
		return fmt.Sprintf("%s %q is longer than %s", field, fe.Value(), fe.Param())
	case "gt", "lte":
		return fmt.Sprintf("%s %v is out of range", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
