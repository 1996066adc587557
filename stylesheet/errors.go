/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package stylesheet

import (
	"errors"
	"fmt"
)

// Sentinel errors for stylesheet parsing and resolution.
var (
	// ErrMalformedInput indicates a declaration or value that cannot be parsed.
	ErrMalformedInput = errors.New("malformed input")

	// ErrCyclicReference indicates a var() chain that revisits one of its own identifiers.
	ErrCyclicReference = errors.New("cyclic reference")
)

// DeclarationError reports a single declaration that was excluded from its table.
type DeclarationError struct {
	Theme Theme
	Line  int
	Text  string
	Err   error
}

func (e *DeclarationError) Error() string {
	return fmt.Sprintf("line %d (%s): %q: %v", e.Line, e.Theme, e.Text, e.Err)
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}
