package bcbioconf

import (
	"fmt"
	"strings"
)

// SchemaError reports the first structural violation found in a run
// configuration document. Field is the path of the offending value, e.g.
// "details[1].files".
type SchemaError struct {
	Field string
	Msg   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// ReferenceError reports input files named by a configuration that could not
// be found. Unlike schema checking, reference checking is batch: every
// missing path is collected before failing.
type ReferenceError struct {
	Missing []string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%d referenced file(s) not found: %s", len(e.Missing), strings.Join(e.Missing, ", "))
}
