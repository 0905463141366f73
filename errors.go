package skooma

import "errors"

// ErrInvalidSchema is returned when a schema definition is malformed
// (nil rule map, empty column name). It is a configuration failure and
// surfaces from New, never from Validate.
var ErrInvalidSchema = errors.New("invalid schema definition")

// ErrSchemaNotFound is returned by schema stores when the named schema
// does not exist.
var ErrSchemaNotFound = errors.New("schema not found")

// ErrUnknownPredicate is returned when a named predicate has not been
// registered.
var ErrUnknownPredicate = errors.New("unknown predicate")
