package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// Document is the flat form of a record as it is handed to a document store.
// Values are primitives, time.Time, nested Documents or slices of them.
type Document map[string]interface{}

// ErrMalformedData matches every MalformedDataError through errors.Is
var ErrMalformedData = errors.New("malformed document")

// MalformedDataError is returned when a stored document is missing a required
// field or carries a value of the wrong type
type MalformedDataError struct {
	// Entity is the kind of record being decoded (game, category, ...)
	Entity string

	// Field is the document key that failed
	Field string

	// Reason describes what was wrong with the field
	Reason string
}

// Error implements the error interface
func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("malformed %s document: field %q %s", e.Entity, e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrMalformedData) match any MalformedDataError
func (e *MalformedDataError) Is(target error) bool {
	return target == ErrMalformedData
}

func missing(entity, field string) error {
	return &MalformedDataError{Entity: entity, Field: field, Reason: "is required"}
}

func mistyped(entity, field string, v interface{}) error {
	return &MalformedDataError{Entity: entity, Field: field, Reason: fmt.Sprintf("has unexpected type %T", v)}
}

func requiredString(entity string, doc Document, key string) (string, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return "", missing(entity, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", mistyped(entity, key, v)
	}
	return s, nil
}

func optionalStringPtr(entity string, doc Document, key string) (*string, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch s := v.(type) {
	case string:
		return &s, nil
	case *string:
		if s == nil {
			return nil, nil
		}
		c := *s
		return &c, nil
	default:
		return nil, mistyped(entity, key, v)
	}
}

func optionalBool(entity string, doc Document, key string) (bool, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, mistyped(entity, key, v)
	}
	return b, nil
}

// requiredInt accepts the integer encodings different stores hand back:
// Go ints, integral float64 from encoding/json, and json.Number.
func requiredInt(entity string, doc Document, key string) (int, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return 0, missing(entity, key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, &MalformedDataError{Entity: entity, Field: key, Reason: "is not an integer"}
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, &MalformedDataError{Entity: entity, Field: key, Reason: "is not an integer"}
		}
		return int(i), nil
	default:
		return 0, mistyped(entity, key, v)
	}
}

func requiredTime(entity string, doc Document, key string) (time.Time, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return time.Time{}, missing(entity, key)
	}
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, &MalformedDataError{Entity: entity, Field: key, Reason: "is not an RFC3339 timestamp"}
		}
		return parsed, nil
	default:
		return time.Time{}, mistyped(entity, key, v)
	}
}

// nestedDocument converts a nested value to a Document. Values decoded from
// JSON arrive as map[string]interface{} rather than Document.
func nestedDocument(entity, key string, v interface{}) (Document, error) {
	switch d := v.(type) {
	case Document:
		return d, nil
	case map[string]interface{}:
		return Document(d), nil
	default:
		return nil, mistyped(entity, key, v)
	}
}

func optionalDocumentList(entity string, doc Document, key string) ([]Document, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch list := v.(type) {
	case []Document:
		return list, nil
	case []map[string]interface{}:
		out := make([]Document, 0, len(list))
		for _, item := range list {
			out = append(out, Document(item))
		}
		return out, nil
	case []interface{}:
		out := make([]Document, 0, len(list))
		for _, item := range list {
			d, err := nestedDocument(entity, key, item)
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		}
		return out, nil
	default:
		return nil, mistyped(entity, key, v)
	}
}
