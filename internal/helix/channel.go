// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package helix

import (
	"fmt"

	"github.com/pdiddy/twitchy/pkg/types"
)

// FieldError reports a search result that lacks a required string field.
// Key is empty when the result itself is not an object.
type FieldError struct {
	Key    string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Key == "" {
		return "malformed record: " + e.Reason
	}
	return fmt.Sprintf("malformed record: field %q %s", e.Key, e.Reason)
}

// ToChannel maps one raw search result to a Channel. All four fields must be
// present and be strings; they are copied without trimming or case changes.
func ToChannel(raw any) (types.Channel, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return types.Channel{}, &FieldError{Reason: fmt.Sprintf("result is %s, not an object", jsonKind(raw))}
	}

	var (
		ch  types.Channel
		err error
	)
	if ch.Language, err = requiredString(obj, "broadcaster_language"); err != nil {
		return types.Channel{}, err
	}
	if ch.DisplayName, err = requiredString(obj, "display_name"); err != nil {
		return types.Channel{}, err
	}
	if ch.Title, err = requiredString(obj, "title"); err != nil {
		return types.Channel{}, err
	}
	if ch.CategoryID, err = requiredString(obj, "game_id"); err != nil {
		return types.Channel{}, err
	}
	return ch, nil
}

// requiredString returns obj[key] when it is a string.
func requiredString(obj map[string]any, key string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", &FieldError{Key: key, Reason: "missing"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Key: key, Reason: fmt.Sprintf("is %s, not a string", jsonKind(v))}
	}
	return s, nil
}

// jsonKind names the JSON type of a value decoded into any.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case float64:
		return "a number"
	case string:
		return "a string"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
