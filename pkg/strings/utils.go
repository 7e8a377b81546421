package strings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type (
	SupportedValueParsingTypes interface {
		bool | int | uint | float64 | string | time.Time | time.Duration | uuid.UUID
	}

	SupportedPointerParsingTypes interface {
		*bool | *int | *uint | *float64 | *string | *time.Time | *time.Duration | *uuid.UUID
	}
)

func ParseTypedValue[T any](value string) (T, error) {
	var blank T
	var v any
	var err error
	switch any(blank).(type) {
	case bool, *bool:
		v, err = parsePtr(any(blank), value, strconv.ParseBool)
	case int, *int:
		v, err = parsePtr(any(blank), value, strconv.Atoi)
	case uint, *uint:
		v, err = parsePtr(any(blank), value, func(s string) (uint, error) {
			u, err := strconv.ParseUint(s, 10, 64)
			return uint(u), err
		})
	case float64, *float64:
		v, err = parsePtr(any(blank), value, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	case string, *string:
		v, err = parsePtr(any(blank), value, func(s string) (string, error) { return s, nil })
	case time.Time, *time.Time:
		v, err = parsePtr(any(blank), value, parseTime)
	case time.Duration, *time.Duration:
		v, err = parsePtr(any(blank), value, time.ParseDuration)
	case uuid.UUID, *uuid.UUID:
		v, err = parsePtr(any(blank), value, uuid.Parse)
	default:
		return blank, fmt.Errorf("unsupported value type %T", blank)
	}
	if err != nil {
		return blank, fmt.Errorf("convert to type %T: %w", blank, err)
	}

	return v.(T), nil
}

func parsePtr[V any](target any, value string, parse func(string) (V, error)) (any, error) {
	v, err := parse(value)
	if err != nil {
		return nil, err
	}

	if _, isPtr := target.(*V); isPtr {
		return &v, nil
	}
	return v, nil
}

func parseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	unixTime, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("RFC3339 or unix time expected: %w", err)
	}
	if unixTime < 0 {
		return time.Time{}, fmt.Errorf("got negative seconds value %d", unixTime)
	}

	return time.Unix(unixTime, 0), nil
}
