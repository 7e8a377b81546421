package env

import (
	"errors"
	"fmt"
	"os"
	"strings"

	pkgstrings "github.com/klwxsrx/project-manager/pkg/strings"
)

var ErrNotFound = errors.New("env not found")

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}

	return val
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	var result T
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return result, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	result, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return result, fmt.Errorf("env %s has invalid value: %w", key, err)
	}

	return result, nil
}

func ParseOptional[T pkgstrings.SupportedPointerParsingTypes](key string) (T, error) {
	var result T
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return result, nil
	}

	result, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return result, fmt.Errorf("env %s has invalid value: %w", key, err)
	}

	return result, nil
}

func ParseList[T pkgstrings.SupportedValueParsingTypes](key, delimiter string) ([]T, error) {
	str, ok := os.LookupEnv(key)
	if !ok || str == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	items := strings.Split(str, delimiter)
	result := make([]T, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		v, err := pkgstrings.ParseTypedValue[T](item)
		if err != nil {
			return nil, fmt.Errorf("env %s has invalid list value: %w", key, err)
		}
		result = append(result, v)
	}

	return result, nil
}
