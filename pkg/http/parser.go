package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/project-manager/pkg/strings"
)

type (
	DataExtractor[T any] func(dataProvider) (T, error)

	supportedParsingTypes interface {
		strings.SupportedValueParsingTypes | strings.SupportedPointerParsingTypes
	}

	dataProvider interface {
		PathParameters() map[string]string
		QueryParameters() url.Values
		Header() http.Header
		Body() io.ReadCloser
	}

	requestDataProvider struct {
		*http.Request
	}
)

var ErrParsingError = errors.New("parsing error")

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(requestDataProvider{r})
}

func PathParameter[T supportedParsingTypes](param string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		paramValue, ok := p.PathParameters()[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: path parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](paramValue)
	}
}

func QueryParameter[T supportedParsingTypes](param string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		value := p.QueryParameters().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("%w: query parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](value)
	}
}

func QueryParameters[T supportedParsingTypes](param string) DataExtractor[[]T] {
	return func(p dataProvider) ([]T, error) {
		values, ok := p.QueryParameters()[param]
		if !ok {
			return nil, fmt.Errorf("%w: query parameter %s not found", ErrParsingError, param)
		}

		result := make([]T, 0, len(values))
		for _, value := range values {
			concreteValue, err := parseTypedValueImpl[T](value)
			if err != nil {
				return nil, err
			}
			result = append(result, concreteValue)
		}

		return result, nil
	}
}

func Header[T supportedParsingTypes](key string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		header := p.Header().Get(key)
		if header == "" {
			var result T
			return result, fmt.Errorf("%w: header with key %s not found", ErrParsingError, key)
		}

		return parseTypedValueImpl[T](header)
	}
}

func OptionalQueryParameter[T strings.SupportedValueParsingTypes](param string) DataExtractor[*T] {
	return func(p dataProvider) (*T, error) {
		value := p.QueryParameters().Get(param)
		if value == "" {
			return nil, nil
		}

		result, err := parseTypedValueImpl[T](value)
		if err != nil {
			return nil, fmt.Errorf("query parameter %s: %w", param, err)
		}

		return &result, nil
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		var result T
		body := p.Body()
		if body == nil {
			return result, fmt.Errorf("%w: empty body", ErrParsingError)
		}

		err := json.NewDecoder(body).Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func (p requestDataProvider) PathParameters() map[string]string {
	return mux.Vars(p.Request)
}

func (p requestDataProvider) QueryParameters() url.Values {
	return p.Request.URL.Query()
}

func (p requestDataProvider) Header() http.Header {
	return p.Request.Header
}

func (p requestDataProvider) Body() io.ReadCloser {
	return p.Request.Body
}

func parseTypedValueImpl[T supportedParsingTypes](value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err == nil {
		return v, nil
	}

	return v, fmt.Errorf("%w: %w", ErrParsingError, err)
}
