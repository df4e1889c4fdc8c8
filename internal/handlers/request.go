package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/user-hobbies-api/internal/errors"
	"github.com/yukikurage/user-hobbies-api/internal/validation"
)

// decodeBody reads a JSON object keeping numbers as json.Number so the
// validator can tell integers from fractions. An empty body decodes to an
// empty object and is left to validation.
func decodeBody(c *gin.Context) (map[string]any, error) {
	values := map[string]any{}
	if c.Request.Body == nil {
		return values, nil
	}

	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apierrors.ErrBodyTooLarge
		}
		return nil, apierrors.ErrInvalidBody
	}
	if values == nil {
		return nil, apierrors.ErrInvalidBody
	}
	return values, nil
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (uint64, error) {
	values := map[string]any{name: c.Param(name)}
	if errs := validation.PathID(name).Validate(values); errs != nil {
		return 0, errs
	}
	return validation.Uint(values, name), nil
}

// pathText returns a text path parameter decoded exactly once. The router
// matches on the raw path with UnescapePathValues off, so the parameter is
// still escaped whenever the request carried a raw path, and already decoded
// otherwise. PathUnescape keeps a literal "+" as is.
func pathText(c *gin.Context, name string) (string, error) {
	value := c.Param(name)
	if c.Request.URL.RawPath == "" {
		return value, nil
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return "", validation.Errors{{Field: name, Message: name + " is not a valid path segment"}}
	}
	return decoded, nil
}
