// Package handler contains the HTTP handlers of the marketplace API.
package handler

import (
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"landmarket/internal/delivery/api/response"
	"landmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate binds the request body and runs the struct validator.
// It writes the 400 itself and reports false when the request is unusable.
func bindAndValidate(c echo.Context, req any, invalidMessage string) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, invalidMessage)
	}
	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err)
	}

	return true, nil
}

// optionalFloat parses an optional numeric query/form value. Empty means absent;
// NaN and infinities are rejected.
func optionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid number %q", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errors.Errorf("invalid number %q", raw)
	}

	return &v, nil
}

// listValues accepts both repeated keys and comma separated values.
func listValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

// readUpload loads a multipart file into memory.
func readUpload(fh *multipart.FileHeader) (*usecase.FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open upload %s", fh.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read upload %s", fh.Filename)
	}

	contentType := fh.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	return &usecase.FileUpload{
		Name:        fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
