package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsSurvivesDetails(t *testing.T) {
	detailed := ErrInvalidBoundary.WithDetails("invalid geojson")

	assert.ErrorIs(t, detailed, ErrInvalidBoundary)
	assert.ErrorIs(t, pkgerrors.Wrap(detailed, "create listing"), ErrInvalidBoundary)
	assert.NotErrorIs(t, detailed, ErrInternalError)
	assert.Equal(t, "invalid geojson", detailed.Details())
	assert.Empty(t, ErrInvalidBoundary.Details())
}

func TestBaseError_IsIgnoresOtherErrors(t *testing.T) {
	assert.False(t, ErrInvalidBoundary.Is(stderrors.New("Boundary must be a GeoJSON polygon")))
	assert.False(t, ErrInvalidBoundary.Is(NewBaseError(http.StatusBadRequest, "OTHER", "x", "")))
}
