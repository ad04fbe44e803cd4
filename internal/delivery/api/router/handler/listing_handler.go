package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"landmarket/internal/delivery/api/response"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/service"
	"landmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	ReviewUC  usecase.ReviewUsecase
	Logger    *slog.Logger
}

// ListingHandler serves listing submission, editing and single-listing reads.
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	reviewUC  usecase.ReviewUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler.
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		reviewUC:  params.ReviewUC,
		logger:    params.Logger,
	}
}

// CreateListing accepts a multipart submission: listing fields, an optional
// "image" file and any number of "evidence" files.
func (h *ListingHandler) CreateListing(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "Expected a multipart form")
	}

	input, err := listingInputFromForm(form.Value)
	if err != nil {
		return response.ValidationError(c, err)
	}

	if images := form.File["image"]; len(images) > 0 {
		if input.Image, err = readUpload(images[0]); err != nil {
			logger.Warn("Failed to read listing image", slog.Any("error", err))

			return response.BindingError(c, "Unreadable image upload")
		}
	}

	for _, fh := range form.File["evidence"] {
		upload, err := readUpload(fh)
		if err != nil {
			logger.Warn("Failed to read evidence upload", slog.String("file", fh.Filename), slog.Any("error", err))

			return response.BindingError(c, "Unreadable evidence upload")
		}
		input.Evidence = append(input.Evidence, *upload)
	}

	result, err := h.listingUC.CreateListing(ctx, deliverycontext.GetCaller(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

func listingInputFromForm(values map[string][]string) (*usecase.CreateListingInput, error) {
	first := func(key string) string {
		if v := values[key]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}

		return ""
	}

	input := &usecase.CreateListingInput{
		Title:       first("title"),
		Description: first("description"),
		Location:    first("location"),
		County:      first("county"),
		LandType:    first("landType"),
		Size:        first("size"),
		Amenities:   listValues(values["amenities"]),
		Boundary:    first("boundary"),
		ImageHint:   first("imageHint"),
	}

	price, err := optionalFloat(first("price"))
	if err != nil {
		return nil, err
	}
	if price != nil {
		input.Price = *price
	}

	area, err := optionalFloat(first("area"))
	if err != nil {
		return nil, err
	}
	if area != nil {
		input.Area = *area
	}

	return input, nil
}

// GetListing returns one listing the caller may see.
func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingUC.GetListing(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}

// UpdateListing applies a partial edit.
func (h *ListingHandler) UpdateListing(c echo.Context) error {
	var input usecase.UpdateListingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid listing input")
	}

	listing, err := h.listingUC.UpdateListing(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, listing)
}

// DeleteListing removes a listing and its evidence.
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	result, err := h.reviewUC.DeleteListing(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListingQR renders the share QR code as PNG.
func (h *ListingHandler) ListingQR(c echo.Context) error {
	png, err := h.listingUC.ListingQR(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListEvidence returns the evidence of a listing to its owner or an admin.
func (h *ListingHandler) ListEvidence(c echo.Context) error {
	evidence, err := h.reviewUC.ListEvidence(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, evidence)
}

// GenerateDescriptionRequest holds the facts the description is drafted from.
type GenerateDescriptionRequest struct {
	Title     string   `json:"title" validate:"required"`
	Location  string   `json:"location"`
	County    string   `json:"county"`
	LandType  string   `json:"landType"`
	Area      float64  `json:"area" validate:"gte=0"`
	Size      string   `json:"size"`
	Price     float64  `json:"price" validate:"gte=0"`
	Amenities []string `json:"amenities"`
}

// DescriptionResult is the drafted description.
type DescriptionResult struct {
	Description string `json:"description"`
}

// GenerateDescription drafts a listing description.
func (h *ListingHandler) GenerateDescription(c echo.Context) error {
	var req GenerateDescriptionRequest
	if ok, err := bindAndValidate(c, &req, "Invalid description input"); !ok {
		return err
	}

	text, err := h.listingUC.GenerateDescription(c.Request().Context(), deliverycontext.GetCaller(c), service.DescriptionFacts{
		Title:     req.Title,
		Location:  req.Location,
		County:    req.County,
		LandType:  req.LandType,
		Area:      req.Area,
		Size:      req.Size,
		Price:     req.Price,
		Amenities: req.Amenities,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DescriptionResult{Description: text})
}
