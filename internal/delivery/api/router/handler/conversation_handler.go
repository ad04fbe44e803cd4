package handler

import (
	"net/http"

	"landmarket/internal/delivery/api/response"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/entity"
	"landmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConversationHandlerParams holds dependencies for ConversationHandler, injected by Fx.
type ConversationHandlerParams struct {
	fx.In

	ConversationUC usecase.ConversationUsecase
	SavedSearchUC  usecase.SavedSearchUsecase
}

// ConversationHandler serves buyer/seller threads and saved searches.
type ConversationHandler struct {
	conversationUC usecase.ConversationUsecase
	savedSearchUC  usecase.SavedSearchUsecase
}

// NewConversationHandler is the constructor for ConversationHandler.
func NewConversationHandler(params ConversationHandlerParams) *ConversationHandler {
	return &ConversationHandler{
		conversationUC: params.ConversationUC,
		savedSearchUC:  params.SavedSearchUC,
	}
}

// MessageRequest carries the text of a new message.
type MessageRequest struct {
	Text string `json:"text" validate:"required,max=5000"`
}

// SaveSearchRequest snapshots the current filters under a name.
type SaveSearchRequest struct {
	Name    string              `json:"name" validate:"required,max=120"`
	URL     string              `json:"url" validate:"max=2000"`
	Filters entity.SearchFilter `json:"filters"`
}

// StartConversation opens a thread with the seller of a listing.
func (h *ConversationHandler) StartConversation(c echo.Context) error {
	var req MessageRequest
	if ok, err := bindAndValidate(c, &req, "Invalid message input"); !ok {
		return err
	}

	conv, err := h.conversationUC.StartConversation(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"), req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, conv)
}

// ListConversations returns the caller's threads.
func (h *ConversationHandler) ListConversations(c echo.Context) error {
	convs, err := h.conversationUC.ListConversations(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, convs)
}

// PostMessage appends a message to a thread.
func (h *ConversationHandler) PostMessage(c echo.Context) error {
	var req MessageRequest
	if ok, err := bindAndValidate(c, &req, "Invalid message input"); !ok {
		return err
	}

	msg, err := h.conversationUC.PostMessage(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"), req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, msg)
}

// ListMessages returns the messages of a thread, oldest first.
func (h *ConversationHandler) ListMessages(c echo.Context) error {
	msgs, err := h.conversationUC.ListMessages(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, msgs)
}

// DeleteConversation removes a thread and its messages.
func (h *ConversationHandler) DeleteConversation(c echo.Context) error {
	if err := h.conversationUC.DeleteConversation(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// SaveSearch stores a named filter snapshot.
func (h *ConversationHandler) SaveSearch(c echo.Context) error {
	var req SaveSearchRequest
	if ok, err := bindAndValidate(c, &req, "Invalid saved search input"); !ok {
		return err
	}

	saved, err := h.savedSearchUC.SaveSearch(c.Request().Context(), deliverycontext.GetCaller(c), req.Name, req.URL, req.Filters)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, saved)
}

// ListSavedSearches returns the caller's saved searches.
func (h *ConversationHandler) ListSavedSearches(c echo.Context) error {
	saved, err := h.savedSearchUC.ListSavedSearches(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, saved)
}

// DeleteSavedSearch removes one of the caller's saved searches.
func (h *ConversationHandler) DeleteSavedSearch(c echo.Context) error {
	if err := h.savedSearchUC.DeleteSavedSearch(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}
