// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"landmarket/internal/delivery/api/middleware"
	"landmarket/internal/delivery/api/router/handler"
	"landmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	ProfileHandler      *handler.ProfileHandler
	ListingHandler      *handler.ListingHandler
	SearchHandler       *handler.SearchHandler
	ReviewHandler       *handler.ReviewHandler
	ModerationHandler   *handler.ModerationHandler
	ConversationHandler *handler.ConversationHandler
	SessionMiddleware   *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler      *handler.SessionHandler
	profileHandler      *handler.ProfileHandler
	listingHandler      *handler.ListingHandler
	searchHandler       *handler.SearchHandler
	reviewHandler       *handler.ReviewHandler
	moderationHandler   *handler.ModerationHandler
	conversationHandler *handler.ConversationHandler
	session             *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:      params.SessionHandler,
		profileHandler:      params.ProfileHandler,
		listingHandler:      params.ListingHandler,
		searchHandler:       params.SearchHandler,
		reviewHandler:       params.ReviewHandler,
		moderationHandler:   params.ModerationHandler,
		conversationHandler: params.ConversationHandler,
		session:             params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every /api route resolves the session; anonymous requests pass through.
	api := e.Group("/api", r.session.Resolve)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/session", r.sessionHandler.CreateSession)
		authGroup.DELETE("/session", r.sessionHandler.DeleteSession)
		authGroup.POST("/profile", r.profileHandler.CreateProfile)
	}

	api.POST("/contact", r.moderationHandler.SubmitContact)

	v1 := api.Group("/v1")

	// Public reads; visibility rules are applied per caller.
	listings := v1.Group("/listings")
	{
		listings.GET("", r.searchHandler.Search)
		listings.GET("/:id", r.listingHandler.GetListing)
		listings.GET("/:id/qr", r.listingHandler.ListingQR)
		listings.POST("/:id/report", r.moderationHandler.ReportListing)
	}

	// Signed-in routes
	signedIn := r.session.RequireCaller
	{
		v1.GET("/profile", r.profileHandler.GetProfile, signedIn)
		v1.PATCH("/profile", r.profileHandler.UpdateProfile, signedIn)

		listings.PATCH("/:id", r.listingHandler.UpdateListing, signedIn)
		listings.DELETE("/:id", r.listingHandler.DeleteListing, signedIn)
		listings.GET("/:id/evidence", r.listingHandler.ListEvidence, signedIn)
		listings.POST("/:id/conversations", r.conversationHandler.StartConversation, signedIn)

		v1.GET("/conversations", r.conversationHandler.ListConversations, signedIn)
		v1.GET("/conversations/:id/messages", r.conversationHandler.ListMessages, signedIn)
		v1.POST("/conversations/:id/messages", r.conversationHandler.PostMessage, signedIn)
		v1.DELETE("/conversations/:id", r.conversationHandler.DeleteConversation, signedIn)

		v1.GET("/saved-searches", r.conversationHandler.ListSavedSearches, signedIn)
		v1.POST("/saved-searches", r.conversationHandler.SaveSearch, signedIn)
		v1.DELETE("/saved-searches/:id", r.conversationHandler.DeleteSavedSearch, signedIn)
	}

	// Seller routes
	seller := r.session.RequireRole(entity.RoleSeller, entity.RoleAdmin)
	{
		listings.POST("", r.listingHandler.CreateListing, seller)
		v1.GET("/me/listings", r.searchHandler.ListMine, seller)
		v1.POST("/descriptions", r.listingHandler.GenerateDescription, seller)
	}

	// Admin routes
	admin := v1.Group("/admin", r.session.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/listings", r.searchHandler.AdminListings)
		admin.PATCH("/listings/:id/review", r.reviewHandler.ReviewListing)
		admin.POST("/listings/bulk-status", r.reviewHandler.BulkUpdateStatus)

		admin.POST("/evidence/:id/summarize", r.reviewHandler.SummarizeEvidence)
		admin.PATCH("/evidence/:id/verified", r.reviewHandler.VerifyEvidence)

		admin.GET("/messages", r.moderationHandler.ListMessages)
		admin.PATCH("/messages/:id", r.moderationHandler.SetMessageStatus)
		admin.GET("/reports", r.moderationHandler.ListReports)
		admin.PATCH("/reports/:id", r.moderationHandler.SetReportStatus)

		admin.GET("/users", r.profileHandler.ListUsers)
		admin.PATCH("/users/:uid/role", r.profileHandler.SetUserRole)
		admin.PATCH("/users/:uid/verified", r.profileHandler.SetUserVerified)
	}
}
