package http

import (
	"github.com/gin-gonic/gin"

	"invoice-escrow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The extraction endpoint is rate limited per source; everything else
// shares the default middleware chain.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/extract-invoice", mw.RateLimit(), h.ExtractInvoice)

	drafts := rg.Group("/drafts")
	{
		drafts.POST("", h.StartDraft)
		drafts.GET("/:id", h.GetDraft)
		drafts.POST("/:id/messages", mw.RateLimit(), h.SubmitMessage)
		drafts.POST("/:id/confirm", h.Confirm)
		drafts.POST("/:id/edit", h.Edit)
		drafts.POST("/:id/submit", h.Submit)
	}

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.List)
		invoices.POST("/:id/accept", h.Accept)
		invoices.POST("/:id/complete", h.Complete)
	}
}
