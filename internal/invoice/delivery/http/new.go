package http

import (
	"github.com/gin-gonic/gin"

	"invoice-escrow/internal/invoice"
	"invoice-escrow/pkg/log"
)

// Handler is the public interface for the invoice HTTP delivery layer.
type Handler interface {
	ExtractInvoice(c *gin.Context)
	StartDraft(c *gin.Context)
	GetDraft(c *gin.Context)
	SubmitMessage(c *gin.Context)
	Confirm(c *gin.Context)
	Edit(c *gin.Context)
	Submit(c *gin.Context)
	List(c *gin.Context)
	Accept(c *gin.Context)
	Complete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc invoice.UseCase
}

// New creates a new HTTP handler for the invoice domain.
func New(l log.Logger, uc invoice.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
