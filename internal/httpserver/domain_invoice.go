package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	invoiceHTTP "invoice-escrow/internal/invoice/delivery/http"
	"invoice-escrow/internal/middleware"
)

// setupInvoiceDomain registers the invoice domain routes. The usecase is
// constructed in main so the ledger and LLM clients outlive the server.
func (srv *HTTPServer) setupInvoiceDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := invoiceHTTP.New(srv.l, srv.invoiceUC)

	invoiceHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Invoice domain registered")
	return nil
}
