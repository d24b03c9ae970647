package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/swappo/swappo-toolkit/internal/services"
)

const (
	RootPath             = "/"
	ShippingEstimatePath = "/shipping-estimate"
)

type Handler struct {
	shippingSrv *services.ShippingService
}

func New(shippingSrv *services.ShippingService) *Handler {
	return &Handler{
		shippingSrv: shippingSrv,
	}
}

// RegisterHandlers mounts the shipping function on both of its paths. Every
// method is routed to the handler so that unsupported ones get a JSON 405.
func RegisterHandlers(router gin.IRoutes, h *Handler) {
	for _, path := range []string{RootPath, ShippingEstimatePath} {
		router.Any(path, h.ShippingEstimate)
	}
}
