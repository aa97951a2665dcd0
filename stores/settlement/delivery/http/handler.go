package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/settlement"
	authMiddleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
)

type handler struct {
	settlement settlement.UseCase
}

// New will initialize the settlement endpoints
func New(e *echo.Echo, su settlement.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		settlement: su,
	}
	e.POST("/listings/:listingId/buy", h.buy, authMiddleware.Auth())
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	buyer := c.Get("address").(domain.Address)

	p := &settlement.BuyRequest{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	// the path is authoritative for the listing id
	p.ListingId = domain.ListingId(c.Param("listingId"))

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if receipt, err := h.settlement.BuyNft(ctx, buyer, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, receipt)
	}
}
