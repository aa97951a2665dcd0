package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/wallet"
	"github.com/x-xyz/marketplace/middleware"
	authMiddleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
)

type handler struct {
	wallet wallet.Usecase
}

// New will initialize the wallet endpoints
func New(e *echo.Echo, wu wallet.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		wallet: wu,
	}
	g := e.Group("/wallet/:address")
	g.GET("", h.get, middleware.IsValidAddress("address"))
	g.POST("/deposit", h.deposit, middleware.IsValidAddress("address"), authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	if res, err := h.wallet.Get(ctx, address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	p := &wallet.DepositRequest{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if res, err := h.wallet.Deposit(ctx, address, p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
