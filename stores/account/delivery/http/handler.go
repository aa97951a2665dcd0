package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/account"
	"github.com/x-xyz/marketplace/middleware"
)

type handler struct {
	account account.Usecase
}

// New will initialize the account endpoints
func New(e *echo.Echo, au account.Usecase) {
	h := &handler{
		account: au,
	}
	g := e.Group("/account")
	g.GET("/:address/nonce", h.getNonce, middleware.IsValidAddress("address"))
}

func (h *handler) getNonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	acc, err := h.account.GetOrCreate(ctx, address)
	if err != nil {
		ctx.WithField("err", err).Error("account.GetOrCreate failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		Nonce string `json:"nonce"`
	}{
		Nonce: acc.Nonce,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
