package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/delivery"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/listing"
	"github.com/x-xyz/marketplace/middleware"
	authMiddleware "github.com/x-xyz/marketplace/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.Usecase
}

// listingView decorates the stored record with the whole-unit price for
// display
type listingView struct {
	*listing.Listing
	DisplayPrice string `json:"displayPrice"`
}

func toView(l *listing.Listing) *listingView {
	return &listingView{Listing: l, DisplayPrice: l.DisplayPrice()}
}

type searchView struct {
	Items []*listingView `json:"items"`
	Count int            `json:"count"`
}

// New will initialize the listing endpoints
func New(e *echo.Echo, lu listing.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		listing: lu,
	}

	gs := e.Group("/listings")
	gs.POST("", h.create, authMiddleware.Auth())
	gs.GET("", h.getAll, middleware.CacheHttp(5*time.Second))

	g := e.Group("/listings/:listingId")
	g.GET("", h.get)
	g.DELETE("", h.cancel, authMiddleware.Auth())
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)

	p := &listing.ListRequest{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if res, err := h.listing.Create(ctx, owner, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, toView(res))
	}
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &listing.SearchParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := []listing.FindAllOptionsFunc{}

	if p.Owner != nil {
		opts = append(opts, listing.WithOwner(*p.Owner))
	}

	if p.AssetId != nil {
		opts = append(opts, listing.WithAssetId(*p.AssetId))
	}

	if p.IsActive != nil {
		opts = append(opts, listing.WithIsActive(*p.IsActive))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	}

	res, err := h.listing.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	view := searchView{Items: make([]*listingView, 0, len(res.Items)), Count: res.Count}
	for _, l := range res.Items {
		view.Items = append(view.Items, toView(l))
	}
	return delivery.MakeJsonResp(c, http.StatusOK, view)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := listing.Id{ListingId: domain.ListingId(c.Param("listingId"))}

	if res, err := h.listing.FindOne(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, toView(res))
	}
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &listing.CancelRequest{
		ListingId: domain.ListingId(c.Param("listingId")),
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.listing.Cancel(ctx, caller, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
