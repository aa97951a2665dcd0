package listing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

// PriceDecimals is the scale of the native currency's base unit
const PriceDecimals = 9

// Listing is the sole persistent entity of the marketplace core.
// Owner, AssetId and Price are fixed at creation. IsActive only ever
// transitions true -> false; the record is never deleted.
type Listing struct {
	ListingId domain.ListingId `json:"listingId" bson:"listingId"`
	Owner     domain.Address   `json:"owner" bson:"owner"`
	AssetId   domain.AssetId   `json:"assetId" bson:"assetId"`
	Price     int64            `json:"price" bson:"price"`
	IsActive  bool             `json:"isActive" bson:"isActive"`
	CreatedAt time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt" bson:"updatedAt"`
}

func (l *Listing) ToId() Id {
	return Id{ListingId: l.ListingId}
}

// DisplayPrice renders the base-unit price in whole currency units
func (l *Listing) DisplayPrice() string {
	return decimal.New(l.Price, -PriceDecimals).String()
}

type Id struct {
	ListingId domain.ListingId `bson:"listingId"`
}

type Patchable struct {
	IsActive  *bool      `bson:"isActive,omitempty"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	Owner    *domain.Address
	AssetId  *domain.AssetId
	IsActive *bool
	Offset   *int32
	Limit    *int32
	Sort     *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithOwner(owner domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Owner = owner.ToLowerPtr()
		return nil
	}
}

func WithAssetId(assetId domain.AssetId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.AssetId = &assetId
		return nil
	}
}

func WithIsActive(isActive bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.IsActive = &isActive
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

// ListRequest carries exactly the fields list validation needs
type ListRequest struct {
	ListingId domain.ListingId `json:"listingId"`
	AssetId   domain.AssetId   `json:"assetId" validate:"required"`
	Price     int64            `json:"price" validate:"gte=0"`
}

// CancelRequest carries exactly the fields cancel validation needs
type CancelRequest struct {
	ListingId domain.ListingId `json:"listingId" validate:"required"`
}

// SearchParams binds the query string of the listing search endpoint
type SearchParams struct {
	Owner    *domain.Address `query:"owner"`
	AssetId  *domain.AssetId `query:"assetId"`
	IsActive *bool           `query:"isActive"`
	Offset   int32           `query:"offset"`
	Limit    int32           `query:"limit"`
}

type SearchResult struct {
	Items []*Listing `json:"items"`
	Count int        `json:"count"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id Id) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	// Create fails with domain.ErrDuplicateListing if the id is occupied
	Create(ctx ctx.Ctx, listing *Listing) error
	// Deactivate flips isActive to false. It matches on isActive=true so a
	// listing that was concurrently sold or cancelled fails with
	// domain.ErrInactiveListing instead of being silently re-deactivated.
	Deactivate(ctx ctx.Ctx, id Id) error
}

type Usecase interface {
	Create(ctx ctx.Ctx, owner domain.Address, req *ListRequest) (*Listing, error)
	Cancel(ctx ctx.Ctx, caller domain.Address, req *CancelRequest) error
	FindOne(ctx ctx.Ctx, id Id) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (*SearchResult, error)
}
