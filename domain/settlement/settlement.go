package settlement

import (
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

// BuyRequest carries exactly the fields buy validation needs.
// SellerAccount is optional; when supplied it is cross-checked against the
// stored listing owner, which is always the account that gets paid.
type BuyRequest struct {
	ListingId     domain.ListingId `json:"listingId" validate:"required"`
	SellerAccount domain.Address   `json:"sellerAccount"`
}

// Receipt reports the four effects of a committed purchase
type Receipt struct {
	ListingId domain.ListingId `json:"listingId"`
	AssetId   domain.AssetId   `json:"assetId"`
	Price     int64            `json:"price"`
	Seller    domain.Address   `json:"seller"`
	Buyer     domain.Address   `json:"buyer"`
	SettledAt time.Time        `json:"settledAt"`
}

type UseCase interface {
	// BuyNft settles a purchase as one all-or-nothing unit: funds move from
	// buyer to seller, custody moves from seller to buyer, and the listing
	// is deactivated - or nothing happens at all.
	BuyNft(ctx ctx.Ctx, buyer domain.Address, req *BuyRequest) (*Receipt, error)
}
