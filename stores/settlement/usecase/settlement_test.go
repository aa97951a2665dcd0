package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	mCustody "github.com/x-xyz/marketplace/domain/custody/mocks"
	"github.com/x-xyz/marketplace/domain/listing"
	mListing "github.com/x-xyz/marketplace/domain/listing/mocks"
	"github.com/x-xyz/marketplace/domain/settlement"
	mWallet "github.com/x-xyz/marketplace/domain/wallet/mocks"
	mQuery "github.com/x-xyz/marketplace/service/query/mocks"
)

type fixture struct {
	q           *mQuery.Mongo
	listingRepo *mListing.Repo
	walletRepo  *mWallet.Repo
	custodyRepo *mCustody.Repo
	uc          settlement.UseCase
}

func newFixture() *fixture {
	f := &fixture{
		q:           &mQuery.Mongo{},
		listingRepo: &mListing.Repo{},
		walletRepo:  &mWallet.Repo{},
		custodyRepo: &mCustody.Repo{},
	}

	// run the callback directly, transaction semantics are covered by the
	// repository suites
	f.q.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
			return run(c)
		})

	f.uc = New(&SettlementUseCaseCfg{
		Query:       f.q,
		ListingRepo: f.listingRepo,
		WalletRepo:  f.walletRepo,
		CustodyRepo: f.custodyRepo,
	})
	return f
}

var activeListing = &listing.Listing{
	ListingId: "l1",
	Owner:     "0xseller",
	AssetId:   "a1",
	Price:     1000,
	IsActive:  true,
}

func TestBuyNft(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	f := newFixture()

	id := listing.Id{ListingId: "l1"}
	f.listingRepo.On("FindOne", mock.Anything, id).Return(activeListing, nil)
	f.walletRepo.On("Transfer", mock.Anything, domain.Address("0xbuyer"), domain.Address("0xseller"), int64(1000)).Return(nil)
	f.custodyRepo.On("TransferUnit", mock.Anything, domain.AssetId("a1"), domain.Address("0xseller"), domain.Address("0xbuyer"), domain.Address("0xseller")).Return(nil)
	f.listingRepo.On("Deactivate", mock.Anything, id).Return(nil)

	receipt, err := f.uc.BuyNft(c, "0xBUYER", &settlement.BuyRequest{ListingId: "l1"})
	req.NoError(err)
	req.Equal(domain.ListingId("l1"), receipt.ListingId)
	req.Equal(domain.AssetId("a1"), receipt.AssetId)
	req.Equal(int64(1000), receipt.Price)
	req.Equal(domain.Address("0xseller"), receipt.Seller)
	req.Equal(domain.Address("0xbuyer"), receipt.Buyer)

	f.walletRepo.AssertExpectations(t)
	f.custodyRepo.AssertExpectations(t)
	f.listingRepo.AssertExpectations(t)
}

func TestBuyNftListingMissing(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	f := newFixture()

	f.listingRepo.On("FindOne", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	_, err := f.uc.BuyNft(c, "0xbuyer", &settlement.BuyRequest{ListingId: "missing"})
	req.Equal(domain.ErrNotFound, err)
	f.walletRepo.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBuyNftInactiveListing(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	f := newFixture()

	inactive := *activeListing
	inactive.IsActive = false
	f.listingRepo.On("FindOne", mock.Anything, mock.Anything).Return(&inactive, nil)

	_, err := f.uc.BuyNft(c, "0xbuyer", &settlement.BuyRequest{ListingId: "l1"})
	req.Equal(domain.ErrInactiveListing, err)
	f.walletRepo.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBuyNftSellerAccountMismatch(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	f := newFixture()

	f.listingRepo.On("FindOne", mock.Anything, mock.Anything).Return(activeListing, nil)
	f.walletRepo.On("Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := f.uc.BuyNft(c, "0xbuyer", &settlement.BuyRequest{
		ListingId:     "l1",
		SellerAccount: "0xsomeoneelse",
	})
	req.Equal(domain.ErrUnauthorized, err)
	f.custodyRepo.AssertNotCalled(t, "TransferUnit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.listingRepo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
}

func TestBuyNftNoFundsReportedBeforeSellerMismatch(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	f := newFixture()

	f.listingRepo.On("FindOne", mock.Anything, mock.Anything).Return(activeListing, nil)
	f.walletRepo.On("Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrInsufficientFunds)

	_, err := f.uc.BuyNft(c, "0xbuyer", &settlement.BuyRequest{
		ListingId:     "l1",
		SellerAccount: "0xsomeoneelse",
	})
	req.Equal(domain.ErrInsufficientFunds, err)
}

func TestBuyNftSellerAccountMatches(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	f := newFixture()

	id := listing.Id{ListingId: "l1"}
	f.listingRepo.On("FindOne", mock.Anything, id).Return(activeListing, nil)
	f.walletRepo.On("Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.custodyRepo.On("TransferUnit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.listingRepo.On("Deactivate", mock.Anything, id).Return(nil)

	_, err := f.uc.BuyNft(c, "0xbuyer", &settlement.BuyRequest{
		ListingId:     "l1",
		SellerAccount: "0xSELLER",
	})
	req.NoError(err)
}

func TestBuyNftInsufficientFunds(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	f := newFixture()

	f.listingRepo.On("FindOne", mock.Anything, mock.Anything).Return(activeListing, nil)
	f.walletRepo.On("Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrInsufficientFunds)

	_, err := f.uc.BuyNft(c, "0xbuyer", &settlement.BuyRequest{ListingId: "l1"})
	req.Equal(domain.ErrInsufficientFunds, err)
	f.custodyRepo.AssertNotCalled(t, "TransferUnit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.listingRepo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
}

func TestBuyNftCustodyRejected(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	f := newFixture()

	f.listingRepo.On("FindOne", mock.Anything, mock.Anything).Return(activeListing, nil)
	f.walletRepo.On("Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.custodyRepo.On("TransferUnit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrTransferFailed)

	_, err := f.uc.BuyNft(c, "0xbuyer", &settlement.BuyRequest{ListingId: "l1"})
	req.Equal(domain.ErrTransferFailed, err)
	f.listingRepo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
}

func TestBuyNftLostDeactivationRace(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	f := newFixture()

	id := listing.Id{ListingId: "l1"}
	f.listingRepo.On("FindOne", mock.Anything, id).Return(activeListing, nil)
	f.walletRepo.On("Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.custodyRepo.On("TransferUnit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.listingRepo.On("Deactivate", mock.Anything, id).Return(domain.ErrInactiveListing)

	_, err := f.uc.BuyNft(c, "0xbuyer", &settlement.BuyRequest{ListingId: "l1"})
	req.Equal(domain.ErrInactiveListing, err)
}
