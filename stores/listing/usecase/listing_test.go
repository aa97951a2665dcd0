package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/custody"
	mCustody "github.com/x-xyz/marketplace/domain/custody/mocks"
	"github.com/x-xyz/marketplace/domain/listing"
	mListing "github.com/x-xyz/marketplace/domain/listing/mocks"
)

func newTestUsecase() (*mListing.Repo, *mCustody.Repo, listing.Usecase) {
	listingRepo := &mListing.Repo{}
	custodyRepo := &mCustody.Repo{}
	uc := New(&ListingUseCaseCfg{
		ListingRepo: listingRepo,
		CustodyRepo: custodyRepo,
	})
	return listingRepo, custodyRepo, uc
}

func TestCreate(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listingRepo, custodyRepo, uc := newTestUsecase()

	custodyRepo.On("FindOne", mock.Anything, custody.Id{AssetId: "a1"}).
		Return(&custody.Holding{AssetId: "a1", Holder: "0xaaa"}, nil)
	listingRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.ListingId == "l1" && l.Owner == "0xaaa" && l.IsActive
	})).Return(nil)

	res, err := uc.Create(c, "0xAAA", &listing.ListRequest{
		ListingId: "l1",
		AssetId:   "a1",
		Price:     1000,
	})
	req.NoError(err)
	req.Equal(domain.ListingId("l1"), res.ListingId)
	req.Equal(domain.Address("0xaaa"), res.Owner)
	req.True(res.IsActive)
}

func TestCreateAllocatesId(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listingRepo, custodyRepo, uc := newTestUsecase()

	custodyRepo.On("FindOne", mock.Anything, mock.Anything).
		Return(&custody.Holding{AssetId: "a1", Holder: "0xaaa"}, nil)
	listingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := uc.Create(c, "0xaaa", &listing.ListRequest{AssetId: "a1", Price: 0})
	req.NoError(err)
	req.NotEmpty(res.ListingId)
}

func TestCreateNotHolder(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listingRepo, custodyRepo, uc := newTestUsecase()

	custodyRepo.On("FindOne", mock.Anything, mock.Anything).
		Return(&custody.Holding{AssetId: "a1", Holder: "0xbbb"}, nil)

	_, err := uc.Create(c, "0xaaa", &listing.ListRequest{ListingId: "l1", AssetId: "a1", Price: 1})
	req.Equal(domain.ErrUnauthorized, err)
	listingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUnknownAsset(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	_, custodyRepo, uc := newTestUsecase()

	custodyRepo.On("FindOne", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	_, err := uc.Create(c, "0xaaa", &listing.ListRequest{ListingId: "l1", AssetId: "missing", Price: 1})
	req.Equal(domain.ErrUnauthorized, err)
}

func TestCreateDuplicate(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listingRepo, custodyRepo, uc := newTestUsecase()

	custodyRepo.On("FindOne", mock.Anything, mock.Anything).
		Return(&custody.Holding{AssetId: "a1", Holder: "0xaaa"}, nil)
	listingRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateListing)

	_, err := uc.Create(c, "0xaaa", &listing.ListRequest{ListingId: "l1", AssetId: "a1", Price: 1})
	req.Equal(domain.ErrDuplicateListing, err)
}

func TestCancel(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listingRepo, _, uc := newTestUsecase()

	id := listing.Id{ListingId: "l1"}
	listingRepo.On("FindOne", mock.Anything, id).
		Return(&listing.Listing{ListingId: "l1", Owner: "0xaaa", IsActive: true}, nil)
	listingRepo.On("Deactivate", mock.Anything, id).Return(nil)

	req.NoError(uc.Cancel(c, "0xAAA", &listing.CancelRequest{ListingId: "l1"}))
}

func TestCancelNotOwner(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listingRepo, _, uc := newTestUsecase()

	id := listing.Id{ListingId: "l1"}
	listingRepo.On("FindOne", mock.Anything, id).
		Return(&listing.Listing{ListingId: "l1", Owner: "0xaaa", IsActive: true}, nil)

	err := uc.Cancel(c, "0xbbb", &listing.CancelRequest{ListingId: "l1"})
	req.Equal(domain.ErrUnauthorized, err)
	listingRepo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
}

func TestCancelMissing(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listingRepo, _, uc := newTestUsecase()

	listingRepo.On("FindOne", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	err := uc.Cancel(c, "0xaaa", &listing.CancelRequest{ListingId: "missing"})
	req.Equal(domain.ErrNotFound, err)
}

func TestCancelAlreadyInactive(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listingRepo, _, uc := newTestUsecase()

	id := listing.Id{ListingId: "l1"}
	listingRepo.On("FindOne", mock.Anything, id).
		Return(&listing.Listing{ListingId: "l1", Owner: "0xaaa", IsActive: false}, nil)
	listingRepo.On("Deactivate", mock.Anything, id).Return(domain.ErrInactiveListing)

	err := uc.Cancel(c, "0xaaa", &listing.CancelRequest{ListingId: "l1"})
	req.Equal(domain.ErrInactiveListing, err)
}

func TestFindAll(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	listingRepo, _, uc := newTestUsecase()

	items := []*listing.Listing{
		{ListingId: "l1", Owner: "0xaaa", IsActive: true},
		{ListingId: "l2", Owner: "0xaaa", IsActive: true},
	}
	listingRepo.On("FindAll", mock.Anything, mock.Anything).Return(items, nil)
	listingRepo.On("Count", mock.Anything, mock.Anything).Return(2, nil)

	res, err := uc.FindAll(c, listing.WithOwner("0xaaa"))
	req.NoError(err)
	req.Len(res.Items, 2)
	req.Equal(2, res.Count)
}
