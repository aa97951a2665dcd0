package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/custody"
	"github.com/x-xyz/marketplace/domain/listing"
)

type ListingUseCaseCfg struct {
	ListingRepo listing.Repo
	CustodyRepo custody.Repo
}

type impl struct {
	listingRepo listing.Repo
	custodyRepo custody.Repo
}

func New(cfg *ListingUseCaseCfg) listing.Usecase {
	return &impl{
		listingRepo: cfg.ListingRepo,
		custodyRepo: cfg.CustodyRepo,
	}
}

func (im *impl) Create(ctx ctx.Ctx, owner domain.Address, req *listing.ListRequest) (*listing.Listing, error) {
	owner = owner.ToLower()

	holding, err := im.custodyRepo.FindOne(ctx, custody.Id{AssetId: req.AssetId})
	if err == domain.ErrNotFound {
		return nil, domain.ErrUnauthorized
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": req.AssetId,
		}).Error("failed to custodyRepo.FindOne")
		return nil, err
	}

	// only the current holder may list the asset
	if !holding.Holder.Equals(owner) {
		return nil, domain.ErrUnauthorized
	}

	listingId := req.ListingId
	if len(listingId) == 0 {
		listingId = domain.ListingId(uuid.New().String())
	}

	now := time.Now()
	l := &listing.Listing{
		ListingId: listingId,
		Owner:     owner,
		AssetId:   req.AssetId,
		Price:     req.Price,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := im.listingRepo.Create(ctx, l); err != nil {
		if err != domain.ErrDuplicateListing {
			ctx.WithFields(log.Fields{
				"err":     err,
				"listing": *l,
			}).Error("failed to listingRepo.Create")
		}
		return nil, err
	}

	return l, nil
}

func (im *impl) Cancel(ctx ctx.Ctx, caller domain.Address, req *listing.CancelRequest) error {
	id := listing.Id{ListingId: req.ListingId}

	l, err := im.listingRepo.FindOne(ctx, id)
	if err == domain.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to listingRepo.FindOne")
		return err
	}

	// authorization is checked before any state is touched
	if !l.Owner.Equals(caller) {
		return domain.ErrUnauthorized
	}

	if err := im.listingRepo.Deactivate(ctx, id); err != nil {
		if err != domain.ErrInactiveListing && err != domain.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("failed to listingRepo.Deactivate")
		}
		return err
	}

	return nil
}

func (im *impl) FindOne(ctx ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	l, err := im.listingRepo.FindOne(ctx, id)
	if err != nil {
		if err != domain.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("failed to listingRepo.FindOne")
		}
		return nil, err
	}

	return l, nil
}

func (im *impl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) (*listing.SearchResult, error) {
	items, err := im.listingRepo.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to listingRepo.FindAll")
		return nil, err
	}

	cnt, err := im.listingRepo.Count(ctx, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to listingRepo.Count")
		return nil, err
	}

	return &listing.SearchResult{Items: items, Count: cnt}, nil
}
