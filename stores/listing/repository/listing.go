package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/database/mongoclient"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/ptr"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/listing"
	"github.com/x-xyz/marketplace/service/query"
)

type listingRepoImpl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) listing.Repo {
	return &listingRepoImpl{q}
}

func (im *listingRepoImpl) makeQuery(opts ...listing.FindAllOptionsFunc) (bson.M, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.Owner != nil {
		query["owner"] = *options.Owner
	}

	if options.AssetId != nil {
		query["assetId"] = *options.AssetId
	}

	if options.IsActive != nil {
		query["isActive"] = *options.IsActive
	}

	return query, nil
}

func (im *listingRepoImpl) FindOne(ctx ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := listing.Listing{}
	err = im.q.FindOne(ctx, domain.TableListings, qry, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.FindOne")
		return nil, err
	}

	return &res, nil
}

func (im *listingRepoImpl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := listing.GetFindAllOptions(opts...)

	offset := 0
	limit := 0
	sort := "-createdAt"
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}
	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []*listing.Listing{}
	err = im.q.Search(ctx, domain.TableListings, offset, limit, sort, query, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *listingRepoImpl) Count(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) (int, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableListings, query)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

func (im *listingRepoImpl) Create(ctx ctx.Ctx, l *listing.Listing) error {
	err := im.q.Insert(ctx, domain.TableListings, l)
	if err == query.ErrDuplicateKey {
		return domain.ErrDuplicateListing
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"listing": *l,
		}).Error("failed to q.Insert")
		return err
	}

	return nil
}

func (im *listingRepoImpl) Deactivate(ctx ctx.Ctx, id listing.Id) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	// match on isActive so a listing that already settled or was cancelled
	// never flips twice
	selector["isActive"] = true

	updater, err := mongoclient.MakeBsonM(listing.Patchable{
		IsActive:  ptr.Bool(false),
		UpdatedAt: ptr.Time(time.Now()),
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.CustomPatch(ctx, domain.TableListings, selector, bson.M{"$set": updater}, false)
	if err == query.ErrNotFound {
		if _, err := im.FindOne(ctx, id); err == domain.ErrNotFound {
			return domain.ErrNotFound
		} else if err != nil {
			return err
		}
		return domain.ErrInactiveListing
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.CustomPatch")
		return err
	}

	return nil
}
