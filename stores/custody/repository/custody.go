package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/database/mongoclient"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/custody"
	"github.com/x-xyz/marketplace/service/query"
)

type custodyRepoImpl struct {
	q query.Mongo
}

func NewCustodyRepo(q query.Mongo) custody.Repo {
	return &custodyRepoImpl{q}
}

func (im *custodyRepoImpl) FindOne(ctx ctx.Ctx, id custody.Id) (*custody.Holding, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := custody.Holding{}
	err = im.q.FindOne(ctx, domain.TableHoldings, qry, &res)
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

func (im *custodyRepoImpl) Register(ctx ctx.Ctx, holding *custody.Holding) error {
	holding.Holder = holding.Holder.ToLower()
	err := im.q.Insert(ctx, domain.TableHoldings, holding)
	if err == query.ErrDuplicateKey {
		return domain.ErrTransferFailed
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"holding": *holding,
		}).Error("failed to q.Insert")
		return err
	}

	return nil
}

func (im *custodyRepoImpl) TransferUnit(ctx ctx.Ctx, assetId domain.AssetId, from, to, authority domain.Address) error {
	// only the current holder's credential moves the unit
	if !authority.Equals(from) {
		return domain.ErrTransferFailed
	}

	selector := bson.M{
		"assetId": assetId,
		"holder":  from.ToLower(),
	}
	update := bson.M{
		"$set": bson.M{
			"holder":    to.ToLower(),
			"updatedAt": time.Now(),
		},
	}

	err := im.q.CustomPatch(ctx, domain.TableHoldings, selector, update, false)
	if err == query.ErrNotFound {
		// the unit is unknown or custody moved out from under the caller
		return domain.ErrTransferFailed
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"assetId": assetId,
			"from":    from,
			"to":      to,
		}).Error("failed to q.CustomPatch")
		return err
	}

	return nil
}
