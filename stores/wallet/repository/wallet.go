package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/database/mongoclient"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/wallet"
	"github.com/x-xyz/marketplace/service/query"
)

type walletRepoImpl struct {
	q query.Mongo
}

func NewWalletRepo(q query.Mongo) wallet.Repo {
	return &walletRepoImpl{q}
}

func (im *walletRepoImpl) FindOne(ctx ctx.Ctx, id wallet.Id) (*wallet.Wallet, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to mongoclient.MakeBsonM")
		return nil, err
	}

	res := wallet.Wallet{}
	err = im.q.FindOne(ctx, domain.TableWallets, qry, &res)
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

func (im *walletRepoImpl) Deposit(ctx ctx.Ctx, address domain.Address, amount int64) (*wallet.Wallet, error) {
	selector := bson.M{"address": address.ToLower()}
	update := bson.M{
		"$inc": bson.M{"balance": amount},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	err := im.q.CustomPatch(ctx, domain.TableWallets, selector, update, true)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
			"amount":  amount,
		}).Error("failed to q.CustomPatch")
		return nil, err
	}

	return im.FindOne(ctx, wallet.Id{Address: address.ToLower()})
}

func (im *walletRepoImpl) Debit(ctx ctx.Ctx, address domain.Address, amount int64) error {
	// a zero debit is always covered, even by an address with no wallet
	// record yet
	if amount == 0 {
		return nil
	}

	// the balance guard makes the debit conditional, a concurrent spend that
	// drained the wallet leaves nothing to match
	selector := bson.M{
		"address": address.ToLower(),
		"balance": bson.M{"$gte": amount},
	}
	update := bson.M{
		"$inc": bson.M{"balance": -amount},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	err := im.q.CustomPatch(ctx, domain.TableWallets, selector, update, false)
	if err == query.ErrNotFound {
		return domain.ErrInsufficientFunds
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
			"amount":  amount,
		}).Error("failed to q.CustomPatch")
		return err
	}

	return nil
}

func (im *walletRepoImpl) Transfer(ctx ctx.Ctx, from, to domain.Address, amount int64) error {
	if err := im.Debit(ctx, from, amount); err != nil {
		return err
	}

	if _, err := im.Deposit(ctx, to, amount); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"from": from,
			"to":   to,
		}).Error("failed to credit payee")
		return err
	}

	return nil
}
