package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/database/mongoclient"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/account"
	"github.com/x-xyz/marketplace/domain/keys"
	"github.com/x-xyz/marketplace/service/cache"
	"github.com/x-xyz/marketplace/service/cache/provider"
	"github.com/x-xyz/marketplace/service/cache/provider/compound"
	"github.com/x-xyz/marketplace/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/marketplace/service/cache/provider/redis"
	"github.com/x-xyz/marketplace/service/query"
	"github.com/x-xyz/marketplace/service/redis"
)

type impl struct {
	query        query.Mongo
	accountCache cache.Service
}

// New creates new account repo
func New(query query.Mongo, redis redis.Service) account.Repo {
	cacheProviders := []provider.Provider{
		primitive.NewPrimitive(keys.PfxAccount, 64),
	}

	if redis != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redis))
	}

	return &impl{
		query: query,
		accountCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Hour,
			Pfx:   keys.PfxAccount,
			Cache: compound.NewCompound(cacheProviders),
		}),
	}
}

func (im *impl) FindOne(c ctx.Ctx, id account.Id) (*account.Account, error) {
	res := &account.Account{}

	address := id.Address.ToLower()
	if err := im.accountCache.GetByFunc(c, address.ToLowerStr(), res, func() (interface{}, error) {
		return im.findOne(c, address)
	}); err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err":     err,
				"address": address,
			}).Error("accountCache.GetByFunc failed")
		}
		return nil, err
	}

	return res, nil
}

func (im *impl) findOne(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	a := &account.Account{}
	err := im.query.FindOne(c, domain.TableAccounts, bson.M{"address": address}, a)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("find account failed")
		return nil, err
	}
	return a, nil
}

func (im *impl) Insert(c ctx.Ctx, a *account.Account) error {
	a.Address = a.Address.ToLower()
	if err := im.query.Insert(c, domain.TableAccounts, a); err != nil {
		c.WithFields(log.Fields{
			"address": a.Address,
			"err":     err,
		}).Error("insert account failed")
		return err
	}
	return nil
}

func (im *impl) Update(c ctx.Ctx, id account.Id, patchable account.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("make bsonM failed")
		return err
	}

	address := id.Address.ToLower()
	if err := im.query.Patch(c, domain.TableAccounts, bson.M{"address": address}, updater); err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("patch account failed")
		return err
	}
	if err := im.accountCache.Del(c, address.ToLowerStr()); err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("accountCache.Del failed")
		return nil
	}
	return nil
}
