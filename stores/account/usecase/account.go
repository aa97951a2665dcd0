package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/ptr"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/account"
)

type AccountUseCaseCfg struct {
	AccountRepo account.Repo
}

type impl struct {
	accountRepo account.Repo
}

func New(cfg *AccountUseCaseCfg) account.Usecase {
	return &impl{
		accountRepo: cfg.AccountRepo,
	}
}

func (im *impl) Get(ctx ctx.Ctx, address domain.Address) (*account.Account, error) {
	a, err := im.accountRepo.FindOne(ctx, account.Id{Address: address.ToLower()})
	if err != nil {
		if err != domain.ErrNotFound {
			ctx.WithFields(log.Fields{
				"err":     err,
				"address": address,
			}).Error("failed to accountRepo.FindOne")
		}
		return nil, err
	}

	return a, nil
}

func (im *impl) GetOrCreate(ctx ctx.Ctx, address domain.Address) (*account.Account, error) {
	address = address.ToLower()

	a, err := im.Get(ctx, address)
	if err == nil {
		return a, nil
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	a = &account.Account{
		Address:   address,
		Nonce:     uuid.New().String(),
		CreatedAt: time.Now(),
	}
	if err := im.accountRepo.Insert(ctx, a); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to accountRepo.Insert")
		return nil, err
	}

	return a, nil
}

func (im *impl) RotateNonce(ctx ctx.Ctx, address domain.Address) (string, error) {
	address = address.ToLower()

	nonce := uuid.New().String()
	err := im.accountRepo.Update(ctx, account.Id{Address: address}, account.Patchable{
		Nonce: ptr.String(nonce),
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to accountRepo.Update")
		return "", err
	}

	return nonce, nil
}
