package usecase

import (
	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/wallet"
)

type WalletUseCaseCfg struct {
	WalletRepo wallet.Repo
}

type impl struct {
	walletRepo wallet.Repo
}

func New(cfg *WalletUseCaseCfg) wallet.Usecase {
	return &impl{
		walletRepo: cfg.WalletRepo,
	}
}

func (im *impl) Get(ctx ctx.Ctx, address domain.Address) (*wallet.Wallet, error) {
	w, err := im.walletRepo.FindOne(ctx, wallet.Id{Address: address.ToLower()})
	if err == domain.ErrNotFound {
		// an unseen address simply has a zero balance
		return &wallet.Wallet{Address: address.ToLower(), Balance: 0}, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to walletRepo.FindOne")
		return nil, err
	}

	return w, nil
}

func (im *impl) Deposit(ctx ctx.Ctx, address domain.Address, amount int64) (*wallet.Wallet, error) {
	w, err := im.walletRepo.Deposit(ctx, address.ToLower(), amount)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
			"amount":  amount,
		}).Error("failed to walletRepo.Deposit")
		return nil, err
	}

	return w, nil
}
