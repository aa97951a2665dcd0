package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/wallet"
	mWallet "github.com/x-xyz/marketplace/domain/wallet/mocks"
)

func TestGet(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	walletRepo := &mWallet.Repo{}
	uc := New(&WalletUseCaseCfg{WalletRepo: walletRepo})

	walletRepo.On("FindOne", mock.Anything, wallet.Id{Address: "0xaaa"}).
		Return(&wallet.Wallet{Address: "0xaaa", Balance: 500}, nil)

	w, err := uc.Get(c, "0xAAA")
	req.NoError(err)
	req.Equal(int64(500), w.Balance)
}

func TestGetUnknownAddress(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	walletRepo := &mWallet.Repo{}
	uc := New(&WalletUseCaseCfg{WalletRepo: walletRepo})

	walletRepo.On("FindOne", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	w, err := uc.Get(c, "0xbbb")
	req.NoError(err)
	req.Equal(int64(0), w.Balance)
	req.Equal(domain.Address("0xbbb"), w.Address)
}

func TestDeposit(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	walletRepo := &mWallet.Repo{}
	uc := New(&WalletUseCaseCfg{WalletRepo: walletRepo})

	walletRepo.On("Deposit", mock.Anything, domain.Address("0xaaa"), int64(100)).
		Return(&wallet.Wallet{Address: "0xaaa", Balance: 100}, nil)

	w, err := uc.Deposit(c, "0xAAA", 100)
	req.NoError(err)
	req.Equal(int64(100), w.Balance)
}
