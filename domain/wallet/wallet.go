package wallet

import (
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

// Wallet is one native-currency account. Balance never goes negative:
// every debit is conditioned on the current balance covering the amount.
type Wallet struct {
	Address   domain.Address `json:"address" bson:"address"`
	Balance   int64          `json:"balance" bson:"balance"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (w *Wallet) ToId() Id {
	return Id{Address: w.Address}
}

type Id struct {
	Address domain.Address `bson:"address"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id Id) (*Wallet, error)
	// Deposit credits the address, creating the wallet when missing
	Deposit(ctx ctx.Ctx, address domain.Address, amount int64) (*Wallet, error)
	// Debit fails with domain.ErrInsufficientFunds when the spendable
	// balance at execution time does not cover amount
	Debit(ctx ctx.Ctx, address domain.Address, amount int64) error
	// Transfer moves amount from one address to another. Callers that need
	// the move to be atomic with other writes run it inside a
	// query.Mongo.RunWithTransaction block.
	Transfer(ctx ctx.Ctx, from, to domain.Address, amount int64) error
}

type Usecase interface {
	Get(ctx ctx.Ctx, address domain.Address) (*Wallet, error)
	Deposit(ctx ctx.Ctx, address domain.Address, amount int64) (*Wallet, error)
}

// DepositRequest carries exactly the fields deposit validation needs
type DepositRequest struct {
	Amount int64 `json:"amount" validate:"gt=0"`
}
