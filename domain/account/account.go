package account

import (
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

// Account is a registered principal. Nonce is the one-time value the client
// signs to obtain an access token; it rotates after every successful sign-in.
type Account struct {
	Address   domain.Address `json:"address" bson:"address"`
	Nonce     string         `json:"nonce" bson:"nonce"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type Id struct {
	Address domain.Address `bson:"address"`
}

type Patchable struct {
	Nonce *string `bson:"nonce,omitempty"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id Id) (*Account, error)
	Insert(ctx ctx.Ctx, account *Account) error
	Update(ctx ctx.Ctx, id Id, patchable Patchable) error
}

type Usecase interface {
	Get(ctx ctx.Ctx, address domain.Address) (*Account, error)
	// GetOrCreate returns the account, registering it on first sight
	GetOrCreate(ctx ctx.Ctx, address domain.Address) (*Account, error)
	// RotateNonce replaces the signing nonce and returns the new value
	RotateNonce(ctx ctx.Ctx, address domain.Address) (string, error)
}
