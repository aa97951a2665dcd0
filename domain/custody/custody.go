package custody

import (
	"time"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
)

// Holding records which custody slot currently owns one non-fungible unit.
// Exactly one holding exists per asset id.
type Holding struct {
	AssetId   domain.AssetId `json:"assetId" bson:"assetId"`
	Holder    domain.Address `json:"holder" bson:"holder"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (h *Holding) ToId() Id {
	return Id{AssetId: h.AssetId}
}

type Id struct {
	AssetId domain.AssetId `bson:"assetId"`
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id Id) (*Holding, error)
	// Register creates the holding record for a freshly minted unit
	Register(ctx ctx.Ctx, holding *Holding) error
	// TransferUnit moves custody from one slot to another. The move must be
	// authorized by the current holder's credential: authority != from or a
	// holder mismatch fails with domain.ErrTransferFailed and nothing moves.
	TransferUnit(ctx ctx.Ctx, assetId domain.AssetId, from, to, authority domain.Address) error
}
