package usecase

import (
	"time"

	bCtx "github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/base/metrics"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/custody"
	"github.com/x-xyz/marketplace/domain/listing"
	"github.com/x-xyz/marketplace/domain/settlement"
	"github.com/x-xyz/marketplace/domain/wallet"
	"github.com/x-xyz/marketplace/service/query"
)

type SettlementUseCaseCfg struct {
	Query       query.Mongo
	ListingRepo listing.Repo
	WalletRepo  wallet.Repo
	CustodyRepo custody.Repo
}

type impl struct {
	q           query.Mongo
	listingRepo listing.Repo
	walletRepo  wallet.Repo
	custodyRepo custody.Repo
	met         metrics.Service
}

func New(cfg *SettlementUseCaseCfg) settlement.UseCase {
	return &impl{
		q:           cfg.Query,
		listingRepo: cfg.ListingRepo,
		walletRepo:  cfg.WalletRepo,
		custodyRepo: cfg.CustodyRepo,
		met:         metrics.New("settlement"),
	}
}

// BuyNft settles the purchase inside one mongo transaction. Each step writes
// conditionally, so the racer that loses a conflicting commit observes a
// domain error instead of a partial swap.
func (im *impl) BuyNft(ctx bCtx.Ctx, buyer domain.Address, req *settlement.BuyRequest) (*settlement.Receipt, error) {
	buyer = buyer.ToLower()
	id := listing.Id{ListingId: req.ListingId}

	var receipt *settlement.Receipt

	err := im.q.RunWithTransaction(ctx, func(ctx bCtx.Ctx) error {
		l, err := im.listingRepo.FindOne(ctx, id)
		if err == domain.ErrNotFound {
			return domain.ErrNotFound
		} else if err != nil {
			ctx.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("failed to listingRepo.FindOne")
			return err
		}

		if !l.IsActive {
			return domain.ErrInactiveListing
		}

		// the payee is always the stored owner
		seller := l.Owner

		// funds move before the asset
		if err := im.walletRepo.Transfer(ctx, buyer, seller, l.Price); err != nil {
			if err != domain.ErrInsufficientFunds {
				ctx.WithFields(log.Fields{
					"err":   err,
					"buyer": buyer,
					"price": l.Price,
				}).Error("failed to walletRepo.Transfer")
			}
			return err
		}

		// a supplied seller account is only a cross-check against the payee;
		// an uncovered price is reported before a mismatch, the aborted
		// transaction undoes the move
		if !req.SellerAccount.IsEmpty() && !req.SellerAccount.Equals(seller) {
			return domain.ErrUnauthorized
		}

		if err := im.custodyRepo.TransferUnit(ctx, l.AssetId, seller, buyer, seller); err != nil {
			if err != domain.ErrTransferFailed {
				ctx.WithFields(log.Fields{
					"err":     err,
					"assetId": l.AssetId,
				}).Error("failed to custodyRepo.TransferUnit")
			}
			return err
		}

		if err := im.listingRepo.Deactivate(ctx, id); err != nil {
			// a concurrent settlement got there first, abort everything
			return err
		}

		receipt = &settlement.Receipt{
			ListingId: l.ListingId,
			AssetId:   l.AssetId,
			Price:     l.Price,
			Seller:    seller,
			Buyer:     buyer,
			SettledAt: time.Now(),
		}
		return nil
	})

	if err != nil {
		im.met.BumpSum("buy.err", 1, "reason", err.Error())
		return nil, err
	}

	im.met.BumpSum("buy.ok", 1)
	return receipt, nil
}
