package usecase_test

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/account"
	mAccount "github.com/x-xyz/marketplace/domain/account/mocks"
	"github.com/x-xyz/marketplace/stores/auth/usecase"
)

const signingMsgTemplate = "Welcome! Sign in with nonce: %s"

func TestSignAndParseToken(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	key, err := crypto.GenerateKey()
	req.NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()).ToLower()
	nonce := "nonce-1"

	msg := fmt.Sprintf(signingMsgTemplate, nonce)
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
	req.NoError(err)
	sig[crypto.RecoveryIDOffset] += 27

	mockAccountUC := &mAccount.Usecase{}
	mockAccountUC.On("GetOrCreate", mock.Anything, address).
		Return(&account.Account{Address: address, Nonce: nonce}, nil)
	mockAccountUC.On("RotateNonce", mock.Anything, address).Return("nonce-2", nil)

	u := usecase.New("jwt-secret", signingMsgTemplate, mockAccountUC)
	tkn, err := u.SignToken(c, address, hexutil.Encode(sig))
	req.NoError(err)
	req.NotEmpty(tkn)

	ads, err := u.ParseToken(c, tkn)
	req.NoError(err)
	req.Equal(string(address), ads)

	mockAccountUC.AssertExpectations(t)
}

func TestSignTokenBadSignature(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	key, err := crypto.GenerateKey()
	req.NoError(err)
	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()).ToLower()

	// signature over the wrong nonce
	msg := fmt.Sprintf(signingMsgTemplate, "stale-nonce")
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
	req.NoError(err)
	sig[crypto.RecoveryIDOffset] += 27

	mockAccountUC := &mAccount.Usecase{}
	mockAccountUC.On("GetOrCreate", mock.Anything, address).
		Return(&account.Account{Address: address, Nonce: "current-nonce"}, nil)

	u := usecase.New("jwt-secret", signingMsgTemplate, mockAccountUC)
	_, err = u.SignToken(c, address, hexutil.Encode(sig))
	req.Equal(domain.ErrInvalidSignature, err)
	mockAccountUC.AssertNotCalled(t, "RotateNonce", mock.Anything, mock.Anything)
}

func TestParseTokenGarbage(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	u := usecase.New("jwt-secret", signingMsgTemplate, &mAccount.Usecase{})
	_, err := u.ParseToken(c, "not-a-token")
	req.Error(err)
}
