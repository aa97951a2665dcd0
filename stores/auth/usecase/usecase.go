package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/marketplace/base/ctx"
	"github.com/x-xyz/marketplace/base/ethereum"
	"github.com/x-xyz/marketplace/base/log"
	"github.com/x-xyz/marketplace/domain"
	"github.com/x-xyz/marketplace/domain/account"
)

type impl struct {
	jwtSecret          []byte
	signingMsgTemplate string
	account            account.Usecase
}

func New(jwtSecret, signingMsgTemplate string, account account.Usecase) domain.AuthUsecase {
	return &impl{
		jwtSecret:          []byte(jwtSecret),
		signingMsgTemplate: signingMsgTemplate,
		account:            account,
	}
}

// SignToken verifies the personal-sign signature over the account's current
// nonce message, rotates the nonce and issues an access token
func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	address = address.ToLower()

	acc, err := im.account.GetOrCreate(ctx, address)
	if err != nil {
		return "", err
	}

	msg := fmt.Sprintf(im.signingMsgTemplate, acc.Nonce)
	valid, err := ethereum.ValidateMsgSignature([]byte(msg), signature, string(address))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("ethereum.ValidateMsgSignature failed")
		return "", domain.ErrInvalidSignature
	}
	if !valid {
		return "", domain.ErrInvalidSignature
	}

	// a nonce authorizes exactly one sign-in
	if _, err := im.account.RotateNonce(ctx, address); err != nil {
		return "", err
	}

	claims := domain.JwtCustomClaims{
		Address: string(address),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", domain.ErrUnauthorized
}
