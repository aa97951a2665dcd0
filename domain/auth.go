package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/x-xyz/marketplace/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken verifies the signature over the account's current nonce
	// message and issues an access token for the address
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
