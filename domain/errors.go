package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrDuplicateListing will throw if a listing identifier is already occupied
	ErrDuplicateListing = errors.New("listing already exists")
	// ErrUnauthorized will throw if the caller is not entitled to the action
	ErrUnauthorized = errors.New("unauthorized action")
	// ErrInactiveListing will throw if the listing was already sold or cancelled
	ErrInactiveListing = errors.New("listing is not active")
	// ErrInsufficientFunds will throw if the buyer balance does not cover the price
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrTransferFailed will throw if a currency or custody move is rejected
	ErrTransferFailed = errors.New("transfer failed")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
)
