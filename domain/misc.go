package domain

import "strings"

// Table is a mongo collection name
type Table string

const (
	TableListings Table = "listings"
	TableWallets  Table = "wallets"
	TableHoldings Table = "holdings"
	TableAccounts Table = "accounts"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// AssetId identifies one non-fungible unit held in custody
type AssetId string

func (i AssetId) String() string {
	return string(i)
}

// ListingId keys exactly one listing record for its whole lifetime
type ListingId string

func (i ListingId) String() string {
	return string(i)
}
