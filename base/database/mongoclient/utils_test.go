package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketplace/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	req := require.New(t)

	type id struct {
		ListingId string `bson:"listingId"`
	}

	type patchable struct {
		IsActive *bool  `bson:"isActive,omitempty"`
		Nonce    string `bson:"nonce,omitempty"`
	}

	m, err := MakeBsonM(id{ListingId: "abc"})
	req.NoError(err)
	req.Equal(bson.M{"listingId": "abc"}, m)

	m, err = MakeBsonM(&patchable{IsActive: ptr.Bool(false)})
	req.NoError(err)
	req.Equal(bson.M{"isActive": false}, m)

	// omitempty zero values are skipped
	m, err = MakeBsonM(patchable{})
	req.NoError(err)
	req.Equal(bson.M{}, m)
}
