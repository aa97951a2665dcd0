package listing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplayPrice(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		price int64
		want  string
	}{
		{0, "0"},
		{1, "0.000000001"},
		{1500000000, "1.5"},
		{1000000000, "1"},
		{123456789012, "123.456789012"},
	}

	for _, c := range cases {
		l := &Listing{Price: c.price}
		req.Equal(c.want, l.DisplayPrice())
	}
}
