package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movekit/movevm/model/move"
	"github.com/movekit/movevm/vm/errors"
	"github.com/movekit/movevm/vm/types"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		input    types.Type
		expected string
	}{
		{types.BoolType{}, "bool"},
		{types.U8Type{}, "u8"},
		{types.U64Type{}, "u64"},
		{types.U128Type{}, "u128"},
		{types.AddressType{}, "address"},
		{types.SignerType{}, "signer"},
		{types.VectorType{Elem: types.U8Type{}}, "vector<u8>"},
		{
			types.VectorType{Elem: types.VectorType{Elem: types.AddressType{}}},
			"vector<vector<address>>",
		},
		{coinOfU64(), "M::Coin<u64>"},
		{
			&types.StructType{
				Address: move.CoreCodeAddress,
				Module:  "M",
				Name:    "Empty",
			},
			"M::Empty",
		},
		{
			&types.StructType{
				Address:  move.CoreCodeAddress,
				Module:   "Exchange",
				Name:     "Pair",
				TypeArgs: []types.Type{types.U64Type{}, coinOfU64()},
			},
			"Exchange::Pair<u64, M::Coin<u64>>",
		},
		{types.ReferenceType{Referenced: types.U64Type{}}, "&u64"},
		{types.MutableReferenceType{Referenced: coinOfU64()}, "&mut M::Coin<u64>"},
		{
			types.ReferenceType{Referenced: types.VectorType{Elem: types.U8Type{}}},
			"&vector<u8>",
		},
	}
	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			formatted, err := types.Format(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.expected, formatted)
		})
	}

	t.Run("unresolved parameters fail", func(t *testing.T) {
		inputs := []types.Type{
			types.TypeParam{Index: 0},
			types.VectorType{Elem: types.TypeParam{Index: 0}},
			types.ReferenceType{Referenced: types.TypeParam{Index: 1}},
			genericCoin(),
		}
		for _, input := range inputs {
			_, err := types.Format(input)
			require.Error(t, err)
			assert.True(t, errors.IsInvariantViolationError(err))
		}
	})
}
