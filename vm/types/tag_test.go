package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movekit/movevm/model/move"
	"github.com/movekit/movevm/utils/unittest"
	"github.com/movekit/movevm/vm/errors"
	"github.com/movekit/movevm/vm/types"
)

func TestTag(t *testing.T) {
	t.Run("primitives map one to one", func(t *testing.T) {
		cases := []struct {
			input    types.Type
			expected move.TypeTag
		}{
			{types.BoolType{}, move.BoolTag{}},
			{types.U8Type{}, move.U8Tag{}},
			{types.U64Type{}, move.U64Tag{}},
			{types.U128Type{}, move.U128Tag{}},
			{types.AddressType{}, move.AddressTag{}},
			{types.SignerType{}, move.SignerTag{}},
		}
		for _, c := range cases {
			tag, err := types.Tag(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.expected, tag)
		}
	})

	t.Run("vector wraps the element tag", func(t *testing.T) {
		tag, err := types.Tag(types.VectorType{Elem: types.VectorType{Elem: types.U8Type{}}})
		require.NoError(t, err)
		assert.Equal(t, move.VectorTag{Elem: move.VectorTag{Elem: move.U8Tag{}}}, tag)
	})

	t.Run("struct tag covers declaration and instantiation only", func(t *testing.T) {
		tag, err := types.Tag(coinOfU64())
		require.NoError(t, err)
		assert.Equal(t, move.StructTag{
			Address:  move.CoreCodeAddress,
			Module:   "M",
			Name:     "Coin",
			TypeArgs: []move.TypeTag{move.U64Tag{}},
		}, tag)
	})

	t.Run("field types do not contribute to identity", func(t *testing.T) {
		one := coinOfU64()
		other := coinOfU64()
		other.Fields = []types.Type{types.BoolType{}, types.AddressType{}}

		oneTag, err := types.Tag(one)
		require.NoError(t, err)
		otherTag, err := types.Tag(other)
		require.NoError(t, err)
		assert.Equal(t, oneTag, otherTag)
	})

	t.Run("references and parameters fail", func(t *testing.T) {
		inputs := []types.Type{
			types.ReferenceType{Referenced: types.U64Type{}},
			types.MutableReferenceType{Referenced: types.U64Type{}},
			types.TypeParam{Index: 0},
		}
		for _, input := range inputs {
			_, err := types.Tag(input)
			require.Error(t, err)
			assert.True(t, errors.IsInvariantViolationError(err))
		}
	})

	t.Run("failure surfaces from nested positions", func(t *testing.T) {
		nested := []types.Type{
			types.VectorType{Elem: types.TypeParam{Index: 0}},
			types.VectorType{Elem: types.ReferenceType{Referenced: types.BoolType{}}},
			&types.StructType{
				Address:  move.CoreCodeAddress,
				Module:   "M",
				Name:     "S",
				TypeArgs: []types.Type{types.TypeParam{Index: 1}},
			},
		}
		for _, input := range nested {
			_, err := types.Tag(input)
			require.Error(t, err)
			assert.True(t, errors.IsInvariantViolationError(err))
		}
	})

	t.Run("deterministic on concrete trees", func(t *testing.T) {
		rng := unittest.GetPRG(t)
		for i := 0; i < 100; i++ {
			input := unittest.TypeFixture(rng, 4)
			first, err := types.Tag(input)
			require.NoError(t, err)
			second, err := types.Tag(input)
			require.NoError(t, err)
			assert.Equal(t, first, second)

			firstEnc, err := move.EncodeTypeTag(first)
			require.NoError(t, err)
			secondEnc, err := move.EncodeTypeTag(second)
			require.NoError(t, err)
			assert.Equal(t, firstEnc, secondEnc)
		}
	})
}

func TestStructResourceKey(t *testing.T) {
	t.Run("matches the tag's key", func(t *testing.T) {
		key, err := coinOfU64().ResourceKey()
		require.NoError(t, err)

		tag, err := coinOfU64().Tag()
		require.NoError(t, err)
		tagKey, err := tag.ResourceKey()
		require.NoError(t, err)

		assert.Equal(t, tagKey, key)
	})

	t.Run("fails for unresolved descriptors", func(t *testing.T) {
		_, err := genericCoin().ResourceKey()
		require.Error(t, err)
		assert.True(t, errors.IsInvariantViolationError(err))
	})
}
