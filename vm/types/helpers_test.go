package types_test

import (
	"math/rand"

	"github.com/movekit/movevm/model/move"
	"github.com/movekit/movevm/vm/types"
)

// genericCoin returns the descriptor of 0x1::M::Coin<T>, a resource struct
// with a single type parameter and a single field of that parameter type.
func genericCoin() *types.StructType {
	return &types.StructType{
		Address:    move.CoreCodeAddress,
		Module:     "M",
		Name:       "Coin",
		IsResource: true,
		TypeArgs:   []types.Type{types.TypeParam{Index: 0}},
		Fields:     []types.Type{types.TypeParam{Index: 0}},
	}
}

// coinOfU64 returns 0x1::M::Coin<u64> built directly, without substitution.
func coinOfU64() *types.StructType {
	return &types.StructType{
		Address:    move.CoreCodeAddress,
		Module:     "M",
		Name:       "Coin",
		IsResource: true,
		TypeArgs:   []types.Type{types.U64Type{}},
		Fields:     []types.Type{types.U64Type{}},
	}
}

// genericTypeFixture returns a random type tree that may contain TypeParam
// nodes with indices below arity, alongside primitives, vectors and structs.
func genericTypeFixture(rng *rand.Rand, depth int, arity int) types.Type {
	if arity > 0 && rng.Intn(3) == 0 {
		return types.TypeParam{Index: rng.Intn(arity)}
	}
	if depth <= 0 {
		return types.U64Type{}
	}
	switch rng.Intn(3) {
	case 0:
		return types.VectorType{Elem: genericTypeFixture(rng, depth-1, arity)}
	case 1:
		return &types.StructType{
			Address:    move.CoreCodeAddress,
			Module:     "M",
			Name:       "S",
			IsResource: rng.Intn(2) == 0,
			TypeArgs:   []types.Type{genericTypeFixture(rng, depth-1, arity)},
			Fields: []types.Type{
				genericTypeFixture(rng, depth-1, arity),
				genericTypeFixture(rng, depth-1, arity),
			},
		}
	default:
		return types.BoolType{}
	}
}
