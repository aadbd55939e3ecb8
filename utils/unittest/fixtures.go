// Package unittest provides test fixtures for the type algebra: seeded
// random generation of fully resolved type and struct trees, bounded by
// depth. Test-only, never imported by production code.
package unittest

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/movekit/movevm/model/move"
	"github.com/movekit/movevm/vm/types"
)

// GetPRG returns a deterministic math/rand PRG that can be used for
// deterministic randomness in tests only. The PRG seed is logged in case the
// test iteration needs to be reproduced.
func GetPRG(t *testing.T) *rand.Rand {
	random := time.Now().UnixNano()
	t.Logf("rng seed is %d", random)
	rng := rand.New(rand.NewSource(random))
	return rng
}

// AddressFixture returns a random account address.
func AddressFixture(rng *rand.Rand) move.AccountAddress {
	var b [move.AddressLength]byte
	rng.Read(b[:])
	return move.BytesToAddress(b[:])
}

// IdentifierFixture returns a random valid identifier.
func IdentifierFixture(rng *rand.Rand) move.Identifier {
	id, err := move.NewIdentifier(fmt.Sprintf("X%d", rng.Intn(1_000_000)))
	if err != nil {
		panic(err)
	}
	return id
}

// LeafTypeFixture returns a random primitive type.
func LeafTypeFixture(rng *rand.Rand) types.Type {
	leaves := []types.Type{
		types.BoolType{},
		types.U8Type{},
		types.U64Type{},
		types.U128Type{},
		types.AddressType{},
		types.SignerType{},
	}
	return leaves[rng.Intn(len(leaves))]
}

// TypeFixture returns a random fully resolved type tree: a primitive, a
// vector or a struct, nested at most depth levels deep. The trees are always
// concrete (no references, no type parameters), so every canonicalizing
// operation succeeds on them.
func TypeFixture(rng *rand.Rand, depth int) types.Type {
	if depth <= 0 {
		return LeafTypeFixture(rng)
	}
	switch rng.Intn(4) {
	case 0:
		return types.VectorType{Elem: TypeFixture(rng, depth-1)}
	case 1:
		return StructTypeFixture(rng, depth-1)
	default:
		return LeafTypeFixture(rng)
	}
}

// StructTypeFixture returns a random fully resolved struct descriptor with
// up to 3 type arguments and up to 5 fields.
func StructTypeFixture(rng *rand.Rand, depth int) *types.StructType {
	typeArgs := make([]types.Type, rng.Intn(4))
	for i := range typeArgs {
		typeArgs[i] = TypeFixture(rng, depth)
	}
	fields := make([]types.Type, rng.Intn(6))
	for i := range fields {
		fields[i] = TypeFixture(rng, depth)
	}
	return &types.StructType{
		Address:    AddressFixture(rng),
		Module:     IdentifierFixture(rng),
		Name:       IdentifierFixture(rng),
		IsResource: rng.Intn(2) == 0,
		TypeArgs:   typeArgs,
		Fields:     fields,
	}
}
