package types

import (
	"github.com/movekit/movevm/model/move"
	"github.com/movekit/movevm/vm/errors"
)

// Tag derives the canonical type tag of a fully resolved type. The tag
// identifies the type for storage addressing; for structs it covers the
// declaration site and type arguments only, never the field types.
// References and unresolved type parameters have no tag and fail with an
// invariant violation.
func Tag(t Type) (move.TypeTag, error) {
	switch ty := t.(type) {
	case BoolType:
		return move.BoolTag{}, nil
	case U8Type:
		return move.U8Tag{}, nil
	case U64Type:
		return move.U64Tag{}, nil
	case U128Type:
		return move.U128Tag{}, nil
	case AddressType:
		return move.AddressTag{}, nil
	case SignerType:
		return move.SignerTag{}, nil

	case VectorType:
		elem, err := Tag(ty.Elem)
		if err != nil {
			return nil, err
		}
		return move.VectorTag{Elem: elem}, nil

	case *StructType:
		tag, err := ty.Tag()
		if err != nil {
			return nil, err
		}
		return tag, nil

	default:
		return nil, errors.NewInvariantViolationErrorf(
			"cannot derive type tag for %s", debugString(t))
	}
}

// Tag derives the canonical struct tag of the descriptor.
func (s *StructType) Tag() (move.StructTag, error) {
	args := make([]move.TypeTag, 0, len(s.TypeArgs))
	for _, arg := range s.TypeArgs {
		tag, err := Tag(arg)
		if err != nil {
			return move.StructTag{}, err
		}
		args = append(args, tag)
	}
	return move.StructTag{
		Address:  s.Address,
		Module:   s.Module,
		Name:     s.Name,
		TypeArgs: args,
	}, nil
}

// ResourceKey derives the storage key under which a value of this struct
// type lives. Fails for descriptors that have no tag.
func (s *StructType) ResourceKey() ([]byte, error) {
	tag, err := s.Tag()
	if err != nil {
		return nil, err
	}
	return tag.ResourceKey()
}
