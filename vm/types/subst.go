package types

import (
	"github.com/movekit/movevm/vm/errors"
)

// Subst replaces every TypeParam in t with the corresponding entry of
// typeArgs, returning a fresh type of the same shape. Types without
// TypeParam occurrences come back structurally identical. A TypeParam index
// outside typeArgs is a loader bug and fails with an invariant violation.
func Subst(t Type, typeArgs []Type) (Type, error) {
	switch ty := t.(type) {
	case TypeParam:
		if ty.Index < 0 || ty.Index >= len(typeArgs) {
			return nil, errors.NewInvariantViolationErrorf(
				"type substitution failed: index out of bounds -- len %d got %d",
				len(typeArgs), ty.Index)
		}
		return typeArgs[ty.Index], nil

	case BoolType, U8Type, U64Type, U128Type, AddressType, SignerType:
		return t, nil

	case VectorType:
		elem, err := Subst(ty.Elem, typeArgs)
		if err != nil {
			return nil, err
		}
		return VectorType{Elem: elem}, nil

	case ReferenceType:
		referenced, err := Subst(ty.Referenced, typeArgs)
		if err != nil {
			return nil, err
		}
		return ReferenceType{Referenced: referenced}, nil

	case MutableReferenceType:
		referenced, err := Subst(ty.Referenced, typeArgs)
		if err != nil {
			return nil, err
		}
		return MutableReferenceType{Referenced: referenced}, nil

	case *StructType:
		return ty.Subst(typeArgs)

	default:
		return nil, errors.NewInvariantViolationErrorf(
			"type substitution failed: unexpected type %s", debugString(t))
	}
}

// Subst substitutes typeArgs into both the type arguments and the field
// types of the descriptor. Declaration data (address, module, name, resource
// flag) is unchanged.
func (s *StructType) Subst(typeArgs []Type) (*StructType, error) {
	args := make([]Type, 0, len(s.TypeArgs))
	for _, arg := range s.TypeArgs {
		substituted, err := Subst(arg, typeArgs)
		if err != nil {
			return nil, err
		}
		args = append(args, substituted)
	}

	fields := make([]Type, 0, len(s.Fields))
	for _, field := range s.Fields {
		substituted, err := Subst(field, typeArgs)
		if err != nil {
			return nil, err
		}
		fields = append(fields, substituted)
	}

	return &StructType{
		Address:    s.Address,
		Module:     s.Module,
		Name:       s.Name,
		IsResource: s.IsResource,
		TypeArgs:   args,
		Fields:     fields,
	}, nil
}
