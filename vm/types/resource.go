package types

import (
	"github.com/movekit/movevm/vm/errors"
)

// IsResource reports whether values of the given type fall under the
// resource discipline, without deriving a full layout. Struct classification
// follows the declared flag alone; field types are not inspected. Vectors
// take on the classification of their element. References are always
// copyable handles.
//
// Fully resolved types are required here: the classification of an
// unresolved type parameter is an explicit precondition violation, never
// guessed.
func IsResource(t Type) (bool, error) {
	switch ty := t.(type) {
	case BoolType, U8Type, U64Type, U128Type, AddressType,
		ReferenceType, MutableReferenceType:
		return false, nil

	case SignerType:
		return true, nil

	case VectorType:
		return IsResource(ty.Elem)

	case *StructType:
		return ty.IsResource, nil

	default:
		return false, errors.NewInvariantViolationErrorf(
			"cannot check if %s is a resource", debugString(t))
	}
}
