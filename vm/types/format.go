package types

import (
	"strings"

	"github.com/movekit/movevm/vm/errors"
)

// Format renders the canonical human-readable form of a fully resolved type:
// primitives as lowercase keywords, vector<T>, Module::Name<T1, T2> for
// structs instantiated with arguments, &T and &mut T for references. The
// output is advisory, for diagnostics; it is never parsed back into a type.
//
// Unresolved type parameters have no canonical surface syntax outside a
// declaration context and fail with an invariant violation.
func Format(t Type) (string, error) {
	var b strings.Builder
	if err := writeType(&b, t); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeType(b *strings.Builder, t Type) error {
	switch ty := t.(type) {
	case BoolType:
		b.WriteString("bool")
	case U8Type:
		b.WriteString("u8")
	case U64Type:
		b.WriteString("u64")
	case U128Type:
		b.WriteString("u128")
	case AddressType:
		b.WriteString("address")
	case SignerType:
		b.WriteString("signer")

	case VectorType:
		b.WriteString("vector<")
		if err := writeType(b, ty.Elem); err != nil {
			return err
		}
		b.WriteString(">")

	case *StructType:
		return writeStructType(b, ty)

	case ReferenceType:
		b.WriteString("&")
		return writeType(b, ty.Referenced)

	case MutableReferenceType:
		b.WriteString("&mut ")
		return writeType(b, ty.Referenced)

	default:
		return errors.NewInvariantViolationErrorf(
			"cannot print out uninstantiated type %s", debugString(t))
	}
	return nil
}

func writeStructType(b *strings.Builder, s *StructType) error {
	b.WriteString(s.Module.String())
	b.WriteString("::")
	b.WriteString(s.Name.String())
	if len(s.TypeArgs) == 0 {
		return nil
	}
	b.WriteString("<")
	for i, arg := range s.TypeArgs {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := writeType(b, arg); err != nil {
			return err
		}
	}
	b.WriteString(">")
	return nil
}
