// Package types implements the runtime type algebra of the VM: the loaded,
// fully or partially resolved representation of types used while
// instantiating generics and executing bytecode.
//
// The variant set is closed. Every algorithm in this package is a total
// switch over it: BoolType, U8Type, U64Type, U128Type, AddressType,
// SignerType, VectorType, *StructType, ReferenceType, MutableReferenceType
// and TypeParam. TypeParam denotes an unresolved generic slot; it is only
// valid as input to substitution and must never reach tag, layout, kind or
// format derivation. Types are immutable once constructed, exclusively owned
// top-down and acyclic, so all algorithms are pure structural recursions.
package types

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/movekit/movevm/model/move"
)

// Type is a runtime type. Implementations are the closed variant set listed
// in the package documentation.
type Type interface {
	isType()
}

type BoolType struct{}
type U8Type struct{}
type U64Type struct{}
type U128Type struct{}
type AddressType struct{}

// SignerType is the transaction-signer capability type, the one primitive
// that classifies as a resource.
type SignerType struct{}

// VectorType is a homogeneous vector of Elem values.
type VectorType struct {
	Elem Type
}

// ReferenceType is an immutable borrow of the referenced type. References
// have no value representation: they cannot be stored, laid out or tagged.
type ReferenceType struct {
	Referenced Type
}

// MutableReferenceType is a mutable borrow of the referenced type.
type MutableReferenceType struct {
	Referenced Type
}

// TypeParam is an unresolved generic slot, referring by position into the
// type arguments of the enclosing declaration.
type TypeParam struct {
	Index int
}

// StructType is the loaded descriptor of an instantiated or partially
// instantiated struct. Address, Module and Name locate the declaration
// on chain; IsResource is the declared classification and is authoritative,
// never recomputed from field types. TypeArgs holds the instantiation and
// Fields the declared field types in order; field order is wire-significant.
//
// TypeArgs length matching the declared generic arity is enforced by the
// loader, not re-validated here.
type StructType struct {
	Address    move.AccountAddress
	Module     move.Identifier
	Name       move.Identifier
	IsResource bool
	TypeArgs   []Type
	Fields     []Type
}

func (BoolType) isType()             {}
func (U8Type) isType()               {}
func (U64Type) isType()              {}
func (U128Type) isType()             {}
func (AddressType) isType()          {}
func (SignerType) isType()           {}
func (VectorType) isType()           {}
func (*StructType) isType()          {}
func (ReferenceType) isType()        {}
func (MutableReferenceType) isType() {}
func (TypeParam) isType()            {}

// debugString renders any type, including unresolved and reference-bearing
// ones, for use in error messages. This is distinct from Format, which is
// the canonical rendering and fails on types with no canonical surface
// syntax.
func debugString(t Type) string {
	switch ty := t.(type) {
	case BoolType:
		return "bool"
	case U8Type:
		return "u8"
	case U64Type:
		return "u64"
	case U128Type:
		return "u128"
	case AddressType:
		return "address"
	case SignerType:
		return "signer"
	case VectorType:
		return fmt.Sprintf("vector<%s>", debugString(ty.Elem))
	case *StructType:
		var b strings.Builder
		fmt.Fprintf(&b, "%s::%s", ty.Module, ty.Name)
		if len(ty.TypeArgs) > 0 {
			b.WriteString("<")
			for i, arg := range ty.TypeArgs {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(debugString(arg))
			}
			b.WriteString(">")
		}
		return b.String()
	case ReferenceType:
		return fmt.Sprintf("&%s", debugString(ty.Referenced))
	case MutableReferenceType:
		return fmt.Sprintf("&mut %s", debugString(ty.Referenced))
	case TypeParam:
		return fmt.Sprintf("T%d", ty.Index)
	default:
		return fmt.Sprintf("unknown type %T", t)
	}
}

// Validate checks the structural well-formedness of the descriptor and
// collects every problem found: invalid identifiers and missing nested
// types. It is advisory, used by tooling and tests on untrusted input; the
// algorithms of this package assume loader-produced descriptors and do not
// call it.
func (s *StructType) Validate() error {
	var result *multierror.Error
	if err := s.Module.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid module name: %w", err))
	}
	if err := s.Name.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid struct name: %w", err))
	}
	for i, arg := range s.TypeArgs {
		if err := validateType(arg); err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid type argument %d: %w", i, err))
		}
	}
	for i, field := range s.Fields {
		if err := validateType(field); err != nil {
			result = multierror.Append(result, fmt.Errorf("invalid field %d: %w", i, err))
		}
	}
	return result.ErrorOrNil()
}

func validateType(t Type) error {
	switch ty := t.(type) {
	case nil:
		return fmt.Errorf("type is missing")
	case VectorType:
		return validateType(ty.Elem)
	case ReferenceType:
		return validateType(ty.Referenced)
	case MutableReferenceType:
		return validateType(ty.Referenced)
	case *StructType:
		if ty == nil {
			return fmt.Errorf("struct type is missing")
		}
		return ty.Validate()
	case TypeParam:
		if ty.Index < 0 {
			return fmt.Errorf("negative type parameter index %d", ty.Index)
		}
		return nil
	default:
		return nil
	}
}
