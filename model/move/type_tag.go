package move

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"

	cborcodec "github.com/movekit/movevm/model/encoding/cbor"
)

// TypeTag is the canonical, fully concrete identity of a runtime type. Tags
// carry no reference variants and no unresolved type parameters; they exclude
// field layout, so the identity of a struct depends only on its declaration
// site and its instantiation. Tags are used verbatim as part of storage
// addresses and therefore have a deterministic binary encoding.
//
// The variant set is closed: BoolTag, U8Tag, U64Tag, U128Tag, AddressTag,
// SignerTag, VectorTag and StructTag.
type TypeTag interface {
	fmt.Stringer
	isTypeTag()
}

type BoolTag struct{}
type U8Tag struct{}
type U64Tag struct{}
type U128Tag struct{}
type AddressTag struct{}
type SignerTag struct{}

// VectorTag identifies a homogeneous vector of Elem values.
type VectorTag struct {
	Elem TypeTag
}

// StructTag identifies an instantiated struct by declaration site plus
// type arguments.
type StructTag struct {
	Address  AccountAddress
	Module   Identifier
	Name     Identifier
	TypeArgs []TypeTag
}

func (BoolTag) isTypeTag()    {}
func (U8Tag) isTypeTag()      {}
func (U64Tag) isTypeTag()     {}
func (U128Tag) isTypeTag()    {}
func (AddressTag) isTypeTag() {}
func (SignerTag) isTypeTag()  {}
func (VectorTag) isTypeTag()  {}
func (StructTag) isTypeTag()  {}

func (BoolTag) String() string    { return "bool" }
func (U8Tag) String() string      { return "u8" }
func (U64Tag) String() string     { return "u64" }
func (U128Tag) String() string    { return "u128" }
func (AddressTag) String() string { return "address" }
func (SignerTag) String() string  { return "signer" }

func (t VectorTag) String() string {
	return fmt.Sprintf("vector<%s>", t.Elem)
}

// String returns the canonical rendering of the tag, in the form
// 0x1::Module::Name<T1, T2>. The address is printed with leading zeros
// trimmed.
func (t StructTag) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "0x%s::%s::%s", t.Address.Short(), t.Module, t.Name)
	if len(t.TypeArgs) > 0 {
		b.WriteString("<")
		for i, arg := range t.TypeArgs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(arg.String())
		}
		b.WriteString(">")
	}
	return b.String()
}

// Wire discriminants of the canonical tag encoding. These are part of the
// storage address format and must never be reordered.
const (
	wireTagBool uint8 = iota + 1
	wireTagU8
	wireTagU64
	wireTagU128
	wireTagAddress
	wireTagSigner
	wireTagVector
	wireTagStruct
)

type wireTag struct {
	Kind   uint8          `cbor:"0,keyasint"`
	Elem   *wireTag       `cbor:"1,keyasint,omitempty"`
	Struct *wireStructTag `cbor:"2,keyasint,omitempty"`
}

type wireStructTag struct {
	Address  []byte    `cbor:"0,keyasint"`
	Module   string    `cbor:"1,keyasint"`
	Name     string    `cbor:"2,keyasint"`
	TypeArgs []wireTag `cbor:"3,keyasint"`
}

func toWireTag(t TypeTag) wireTag {
	switch tag := t.(type) {
	case BoolTag:
		return wireTag{Kind: wireTagBool}
	case U8Tag:
		return wireTag{Kind: wireTagU8}
	case U64Tag:
		return wireTag{Kind: wireTagU64}
	case U128Tag:
		return wireTag{Kind: wireTagU128}
	case AddressTag:
		return wireTag{Kind: wireTagAddress}
	case SignerTag:
		return wireTag{Kind: wireTagSigner}
	case VectorTag:
		elem := toWireTag(tag.Elem)
		return wireTag{Kind: wireTagVector, Elem: &elem}
	case StructTag:
		st := tag.toWire()
		return wireTag{Kind: wireTagStruct, Struct: &st}
	default:
		panic(fmt.Sprintf("unexpected type tag %T", t))
	}
}

func (t StructTag) toWire() wireStructTag {
	args := make([]wireTag, 0, len(t.TypeArgs))
	for _, arg := range t.TypeArgs {
		args = append(args, toWireTag(arg))
	}
	return wireStructTag{
		Address:  t.Address.Bytes(),
		Module:   t.Module.String(),
		Name:     t.Name.String(),
		TypeArgs: args,
	}
}

// EncodeTypeTag returns the deterministic binary encoding of a type tag.
// Structurally equal tags always encode to byte-identical output.
func EncodeTypeTag(t TypeTag) ([]byte, error) {
	enc, err := cborcodec.EncMode.Marshal(toWireTag(t))
	if err != nil {
		return nil, fmt.Errorf("could not encode type tag (%s): %w", t, err)
	}
	return enc, nil
}

// ResourceKeyPrefix is the domain tag prefixed to resource storage keys,
// distinguishing them from other access-path kinds.
const ResourceKeyPrefix = byte(0x01)

// ResourceKey derives the storage address key under which a resource
// identified by this tag lives: the domain tag followed by the SHA3-256 hash
// of the tag's canonical encoding. Stable across restarts.
func (t StructTag) ResourceKey() ([]byte, error) {
	enc, err := cborcodec.EncMode.Marshal(t.toWire())
	if err != nil {
		return nil, fmt.Errorf("could not encode struct tag (%s): %w", t, err)
	}
	hash := sha3.Sum256(enc)
	return append([]byte{ResourceKeyPrefix}, hash[:]...), nil
}
