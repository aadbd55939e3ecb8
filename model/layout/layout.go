// Package layout defines the canonical value layout: the ordered, structural
// description of how a runtime value is laid out for encoding. Layouts are
// consumed by the value encoder/decoder and by cost accounting; they carry no
// metadata beyond structure, and equal layouts always encode byte-identically.
package layout

import (
	"fmt"
	"strings"

	cborcodec "github.com/movekit/movevm/model/encoding/cbor"
)

// TypeLayout describes the value layout of a single runtime type. The
// variant set is closed: the leaf layouts BoolLayout, U8Layout, U64Layout,
// U128Layout, AddressLayout and SignerLayout, plus the composites
// VectorLayout and StructLayout.
type TypeLayout interface {
	fmt.Stringer
	isTypeLayout()
}

type BoolLayout struct{}
type U8Layout struct{}
type U64Layout struct{}
type U128Layout struct{}
type AddressLayout struct{}
type SignerLayout struct{}

// VectorLayout is the layout of a homogeneous vector of Elem values.
type VectorLayout struct {
	Elem TypeLayout
}

// StructLayout is the ordered aggregate of a struct's field layouts. Field
// order is wire-significant.
type StructLayout struct {
	Fields []TypeLayout
}

func (BoolLayout) isTypeLayout()    {}
func (U8Layout) isTypeLayout()      {}
func (U64Layout) isTypeLayout()     {}
func (U128Layout) isTypeLayout()    {}
func (AddressLayout) isTypeLayout() {}
func (SignerLayout) isTypeLayout()  {}
func (VectorLayout) isTypeLayout()  {}
func (StructLayout) isTypeLayout()  {}

func (BoolLayout) String() string    { return "bool" }
func (U8Layout) String() string      { return "u8" }
func (U64Layout) String() string     { return "u64" }
func (U128Layout) String() string    { return "u128" }
func (AddressLayout) String() string { return "address" }
func (SignerLayout) String() string  { return "signer" }

func (l VectorLayout) String() string {
	return fmt.Sprintf("vector<%s>", l.Elem)
}

func (l StructLayout) String() string {
	var b strings.Builder
	b.WriteString("struct{")
	for i, field := range l.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(field.String())
	}
	b.WriteString("}")
	return b.String()
}

// Wire discriminants of the canonical layout encoding. Part of the encoder
// contract, must never be reordered.
const (
	wireLayoutBool uint8 = iota + 1
	wireLayoutU8
	wireLayoutU64
	wireLayoutU128
	wireLayoutAddress
	wireLayoutSigner
	wireLayoutVector
	wireLayoutStruct
)

type wireLayout struct {
	Kind   uint8        `cbor:"0,keyasint"`
	Elem   *wireLayout  `cbor:"1,keyasint,omitempty"`
	Fields []wireLayout `cbor:"2,keyasint,omitempty"`
}

func toWireLayout(l TypeLayout) wireLayout {
	switch layout := l.(type) {
	case BoolLayout:
		return wireLayout{Kind: wireLayoutBool}
	case U8Layout:
		return wireLayout{Kind: wireLayoutU8}
	case U64Layout:
		return wireLayout{Kind: wireLayoutU64}
	case U128Layout:
		return wireLayout{Kind: wireLayoutU128}
	case AddressLayout:
		return wireLayout{Kind: wireLayoutAddress}
	case SignerLayout:
		return wireLayout{Kind: wireLayoutSigner}
	case VectorLayout:
		elem := toWireLayout(layout.Elem)
		return wireLayout{Kind: wireLayoutVector, Elem: &elem}
	case StructLayout:
		fields := make([]wireLayout, 0, len(layout.Fields))
		for _, field := range layout.Fields {
			fields = append(fields, toWireLayout(field))
		}
		return wireLayout{Kind: wireLayoutStruct, Fields: fields}
	default:
		panic(fmt.Sprintf("unexpected type layout %T", l))
	}
}

// Encode returns the deterministic binary encoding of a layout. Structurally
// equal layouts always encode to byte-identical output.
func Encode(l TypeLayout) ([]byte, error) {
	enc, err := cborcodec.EncMode.Marshal(toWireLayout(l))
	if err != nil {
		return nil, fmt.Errorf("could not encode type layout (%s): %w", l, err)
	}
	return enc, nil
}
