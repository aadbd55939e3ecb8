package types

import (
	"encoding/json"
	"fmt"

	"github.com/movekit/movevm/model/move"
)

// JSON encoding of type trees, used at the tooling boundary to hand resolved
// types to the core. Each node is a tagged object selected by the "kind"
// field. This is a diagnostic/tooling format: the canonical binary artifacts
// are the tag and layout encodings, never a serialized Type.

const (
	jsonKindBool       = "bool"
	jsonKindU8         = "u8"
	jsonKindU64        = "u64"
	jsonKindU128       = "u128"
	jsonKindAddress    = "address"
	jsonKindSigner     = "signer"
	jsonKindVector     = "vector"
	jsonKindStruct     = "struct"
	jsonKindReference  = "reference"
	jsonKindMutableRef = "mutable_reference"
	jsonKindTypeParam  = "type_param"
)

type jsonType struct {
	Kind       string          `json:"kind"`
	Elem       *jsonType       `json:"elem,omitempty"`
	Referenced *jsonType       `json:"to,omitempty"`
	Index      *int            `json:"index,omitempty"`
	Struct     *jsonStructType `json:"struct,omitempty"`
}

type jsonStructType struct {
	Address  move.AccountAddress `json:"address"`
	Module   string              `json:"module"`
	Name     string              `json:"name"`
	Resource bool                `json:"resource"`
	TypeArgs []jsonType          `json:"type_args,omitempty"`
	Fields   []jsonType          `json:"fields,omitempty"`
}

// MarshalType encodes a type tree as JSON.
func MarshalType(t Type) ([]byte, error) {
	node, err := toJSONType(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(node)
}

// UnmarshalType decodes a JSON type tree.
func UnmarshalType(data []byte) (Type, error) {
	var node jsonType
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("could not decode type tree: %w", err)
	}
	return fromJSONType(&node)
}

func toJSONType(t Type) (*jsonType, error) {
	switch ty := t.(type) {
	case BoolType:
		return &jsonType{Kind: jsonKindBool}, nil
	case U8Type:
		return &jsonType{Kind: jsonKindU8}, nil
	case U64Type:
		return &jsonType{Kind: jsonKindU64}, nil
	case U128Type:
		return &jsonType{Kind: jsonKindU128}, nil
	case AddressType:
		return &jsonType{Kind: jsonKindAddress}, nil
	case SignerType:
		return &jsonType{Kind: jsonKindSigner}, nil

	case VectorType:
		elem, err := toJSONType(ty.Elem)
		if err != nil {
			return nil, err
		}
		return &jsonType{Kind: jsonKindVector, Elem: elem}, nil

	case ReferenceType:
		referenced, err := toJSONType(ty.Referenced)
		if err != nil {
			return nil, err
		}
		return &jsonType{Kind: jsonKindReference, Referenced: referenced}, nil

	case MutableReferenceType:
		referenced, err := toJSONType(ty.Referenced)
		if err != nil {
			return nil, err
		}
		return &jsonType{Kind: jsonKindMutableRef, Referenced: referenced}, nil

	case TypeParam:
		index := ty.Index
		return &jsonType{Kind: jsonKindTypeParam, Index: &index}, nil

	case *StructType:
		typeArgs, err := toJSONTypes(ty.TypeArgs)
		if err != nil {
			return nil, err
		}
		fields, err := toJSONTypes(ty.Fields)
		if err != nil {
			return nil, err
		}
		return &jsonType{
			Kind: jsonKindStruct,
			Struct: &jsonStructType{
				Address:  ty.Address,
				Module:   ty.Module.String(),
				Name:     ty.Name.String(),
				Resource: ty.IsResource,
				TypeArgs: typeArgs,
				Fields:   fields,
			},
		}, nil

	default:
		return nil, fmt.Errorf("cannot encode unknown type %T", t)
	}
}

func toJSONTypes(types []Type) ([]jsonType, error) {
	nodes := make([]jsonType, 0, len(types))
	for _, t := range types {
		node, err := toJSONType(t)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, *node)
	}
	return nodes, nil
}

func fromJSONType(node *jsonType) (Type, error) {
	switch node.Kind {
	case jsonKindBool:
		return BoolType{}, nil
	case jsonKindU8:
		return U8Type{}, nil
	case jsonKindU64:
		return U64Type{}, nil
	case jsonKindU128:
		return U128Type{}, nil
	case jsonKindAddress:
		return AddressType{}, nil
	case jsonKindSigner:
		return SignerType{}, nil

	case jsonKindVector:
		if node.Elem == nil {
			return nil, fmt.Errorf("vector type is missing element")
		}
		elem, err := fromJSONType(node.Elem)
		if err != nil {
			return nil, err
		}
		return VectorType{Elem: elem}, nil

	case jsonKindReference:
		if node.Referenced == nil {
			return nil, fmt.Errorf("reference type is missing referenced type")
		}
		referenced, err := fromJSONType(node.Referenced)
		if err != nil {
			return nil, err
		}
		return ReferenceType{Referenced: referenced}, nil

	case jsonKindMutableRef:
		if node.Referenced == nil {
			return nil, fmt.Errorf("mutable reference type is missing referenced type")
		}
		referenced, err := fromJSONType(node.Referenced)
		if err != nil {
			return nil, err
		}
		return MutableReferenceType{Referenced: referenced}, nil

	case jsonKindTypeParam:
		if node.Index == nil {
			return nil, fmt.Errorf("type parameter is missing index")
		}
		return TypeParam{Index: *node.Index}, nil

	case jsonKindStruct:
		if node.Struct == nil {
			return nil, fmt.Errorf("struct type is missing descriptor")
		}
		module, err := move.NewIdentifier(node.Struct.Module)
		if err != nil {
			return nil, fmt.Errorf("invalid module name: %w", err)
		}
		name, err := move.NewIdentifier(node.Struct.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid struct name: %w", err)
		}
		typeArgs, err := fromJSONTypes(node.Struct.TypeArgs)
		if err != nil {
			return nil, err
		}
		fields, err := fromJSONTypes(node.Struct.Fields)
		if err != nil {
			return nil, err
		}
		return &StructType{
			Address:    node.Struct.Address,
			Module:     module,
			Name:       name,
			IsResource: node.Struct.Resource,
			TypeArgs:   typeArgs,
			Fields:     fields,
		}, nil

	default:
		return nil, fmt.Errorf("unknown type kind (%s)", node.Kind)
	}
}

func fromJSONTypes(nodes []jsonType) ([]Type, error) {
	types := make([]Type, 0, len(nodes))
	for i := range nodes {
		t, err := fromJSONType(&nodes[i])
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
