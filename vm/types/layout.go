package types

import (
	"github.com/movekit/movevm/model/layout"
	"github.com/movekit/movevm/vm/errors"
)

// LayoutAndKind derives the canonical value layout and the kind
// classification of a fully resolved type in a single traversal, so the two
// artifacts can never structurally disagree. References and unresolved type
// parameters have no value representation and fail with an invariant
// violation.
func LayoutAndKind(t Type) (layout.KindInfo, layout.TypeLayout, error) {
	switch ty := t.(type) {
	case BoolType:
		return layout.BaseKindInfo{K: layout.KindCopyable}, layout.BoolLayout{}, nil
	case U8Type:
		return layout.BaseKindInfo{K: layout.KindCopyable}, layout.U8Layout{}, nil
	case U64Type:
		return layout.BaseKindInfo{K: layout.KindCopyable}, layout.U64Layout{}, nil
	case U128Type:
		return layout.BaseKindInfo{K: layout.KindCopyable}, layout.U128Layout{}, nil
	case AddressType:
		return layout.BaseKindInfo{K: layout.KindCopyable}, layout.AddressLayout{}, nil
	case SignerType:
		return layout.BaseKindInfo{K: layout.KindResource}, layout.SignerLayout{}, nil

	case VectorType:
		elemInfo, elemLayout, err := LayoutAndKind(ty.Elem)
		if err != nil {
			return nil, nil, err
		}
		// a vector of resources is itself resource-bearing
		info := layout.VectorKindInfo{
			VKind: elemInfo.Kind(),
			Elem:  elemInfo,
		}
		return info, layout.VectorLayout{Elem: elemLayout}, nil

	case *StructType:
		info, structLayout, err := ty.LayoutAndKind()
		if err != nil {
			return nil, nil, err
		}
		return info, structLayout, nil

	default:
		return nil, nil, errors.NewInvariantViolationErrorf(
			"cannot derive type layout for %s", debugString(t))
	}
}

// LayoutAndKind derives the ordered field layouts and kinds of the
// descriptor. The struct's own classification follows the declared resource
// flag; per-field kinds are derived from the field types themselves, so a
// resource struct may well hold copyable fields.
func (s *StructType) LayoutAndKind() (layout.StructKindInfo, layout.StructLayout, error) {
	fieldInfos := make([]layout.KindInfo, 0, len(s.Fields))
	fieldLayouts := make([]layout.TypeLayout, 0, len(s.Fields))
	for _, field := range s.Fields {
		info, fieldLayout, err := LayoutAndKind(field)
		if err != nil {
			return layout.StructKindInfo{}, layout.StructLayout{}, err
		}
		fieldInfos = append(fieldInfos, info)
		fieldLayouts = append(fieldLayouts, fieldLayout)
	}

	kind := layout.KindCopyable
	if s.IsResource {
		kind = layout.KindResource
	}
	info := layout.StructKindInfo{
		SKind:  kind,
		Fields: fieldInfos,
	}
	return info, layout.StructLayout{Fields: fieldLayouts}, nil
}

// Layout derives the canonical value layout alone, skipping kind
// computation, for callers that need only the encoder artifact. It produces
// a layout structurally identical to the one LayoutAndKind returns for the
// same input, and fails on exactly the same types.
func Layout(t Type) (layout.TypeLayout, error) {
	switch ty := t.(type) {
	case BoolType:
		return layout.BoolLayout{}, nil
	case U8Type:
		return layout.U8Layout{}, nil
	case U64Type:
		return layout.U64Layout{}, nil
	case U128Type:
		return layout.U128Layout{}, nil
	case AddressType:
		return layout.AddressLayout{}, nil
	case SignerType:
		return layout.SignerLayout{}, nil

	case VectorType:
		elem, err := Layout(ty.Elem)
		if err != nil {
			return nil, err
		}
		return layout.VectorLayout{Elem: elem}, nil

	case *StructType:
		structLayout, err := ty.Layout()
		if err != nil {
			return nil, err
		}
		return structLayout, nil

	default:
		return nil, errors.NewInvariantViolationErrorf(
			"cannot derive type layout for %s", debugString(t))
	}
}

// Layout derives the ordered field layouts of the descriptor.
func (s *StructType) Layout() (layout.StructLayout, error) {
	fields := make([]layout.TypeLayout, 0, len(s.Fields))
	for _, field := range s.Fields {
		fieldLayout, err := Layout(field)
		if err != nil {
			return layout.StructLayout{}, err
		}
		fields = append(fields, fieldLayout)
	}
	return layout.StructLayout{Fields: fields}, nil
}
