package layout

import (
	"fmt"
)

// Kind classifies a value under the ownership discipline of the VM: a
// Resource value cannot be implicitly copied or discarded, a Copyable value
// may be freely duplicated and dropped.
type Kind uint8

const (
	KindCopyable Kind = iota
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindCopyable:
		return "copyable"
	case KindResource:
		return "resource"
	default:
		return fmt.Sprintf("unknown kind (%d)", uint8(k))
	}
}

// IsResource returns true iff the kind is KindResource.
func (k Kind) IsResource() bool {
	return k == KindResource
}

// KindInfo is the kind classification of a runtime type at every nesting
// level. The variant set is closed: BaseKindInfo for leaves, VectorKindInfo
// and StructKindInfo for composites. Per-field kinds of a struct are derived
// from the field types themselves, independently of the struct's own declared
// classification.
type KindInfo interface {
	// Kind returns the classification at the top level of this tree.
	Kind() Kind
	isKindInfo()
}

// BaseKindInfo classifies a leaf type.
type BaseKindInfo struct {
	K Kind
}

// VectorKindInfo classifies a vector and its element. A vector of resources
// is itself resource-bearing, so VKind always equals the element's top kind.
type VectorKindInfo struct {
	VKind Kind
	Elem  KindInfo
}

// StructKindInfo carries a struct's own declared classification plus the
// derived classification of each field, in declared order.
type StructKindInfo struct {
	SKind  Kind
	Fields []KindInfo
}

func (BaseKindInfo) isKindInfo()   {}
func (VectorKindInfo) isKindInfo() {}
func (StructKindInfo) isKindInfo() {}

func (i BaseKindInfo) Kind() Kind   { return i.K }
func (i VectorKindInfo) Kind() Kind { return i.VKind }
func (i StructKindInfo) Kind() Kind { return i.SKind }
