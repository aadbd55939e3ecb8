package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movekit/movevm/model/layout"
)

func TestTypeLayoutString(t *testing.T) {
	cases := []struct {
		layout   layout.TypeLayout
		expected string
	}{
		{layout.BoolLayout{}, "bool"},
		{layout.U8Layout{}, "u8"},
		{layout.U64Layout{}, "u64"},
		{layout.U128Layout{}, "u128"},
		{layout.AddressLayout{}, "address"},
		{layout.SignerLayout{}, "signer"},
		{layout.VectorLayout{Elem: layout.U8Layout{}}, "vector<u8>"},
		{layout.StructLayout{}, "struct{}"},
		{
			layout.StructLayout{Fields: []layout.TypeLayout{
				layout.U64Layout{},
				layout.VectorLayout{Elem: layout.AddressLayout{}},
			}},
			"struct{u64, vector<address>}",
		},
	}
	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			assert.Equal(t, c.expected, c.layout.String())
		})
	}
}

func TestEncode(t *testing.T) {
	nested := layout.StructLayout{Fields: []layout.TypeLayout{
		layout.U64Layout{},
		layout.VectorLayout{Elem: layout.StructLayout{Fields: []layout.TypeLayout{
			layout.BoolLayout{},
		}}},
	}}

	t.Run("equal layouts encode byte-identically", func(t *testing.T) {
		first, err := layout.Encode(nested)
		require.NoError(t, err)
		second, err := layout.Encode(layout.StructLayout{Fields: []layout.TypeLayout{
			layout.U64Layout{},
			layout.VectorLayout{Elem: layout.StructLayout{Fields: []layout.TypeLayout{
				layout.BoolLayout{},
			}}},
		}})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("different layouts encode differently", func(t *testing.T) {
		seen := make(map[string]layout.TypeLayout)
		layouts := []layout.TypeLayout{
			layout.BoolLayout{},
			layout.U8Layout{},
			layout.U64Layout{},
			layout.U128Layout{},
			layout.AddressLayout{},
			layout.SignerLayout{},
			layout.VectorLayout{Elem: layout.U64Layout{}},
			layout.StructLayout{},
			layout.StructLayout{Fields: []layout.TypeLayout{layout.U64Layout{}}},
			nested,
		}
		for _, l := range layouts {
			enc, err := layout.Encode(l)
			require.NoError(t, err)
			previous, collision := seen[string(enc)]
			require.False(t, collision, "layouts %s and %s encode identically", l, previous)
			seen[string(enc)] = l
		}
	})
}

func TestKind(t *testing.T) {
	assert.True(t, layout.KindResource.IsResource())
	assert.False(t, layout.KindCopyable.IsResource())
	assert.Equal(t, "resource", layout.KindResource.String())
	assert.Equal(t, "copyable", layout.KindCopyable.String())
}

func TestKindInfo(t *testing.T) {
	base := layout.BaseKindInfo{K: layout.KindResource}
	assert.Equal(t, layout.KindResource, base.Kind())

	vector := layout.VectorKindInfo{VKind: layout.KindResource, Elem: base}
	assert.Equal(t, layout.KindResource, vector.Kind())

	// a resource struct may hold only copyable fields
	structInfo := layout.StructKindInfo{
		SKind:  layout.KindResource,
		Fields: []layout.KindInfo{layout.BaseKindInfo{K: layout.KindCopyable}},
	}
	assert.Equal(t, layout.KindResource, structInfo.Kind())
	assert.Equal(t, layout.KindCopyable, structInfo.Fields[0].Kind())
}
