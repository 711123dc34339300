package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  Field[string]   `json:"name"`
	Tags  Field[[]string] `json:"tags"`
	Count Field[int]      `json:"count"`
}

func TestField_AbsentKey(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	assert.False(t, p.Name.IsSet())
	assert.False(t, p.Name.IsNull())
	_, ok := p.Name.Get()
	assert.False(t, ok)
	assert.Nil(t, p.Name.Ptr())
}

func TestField_ExplicitNull(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"name": null}`), &p))

	assert.True(t, p.Name.IsSet())
	assert.True(t, p.Name.IsNull())
	_, ok := p.Name.Get()
	assert.False(t, ok)
	assert.Nil(t, p.Name.Ptr())
}

func TestField_ExplicitValue(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"name": "mufti", "count": 3}`), &p))

	assert.True(t, p.Name.IsSet())
	assert.False(t, p.Name.IsNull())

	v, ok := p.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "mufti", v)
	require.NotNil(t, p.Name.Ptr())
	assert.Equal(t, "mufti", *p.Name.Ptr())

	n, ok := p.Count.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}

func TestField_EmptyStringIsAValue(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"name": ""}`), &p))

	v, ok := p.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.False(t, p.Name.IsNull())
}

func TestField_SlicePreservesOrder(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"tags": ["React", "TypeScript", "Node.js"]}`), &p))

	v, ok := p.Tags.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"React", "TypeScript", "Node.js"}, v)
}

func TestField_TypeMismatch(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"count": "three"}`), &p)
	assert.Error(t, err)
}

func TestField_Constructors(t *testing.T) {
	f := Of("x")
	v, ok := f.Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	n := Null[string]()
	assert.True(t, n.IsSet())
	assert.True(t, n.IsNull())
}

func TestField_MarshalRoundTrip(t *testing.T) {
	data, err := json.Marshal(Of("mufti"))
	require.NoError(t, err)
	assert.Equal(t, `"mufti"`, string(data))

	data, err = json.Marshal(Null[string]())
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}
