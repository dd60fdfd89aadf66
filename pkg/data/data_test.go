package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"primamateria.systems/reliquary/internal/mocks"
	"primamateria.systems/reliquary/pkg/element"
)

func newElement(attrs ...string) *element.Element {
	e := element.New("e", "div")
	for i := 0; i+1 < len(attrs); i += 2 {
		e.SetAttribute(attrs[i], attrs[i+1])
	}
	return e
}

func Test_RegistryData(t *testing.T) {
	r := New[element.Element]()
	e := newElement()

	v, ok := r.Data(e, "a")
	assert.False(t, ok)
	assert.Nil(t, v)

	v, ok = r.Data(e, "a", 1)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = r.Data(e, "a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	all, ok := r.Data(e, "")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, all.(interface{ Keys() []string }).Keys())

	assert.True(t, r.HasData(e))
	r.RemoveData(e, "a")
	assert.False(t, r.HasData(e))
}

func Test_RegistryDataCamelFallback(t *testing.T) {
	r := New[element.Element]()
	e := newElement()
	r.Data(e, "fooBar", "x")
	v, ok := r.Data(e, "foo-bar")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func Test_RegistryDataIgnoresAnnotations(t *testing.T) {
	r := New[element.Element]()
	e := newElement("data-count", "3")
	_, ok := r.Data(e, "count")
	assert.False(t, ok)
	assert.False(t, r.HasData(e))
}

func Test_NamespaceIsolation(t *testing.T) {
	r := New[element.Element]()
	e := newElement()

	r.PrivateData(e, "k", "private")
	_, ok := r.Data(e, "k")
	assert.False(t, ok)
	assert.True(t, r.HasData(e))

	r.Data(e, "k", "user")
	v, _ := r.PrivateData(e, "k")
	assert.Equal(t, "private", v)

	r.RemovePrivateData(e, "k")
	v, _ = r.Data(e, "k")
	assert.Equal(t, "user", v)
	assert.False(t, r.Private().HasData(e))

	r.RemoveData(e)
	assert.False(t, r.HasData(e))
}

func Test_RemoveDataLeavesNoRecord(t *testing.T) {
	r := New[element.Element]()
	e := newElement()
	r.Select(e).SetAll(map[string]any{"a": 1, "b": 2})
	require.True(t, r.HasData(e))

	r.RemoveData(e)
	assert.False(t, r.HasData(e))
	assert.Equal(t, 0, r.User().Len())
}

func Test_RemoveKeys(t *testing.T) {
	tests := []struct {
		name   string
		start  map[string]any
		remove []string
		want   []string
	}{
		{
			name:   "dashed-removes-camel",
			start:  map[string]any{"fooBar": 1, "other": 2},
			remove: []string{"foo-bar"},
			want:   []string{"other"},
		},
		{
			name:   "literal-and-camel",
			start:  map[string]any{"foo-bar": 1, "fooBar": 2, "other": 3},
			remove: []string{"foo-bar"},
			want:   []string{"other"},
		},
		{
			name:   "space-list",
			start:  map[string]any{"a": 1, "fooBar": 2, "c": 3},
			remove: []string{"a foo-bar"},
			want:   []string{"c"},
		},
		{
			name:   "many-names",
			start:  map[string]any{"a": 1, "fooBar": 2, "c": 3},
			remove: []string{"a", "foo-bar"},
			want:   []string{"c"},
		},
		{
			name:   "many-names-not-split",
			start:  map[string]any{"x y": 1, "x": 2, "y": 3, "z": 4},
			remove: []string{"x y", "z"},
			want:   []string{"x", "y"},
		},
		{
			name:   "missing",
			start:  map[string]any{"a": 1},
			remove: []string{"b"},
			want:   []string{"a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New[element.Element]()
			e := newElement()
			r.User().SetAll(e, tt.start)
			r.Select(e).Remove(tt.remove...)
			assert.ElementsMatch(t, tt.want, r.User().Get(e).Keys())
		})
	}
}

func Test_SelectionReadFallsBackToAnnotation(t *testing.T) {
	r := New[element.Element]()
	e := newElement("data-count", "3")
	sel := r.Select(e)

	v, ok := sel.Get("count")
	require.True(t, ok)
	assert.Equal(t, float64(3), v)

	sel.Set("count", 5)
	v, ok = sel.Get("count")
	require.True(t, ok)
	assert.Equal(t, 5, v)

	// the annotation no longer matters once the value is cached
	e.SetAttribute("data-count", "9")
	v, _ = sel.Get("count")
	assert.Equal(t, 5, v)
}

func Test_SelectionReadsAnnotationOnce(t *testing.T) {
	r := New[mocks.MockAnnotated]()
	m := mocks.NewMockAnnotated(t)
	m.EXPECT().Attribute("data-count").Return("3", true).Once()
	sel := r.Select(m)

	for i := 0; i < 3; i++ {
		v, ok := sel.Get("count")
		require.True(t, ok)
		assert.Equal(t, float64(3), v)
	}
}

func Test_SelectionReadsNullAnnotationOnce(t *testing.T) {
	r := New[mocks.MockAnnotated]()
	m := mocks.NewMockAnnotated(t)
	m.EXPECT().Attribute("data-gone").Return("null", true).Once()
	sel := r.Select(m)

	for i := 0; i < 3; i++ {
		v, ok := sel.Get("gone")
		require.True(t, ok)
		assert.Nil(t, v)
	}
	assert.True(t, r.User().HasData(m))
}

func Test_RegistryDataStoresNil(t *testing.T) {
	r := New[element.Element]()
	e := newElement()
	r.Data(e, "k", nil)

	v, ok := r.Data(e, "k")
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.True(t, r.HasData(e))

	_, ok = r.Data(e, "other")
	assert.False(t, ok)
}

func Test_SelectionMissingAnnotation(t *testing.T) {
	r := New[mocks.MockAnnotated]()
	m := mocks.NewMockAnnotated(t)
	m.EXPECT().Attribute("data-missing").Return("", false).Twice()
	sel := r.Select(m)

	_, ok := sel.Get("missing")
	assert.False(t, ok)
	_, ok = sel.Get("missing")
	assert.False(t, ok)
	assert.False(t, r.HasData(m))
}

func Test_SelectionDashedKeys(t *testing.T) {
	r := New[element.Element]()
	e := newElement("data-user-name", "ada")
	sel := r.Select(e)

	v, ok := sel.Get("user-name")
	require.True(t, ok)
	assert.Equal(t, "ada", v)
	v, ok = sel.Get("userName")
	require.True(t, ok)
	assert.Equal(t, "ada", v)

	sel.Set("foo-bar", "v")
	v, ok = sel.Get("fooBar")
	require.True(t, ok)
	assert.Equal(t, "v", v)
	_, literal := r.User().Value(e, "foo-bar")
	assert.False(t, literal)

	// a second dashed write keeps a copy under the dashed spelling
	sel.Set("foo-bar", "w")
	v, ok = r.User().Value(e, "foo-bar")
	require.True(t, ok)
	assert.Equal(t, "w", v)
	v, _ = sel.Get("fooBar")
	assert.Equal(t, "w", v)
}

func Test_SelectionWritesEveryOwner(t *testing.T) {
	r := New[element.Element]()
	a, b := newElement(), newElement()
	sel := r.Select(a, b)

	assert.Same(t, sel, sel.Set("k", "v"))
	for _, o := range []*element.Element{a, b} {
		v, ok := r.Data(o, "k")
		assert.True(t, ok)
		assert.Equal(t, "v", v)
	}

	sel.SetAll(map[string]any{"x": 1, "y": 2})
	assert.Equal(t, []string{"k", "x", "y"}, r.User().Get(b).Keys())

	sel.Remove("x y")
	assert.Equal(t, []string{"k"}, r.User().Get(a).Keys())

	sel.Remove()
	assert.False(t, r.HasData(a))
	assert.False(t, r.HasData(b))
}

func Test_SelectionReadsFirstOwner(t *testing.T) {
	r := New[element.Element]()
	a, b := newElement(), newElement()
	r.Data(b, "k", "b")
	_, ok := r.Select(a, b).Get("k")
	assert.False(t, ok)
	v, ok := r.Select(b, a).Get("k")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func Test_EmptySelection(t *testing.T) {
	r := New[element.Element]()
	sel := r.Select()
	assert.Nil(t, sel.All())
	_, ok := sel.Get("k")
	assert.False(t, ok)
	assert.Same(t, sel, sel.Set("k", 1).Remove("k"))
	assert.Equal(t, 0, sel.Len())
}

func Test_SelectionAll(t *testing.T) {
	r := New[element.Element]()
	e := newElement(
		"data-count", "3",
		"class", "wide",
		"data-user-name", "ada",
		"data-flags", `["a","b"]`,
	)
	r.Data(e, "count", "stored")

	rec := r.Select(e).All()
	require.NotNil(t, rec)
	assert.Equal(t, []string{"count", "userName", "flags"}, rec.Keys())
	v, _ := rec.Get("count")
	assert.Equal(t, "stored", v)
	v, _ = rec.Get("flags")
	assert.Equal(t, []any{"a", "b"}, v)

	marker, ok := r.PrivateData(e, DefaultScanMarker)
	require.True(t, ok)
	assert.Equal(t, true, marker)

	// a later annotation is not picked up by another scan
	e.SetAttribute("data-late", "1")
	rec = r.Select(e).All()
	assert.False(t, rec.Has("late"))

	// but is still reachable through a keyed read
	v, ok = r.Select(e).Get("late")
	assert.True(t, ok)
	assert.Equal(t, float64(1), v)
}

func Test_SelectionAllScansOnce(t *testing.T) {
	r := New[mocks.MockAnnotated]()
	m := mocks.NewMockAnnotated(t)
	m.EXPECT().AttributeNames().Return([]string{"data-a", "id"}).Once()
	m.EXPECT().Attribute("data-a").Return("true", true).Once()
	sel := r.Select(m)

	for i := 0; i < 2; i++ {
		rec := sel.All()
		v, ok := rec.Get("a")
		require.True(t, ok)
		assert.Equal(t, true, v)
	}
}

func Test_SelectionAllNoData(t *testing.T) {
	r := New[element.Element]()
	e := newElement("class", "wide")
	rec := r.Select(e).All()
	require.NotNil(t, rec)
	assert.Equal(t, 0, rec.Len())
	assert.False(t, r.User().HasData(e))
	assert.True(t, r.Private().HasData(e))
}

func Test_Options(t *testing.T) {
	r := New[element.Element](WithAttributePrefix("x-"), WithScanMarker("scanned"), WithReclaim(false))
	e := newElement("x-size", "10", "data-size", "20")
	rec := r.Select(e).All()
	v, _ := rec.Get("size")
	assert.Equal(t, float64(10), v)
	_, ok := r.PrivateData(e, "scanned")
	assert.True(t, ok)
}

func Test_Each(t *testing.T) {
	r := New[element.Element]()
	a, b := newElement(), newElement()
	var seen []*element.Element
	r.Select(a, b).Each(func(i int, o *element.Element) {
		seen = append(seen, o)
	})
	assert.Equal(t, []*element.Element{a, b}, seen)
	assert.Equal(t, []*element.Element{a, b}, r.Select(a, b).Owners())
}
