package registry

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gqlmeta/internal/lazy"
	"gqlmeta/internal/schema"
)

// objectBuilder builds empty objects and counts builds per name.
func objectBuilder(builds *sync.Map) Builder {
	return BuilderFunc(func(name string, _ lazy.Lookup) (schema.NamedType, error) {
		n, _ := builds.LoadOrStore(name, new(atomic.Int32))
		n.(*atomic.Int32).Add(1)

		return schema.NewObject(name, "", nil), nil
	})
}

func TestRegistry_Identity(t *testing.T) {
	var builds sync.Map
	reg := New(objectBuilder(&builds))

	first, err := reg.Type("Book")
	require.NoError(t, err)

	second, err := reg.Type("Book")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.True(t, reg.Has("Book"))
	assert.Equal(t, 1, reg.Len())

	n, _ := builds.Load("Book")
	assert.Equal(t, int32(1), n.(*atomic.Int32).Load())
}

func TestRegistry_Concurrent(t *testing.T) {
	var builds sync.Map
	reg := New(objectBuilder(&builds))

	const workers = 32
	results := make([]schema.NamedType, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			typ, err := reg.Type("Book")
			assert.NoError(t, err)
			results[i] = typ
		}()
	}
	wg.Wait()

	for _, typ := range results {
		assert.Same(t, results[0], typ)
	}

	n, _ := builds.Load("Book")
	assert.Equal(t, int32(1), n.(*atomic.Int32).Load())
}

func TestRegistry_NestedLookup(t *testing.T) {
	reg := New(BuilderFunc(func(name string, types lazy.Lookup) (schema.NamedType, error) {
		if name == "Wrapper" {
			inner, err := types.Type("Inner")
			if err != nil {
				return nil, err
			}

			return &schema.Scalar{Name: name, Description: "wraps " + inner.TypeName()}, nil
		}

		return &schema.Scalar{Name: name}, nil
	}))

	wrapper, err := reg.Type("Wrapper")
	require.NoError(t, err)
	assert.Equal(t, "wraps Inner", wrapper.Describe())
	assert.Equal(t, []string{"Inner", "Wrapper"}, reg.Names())
}

func TestRegistry_CyclicBuild(t *testing.T) {
	reg := New(BuilderFunc(func(name string, types lazy.Lookup) (schema.NamedType, error) {
		next := map[string]string{"A": "B", "B": "A"}[name]
		if _, err := types.Type(next); err != nil {
			return nil, err
		}

		return &schema.Scalar{Name: name}, nil
	}))

	_, err := reg.Type("A")
	require.ErrorIs(t, err, ErrCyclicBuild)
	assert.Contains(t, err.Error(), "A -> B -> A")
	assert.Zero(t, reg.Len(), "failed builds are not cached")
}

func TestRegistry_BuildErrors(t *testing.T) {
	_, err := New(nil).Type("Book")
	assert.ErrorContains(t, err, "no builder registered")

	boom := errors.New("boom")
	_, err = New(BuilderFunc(func(string, lazy.Lookup) (schema.NamedType, error) {
		return nil, boom
	})).Type("Book")
	assert.ErrorIs(t, err, boom)

	_, err = New(BuilderFunc(func(string, lazy.Lookup) (schema.NamedType, error) {
		return nil, nil
	})).Type("Book")
	assert.ErrorContains(t, err, "no type")
}

func TestRegistry_Register(t *testing.T) {
	reg := New(nil)
	date := &schema.Scalar{Name: "Date"}

	require.NoError(t, reg.Register(date))
	require.NoError(t, reg.Register(date), "re-registering the same object is allowed")
	assert.Error(t, reg.Register(&schema.Scalar{Name: "Date"}))

	typ, err := reg.Type("Date")
	require.NoError(t, err)
	assert.Same(t, date, typ)
}

func TestRegistry_SetBuilder(t *testing.T) {
	reg := New(nil)
	reg.SetBuilder(BuilderFunc(func(name string, _ lazy.Lookup) (schema.NamedType, error) {
		return &schema.Scalar{Name: name}, nil
	}))

	_, err := reg.Type("Date")
	assert.NoError(t, err)
}

func TestDefault(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	assert.Same(t, Default(), Default())
	require.NoError(t, Default().Register(&schema.Scalar{Name: "Date"}))
	assert.True(t, Default().Has("Date"))

	Reset()
	assert.False(t, Default().Has("Date"))
}
