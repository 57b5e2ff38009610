package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Equal(t, ":memory:", store.Path())
}

func TestNewConfigStoreWith(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{
		"storage.backend": "sqlite",
		"search.top_k":    5,
	})

	assert.Equal(t, "sqlite", store.GetString("storage.backend"))
	assert.Equal(t, 5, store.GetInt("search.top_k"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("server.addr", ":9000"))
	require.NoError(t, store.Set("server.addr", ":9001"))

	val, ok := store.Get("server.addr")
	assert.True(t, ok)
	assert.Equal(t, ":9001", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{
		"str":        "value",
		"int":        42,
		"int64":      int64(7),
		"float":      3.0,
		"bool":       true,
		"strings":    []string{"a", "b"},
		"any_slice":  []any{"x", 1, "y"},
		"wrong_type": struct{}{},
	})

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("str"), "value"},
		{"string wrong type", store.GetString("int"), ""},
		{"int", store.GetInt("int"), 42},
		{"int64", store.GetInt("int64"), 7},
		{"float", store.GetInt("float"), 3},
		{"int wrong type", store.GetInt("str"), 0},
		{"bool", store.GetBool("bool"), true},
		{"bool missing", store.GetBool("missing"), false},
		{"string slice", store.GetStringSlice("strings"), []string{"a", "b"}},
		{"any slice keeps strings", store.GetStringSlice("any_slice"), []string{"x", "y"}},
		{"slice wrong type", store.GetStringSlice("wrong_type"), []string(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_SaveAndLoadAreNoOps(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("seed.enabled", false))

	require.NoError(t, store.Save())
	require.NoError(t, store.Load())

	_, ok := store.Get("seed.enabled")
	assert.True(t, ok)
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("search.top_k", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("search.top_k")
		}()
	}
	wg.Wait()

	_, ok := store.Get("search.top_k")
	assert.True(t, ok)
}
