package requestlog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_LogFillsDefaults(t *testing.T) {
	s := NewMemoryStore(10)
	entry := &Entry{Method: "GET", Path: "/rest/all/V1/orders/1"}
	s.Log(entry)

	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())
	assert.Equal(t, 1, s.Count())
}

func TestMemoryStore_KeepsTimestamp(t *testing.T) {
	s := NewMemoryStore(10)
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s.Log(&Entry{ID: "fixed", Timestamp: ts})

	list := s.List(nil)
	require.Len(t, list, 1)
	assert.Equal(t, "fixed", list[0].ID)
	assert.Equal(t, ts, list[0].Timestamp)
}

func TestMemoryStore_Capacity(t *testing.T) {
	s := NewMemoryStore(3)
	for i := range 5 {
		s.Log(&Entry{Path: fmt.Sprintf("/p/%d", i)})
	}

	list := s.List(nil)
	require.Len(t, list, 3)
	assert.Equal(t, "/p/4", list[0].Path)
	assert.Equal(t, "/p/2", list[2].Path)
}

func TestMemoryStore_DefaultCapacity(t *testing.T) {
	s := NewMemoryStore(0)
	assert.Equal(t, DefaultCapacity, s.capacity)
}

func TestMemoryStore_Filter(t *testing.T) {
	s := NewMemoryStore(10)
	s.Log(&Entry{Method: "POST", Path: "/rest/all/V1/order/1/ship", ResponseStatus: 200})
	s.Log(&Entry{Method: "POST", Path: "/rest/all/V1/order/2/ship", ResponseStatus: 404})
	s.Log(&Entry{Method: "GET", Path: "/rest/all/V1/orders/1", ResponseStatus: 200})
	s.Log(&Entry{Method: "POST", Path: "/rest/all/V1/order/1/invoice", ResponseStatus: 200})

	tests := []struct {
		name   string
		filter *Filter
		paths  []string
	}{
		{"method ignores case", &Filter{Method: "post"}, []string{"/rest/all/V1/order/1/invoice", "/rest/all/V1/order/2/ship", "/rest/all/V1/order/1/ship"}},
		{"path prefix", &Filter{Path: "/rest/all/V1/order/1/"}, []string{"/rest/all/V1/order/1/invoice", "/rest/all/V1/order/1/ship"}},
		{"status", &Filter{StatusCode: 404}, []string{"/rest/all/V1/order/2/ship"}},
		{"limit", &Filter{Limit: 1}, []string{"/rest/all/V1/order/1/invoice"}},
		{"offset", &Filter{Offset: 3}, []string{"/rest/all/V1/order/1/ship"}},
		{"offset past end", &Filter{Offset: 10}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := []string{}
			for _, e := range s.List(tt.filter) {
				paths = append(paths, e.Path)
			}
			assert.Equal(t, tt.paths, paths)
		})
	}
}

func TestMemoryStore_ListReturnsCopies(t *testing.T) {
	s := NewMemoryStore(10)
	s.Log(&Entry{Path: "/a"})

	s.List(nil)[0].Path = "/changed"
	assert.Equal(t, "/a", s.List(nil)[0].Path)
}

func TestMemoryStore_Clear(t *testing.T) {
	s := NewMemoryStore(10)
	s.Log(&Entry{})
	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.List(nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate([]byte("abc")))
	assert.Len(t, Truncate(make([]byte, MaxBodySize+5)), MaxBodySize)
}
