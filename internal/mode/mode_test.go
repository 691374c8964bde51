package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry(nil)

	tests := []struct {
		name string
		id   string
		want Mode
	}{
		{"concierge", IDConcierge, Mode{ID: IDConcierge, IsDomainRouted: true, WebSearch: true}},
		{"general", IDGeneral, Mode{ID: IDGeneral, IsDomainRouted: false, WebSearch: true}},
		{"offline", IDOffline, Mode{ID: IDOffline, IsDomainRouted: true, WebSearch: false}},
		{"unknown falls back to permissive", "beta", Mode{ID: "beta", IsDomainRouted: true, WebSearch: true}},
		{"empty id", "", Mode{ID: "", IsDomainRouted: true, WebSearch: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.id))
		})
	}
}

func TestRegistry_Configured(t *testing.T) {
	r := NewRegistry([]Mode{
		{ID: "sales", IsDomainRouted: false},
		{ID: ""},
		{ID: "sales", IsDomainRouted: true},
	})

	assert.True(t, r.Has("sales"))
	assert.False(t, r.Has(IDConcierge), "builtins are replaced by configured modes")
	assert.Equal(t, Mode{ID: "sales", IsDomainRouted: true}, r.Resolve("sales"))
	assert.Equal(t, []Mode{{ID: "sales", IsDomainRouted: true}}, r.List())
}

func TestRegistry_Nil(t *testing.T) {
	var r *Registry
	assert.Equal(t, Permissive("x"), r.Resolve("x"))
	assert.False(t, r.Has("x"))
	assert.Empty(t, r.List())
}

func TestRegistry_ListSorted(t *testing.T) {
	got := NewRegistry(nil).List()
	ids := make([]string, len(got))
	for i, m := range got {
		ids[i] = m.ID
	}
	assert.Equal(t, []string{IDConcierge, IDGeneral, IDOffline}, ids)
}
