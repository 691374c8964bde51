package mode

import "sort"

// Built-in mode ids.
const (
	IDConcierge = "concierge"
	IDGeneral   = "general"
	IDOffline   = "offline"
)

// Mode is an operating mode's routing configuration.
type Mode struct {
	ID             string `json:"id"`
	IsDomainRouted bool   `json:"isDomainRouted"`
	WebSearch      bool   `json:"webSearch"`
}

// Permissive returns the mode used when id is not configured: domain routing
// and web search both enabled.
func Permissive(id string) Mode {
	return Mode{ID: id, IsDomainRouted: true, WebSearch: true}
}

// Builtin returns the modes available when none are configured.
func Builtin() []Mode {
	return []Mode{
		{ID: IDConcierge, IsDomainRouted: true, WebSearch: true},
		{ID: IDGeneral, IsDomainRouted: false, WebSearch: true},
		{ID: IDOffline, IsDomainRouted: true, WebSearch: false},
	}
}

// Resolver maps a mode id to its configuration. Resolve never fails.
type Resolver interface {
	Resolve(id string) Mode
}

// Registry is a read-only set of modes keyed by id.
type Registry struct {
	modes map[string]Mode
}

var _ Resolver = (*Registry)(nil)

// NewRegistry builds a registry. Later entries win on duplicate ids and
// entries with an empty id are skipped. No modes selects Builtin.
func NewRegistry(modes []Mode) *Registry {
	if len(modes) == 0 {
		modes = Builtin()
	}
	r := &Registry{modes: make(map[string]Mode, len(modes))}
	for _, m := range modes {
		if m.ID == "" {
			continue
		}
		r.modes[m.ID] = m
	}
	return r
}

// Resolve returns the configured mode, or the permissive default carrying id.
func (r *Registry) Resolve(id string) Mode {
	if r != nil {
		if m, ok := r.modes[id]; ok {
			return m
		}
	}
	return Permissive(id)
}

// Has reports whether id is configured.
func (r *Registry) Has(id string) bool {
	if r == nil {
		return false
	}
	_, ok := r.modes[id]
	return ok
}

// List returns the configured modes sorted by id.
func (r *Registry) List() []Mode {
	if r == nil {
		return []Mode{}
	}
	out := make([]Mode, 0, len(r.modes))
	for _, m := range r.modes {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
