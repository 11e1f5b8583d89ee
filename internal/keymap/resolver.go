package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// Resolver answers two questions about a binding table: which action a key
// triggers, and which keys trigger an action.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
	desc    map[Action]string
}

// NewResolver indexes bindings. A key bound twice resolves to its last
// binding. An action bound in several contexts keeps every distinct key and
// the first description.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
		desc:    make(map[Action]string),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
			if !slices.Contains(r.keys[b.Action], k) {
				r.keys[b.Action] = append(r.keys[b.Action], k)
			}
		}
		if _, ok := r.desc[b.Action]; !ok {
			r.desc[b.Action] = b.Description
		}
	}
	return r
}

// Resolve returns the action for a key, or "" if the key is unbound.
func (r *Resolver) Resolve(k string) Action {
	return r.actions[k]
}

// KeysFor returns the keys bound to an action in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// Help builds the help entry for an action from every key bound to it.
func (r *Resolver) Help(action Action) key.Binding {
	return Binding{
		Action:      action,
		Keys:        r.KeysFor(action),
		Description: r.desc[action],
	}.Key()
}

// HelpFor builds help entries for bindings, one per distinct action.
func (r *Resolver) HelpFor(bindings []Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bindings))
	seen := make(map[Action]bool, len(bindings))
	for _, b := range bindings {
		if seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		out = append(out, r.Help(b.Action))
	}
	return out
}
