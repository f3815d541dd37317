package ui

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps global key strings (tea.KeyMsg.String() format, e.g.
// "ctrl+c") to commands. Global bindings are checked by the composer before
// any widget sees the key; the reserved quit binding is therefore never
// shadowed by a focused widget or overlay.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command, overwriting any existing binding.
func (r *KeybindRegistry) Bind(key string, cmd tea.Cmd) {
	r.BindWithDesc(key, cmd, "")
}

// BindWithDesc registers a key with a description for hint rendering.
func (r *KeybindRegistry) BindWithDesc(key string, cmd tea.Cmd, desc string) {
	r.bindings[key] = cmd
	if desc != "" {
		r.descriptions[key] = desc
	}
}

// Lookup returns the command bound to key, or nil.
func (r *KeybindRegistry) Lookup(key string) tea.Cmd {
	return r.bindings[key]
}

// Hints returns "key: description" pairs sorted by key, for the header line.
func (r *KeybindRegistry) Hints() []string {
	keys := make([]string, 0, len(r.bindings))
	for k := range r.bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		d := r.descriptions[k]
		if d == "" {
			d = k
		}
		out = append(out, k+": "+d)
	}
	return out
}
