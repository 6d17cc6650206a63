package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tasklist/internal/backend/kv"
	"tasklist/internal/store"
)

// ColorSchemeKey is the storage key for the display preference.
const ColorSchemeKey = "color-scheme"

// ColorScheme is the light/dark display preference.
type ColorScheme string

const (
	Light ColorScheme = "light"
	Dark  ColorScheme = "dark"
)

// ParseColorScheme resolves user input to a ColorScheme.
func ParseColorScheme(s string) (ColorScheme, error) {
	switch ColorScheme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("invalid color scheme: %s", s)
}

// Toggled returns the opposite scheme.
func (c ColorScheme) Toggled() ColorScheme {
	if c == Dark {
		return Light
	}
	return Dark
}

// Preferences persists display preferences, independent of the task list.
type Preferences struct {
	storage kv.Storage
}

// NewPreferences creates a Preferences repository.
func NewPreferences(storage kv.Storage) *Preferences {
	return &Preferences{storage: storage}
}

// ColorScheme returns the saved scheme, or Light when nothing valid is saved.
func (p *Preferences) ColorScheme(ctx context.Context) (ColorScheme, error) {
	raw, ok, err := p.storage.GetItem(ctx, ColorSchemeKey)
	if err != nil {
		return Light, fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err)
	}
	if !ok {
		return Light, nil
	}

	// Values are JSON strings; accept a bare word too.
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		s = raw
	}
	scheme, err := ParseColorScheme(s)
	if err != nil {
		return Light, nil
	}
	return scheme, nil
}

// SetColorScheme saves the scheme.
func (p *Preferences) SetColorScheme(ctx context.Context, scheme ColorScheme) error {
	data, err := json.Marshal(string(scheme))
	if err != nil {
		return err
	}
	if err := p.storage.SetItem(ctx, ColorSchemeKey, string(data)); err != nil {
		return fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err)
	}
	return nil
}

// ToggleColorScheme flips the saved scheme and returns the new one.
func (p *Preferences) ToggleColorScheme(ctx context.Context) (ColorScheme, error) {
	current, err := p.ColorScheme(ctx)
	if err != nil {
		return current, err
	}
	next := current.Toggled()
	return next, p.SetColorScheme(ctx, next)
}

// ResetColorScheme removes the saved scheme so the default applies.
func (p *Preferences) ResetColorScheme(ctx context.Context) error {
	if err := p.storage.RemoveItem(ctx, ColorSchemeKey); err != nil {
		return fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err)
	}
	return nil
}
