// Package icons resolves the icon references carried by image-choice entries
// and button items into something the presentation layer can display. The
// capability is injected into consumers; the validation core never imports
// it.
package icons

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Resolver turns an icon reference into a displayable asset URL or inline
// markup.
type Resolver interface {
	Resolve(name string) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (string, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(name string) (string, error) { return f(name) }

// ThemeResolver resolves icon references against a go-theme manifest's asset
// table. Variant assets shadow the base manifest's.
type ThemeResolver struct {
	selector theme.ThemeSelector
	theme    string
	variant  string
}

// NewThemeResolver builds a resolver bound to one theme/variant selection.
func NewThemeResolver(selector theme.ThemeSelector, themeName, variant string) *ThemeResolver {
	return &ThemeResolver{selector: selector, theme: themeName, variant: variant}
}

// Resolve implements Resolver.
func (r *ThemeResolver) Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("icons: empty icon reference")
	}
	if r == nil || r.selector == nil {
		return "", fmt.Errorf("icons: no theme selector configured")
	}
	selection, err := r.selector.Select(r.theme, r.variant)
	if err != nil {
		return "", fmt.Errorf("icons: select theme %q: %w", r.theme, err)
	}
	if selection == nil || selection.Manifest == nil {
		return "", fmt.Errorf("icons: theme %q has no manifest", r.theme)
	}
	manifest := selection.Manifest

	if r.variant != "" {
		if variant, ok := manifest.Variants[r.variant]; ok {
			if file, ok := variant.Assets.Files[name]; ok {
				return joinAsset(variant.Assets.Prefix, manifest.Assets.Prefix, file), nil
			}
		}
	}
	file, ok := manifest.Assets.Files[name]
	if !ok {
		return "", fmt.Errorf("icons: %q not found in theme %q", name, r.theme)
	}
	return joinAsset(manifest.Assets.Prefix, "", file), nil
}

func joinAsset(prefix, fallbackPrefix, file string) string {
	if prefix == "" {
		prefix = fallbackPrefix
	}
	if prefix == "" {
		return file
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
}
