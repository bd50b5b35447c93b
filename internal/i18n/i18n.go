// Package i18n holds the message catalogs of the site and picks the locale
// each request is rendered in.
//
// Catalogs are nested YAML maps, one file per locale under locales/, and are
// addressed with dot-separated keys ("variety.parents"). Messages may contain
// %{name} placeholders filled from the arguments passed to T.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// Translator resolves message keys per locale. It is immutable after
// construction and safe for concurrent use.
type Translator struct {
	catalogs map[string]map[string]string
	locales  []string // default first, then alphabetical
	def      string
	matcher  language.Matcher
}

// New loads the embedded catalogs. defaultLocale must be one of them.
func New(defaultLocale string) (*Translator, error) {
	return Load(localesFS, "locales", defaultLocale)
}

// Load reads every *.yaml file of dir in fsys as the catalog of the locale
// named by the file.
func Load(fsys fs.FS, dir, defaultLocale string) (*Translator, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("i18n.Load: %w", err)
	}

	t := &Translator{catalogs: make(map[string]map[string]string), def: defaultLocale}
	for _, e := range entries {
		ext := path.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		locale := strings.TrimSuffix(e.Name(), ext)
		raw, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("i18n.Load: %w", err)
		}
		var tree map[string]any
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("i18n.Load: parse %s: %w", e.Name(), err)
		}
		msgs := make(map[string]string)
		flatten("", tree, msgs)
		t.catalogs[locale] = msgs
	}

	if _, ok := t.catalogs[defaultLocale]; !ok {
		return nil, fmt.Errorf("i18n.Load: default locale %q has no catalog", defaultLocale)
	}

	others := make([]string, 0, len(t.catalogs)-1)
	for l := range t.catalogs {
		if l != defaultLocale {
			others = append(others, l)
		}
	}
	slices.Sort(others)
	t.locales = append([]string{defaultLocale}, others...)

	tags := make([]language.Tag, len(t.locales))
	for i, l := range t.locales {
		tags[i] = language.Make(l)
	}
	t.matcher = language.NewMatcher(tags)
	return t, nil
}

// flatten turns nested maps into dot-separated keys.
func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Default returns the default locale.
func (t *Translator) Default() string { return t.def }

// Locales returns the supported locales, default first.
func (t *Translator) Locales() []string { return slices.Clone(t.locales) }

// Supported reports whether locale has a catalog.
func (t *Translator) Supported(locale string) bool {
	_, ok := t.catalogs[locale]
	return ok
}

// T returns the message for key in locale, falling back to the default
// locale and then to the key itself. args are name/value pairs that fill the
// %{name} placeholders of the message.
//
//	t.T("fr", "varieties.count", "n", 12) == "12 cépages"
func (t *Translator) T(locale, key string, args ...any) string {
	msg, ok := t.catalogs[locale][key]
	if !ok {
		msg, ok = t.catalogs[t.def][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}

	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "%{"+fmt.Sprint(args[i])+"}", fmt.Sprint(args[i+1]))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// Func binds T to one locale.
func (t *Translator) Func(locale string) func(key string, args ...any) string {
	return func(key string, args ...any) string { return t.T(locale, key, args...) }
}

// Negotiate picks the supported locale that best matches an Accept-Language
// header, or the default locale when nothing matches.
func (t *Translator) Negotiate(acceptLanguage string) string {
	_, i := language.MatchStrings(t.matcher, acceptLanguage)
	if i < 0 || i >= len(t.locales) {
		return t.def
	}
	return t.locales[i]
}
