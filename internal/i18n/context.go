package i18n

import "context"

type localeContextKey struct{}

// WithLocale returns a copy of ctx carrying locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// LocaleFrom returns the locale stored in ctx, or "" when none is set.
func LocaleFrom(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale
}
