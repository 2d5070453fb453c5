// Package catalog provides the process-wide message template store used to
// render localized user messages for classified errors.
//
// Templates are keyed by (code, locale) and use positional placeholders
// {0}, {1}, ... A catalog is assembled once at startup through a Builder and
// is read-only afterwards, so concurrent readers need no locking.
//
// Resolution falls back from the exact locale to the base language
// ("en-US" -> "en") and then to the default locale. Validate checks at
// startup that every registered code resolves in every configured locale;
// a non-empty result must keep the process from serving.
package catalog
