package catalog

import (
	"testing"

	"github.com/kbukum/faultkit/code"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	b := NewBuilder("en")
	for _, c := range code.NewRegistry().All() {
		b.Add("en", c, "English message for "+string(c))
	}
	b.Add("de", code.NotFound, "Nicht gefunden.")
	b.Add("en-GB", code.NotFound, "The requested resource was not found, I'm afraid.")
	cat, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return cat
}

func TestCatalog_Resolve_ExactLocale(t *testing.T) {
	cat := newTestCatalog(t)
	tpl, ok := cat.Resolve(code.NotFound, "de")
	if !ok || tpl != "Nicht gefunden." {
		t.Errorf("expected exact de template, got %q ok=%v", tpl, ok)
	}
}

func TestCatalog_Resolve_BaseLanguageFallback(t *testing.T) {
	cat := newTestCatalog(t)
	tpl, ok := cat.Resolve(code.NotFound, "de-AT")
	if !ok || tpl != "Nicht gefunden." {
		t.Errorf("expected de template via base-language fallback, got %q ok=%v", tpl, ok)
	}
}

func TestCatalog_Resolve_DefaultFallback(t *testing.T) {
	cat := newTestCatalog(t)
	tpl, ok := cat.Resolve(code.Timeout, "de")
	if !ok || tpl != "English message for TIMEOUT" {
		t.Errorf("expected default-locale fallback, got %q ok=%v", tpl, ok)
	}
}

func TestCatalog_Resolve_RegionVariant(t *testing.T) {
	cat := newTestCatalog(t)
	tpl, _ := cat.Resolve(code.NotFound, "en-gb")
	if tpl != "The requested resource was not found, I'm afraid." {
		t.Errorf("expected normalized en-GB match, got %q", tpl)
	}
}

func TestCatalog_Resolve_UnknownCode_NotFound(t *testing.T) {
	cat := newTestCatalog(t)
	if _, ok := cat.Resolve(code.Code("UNREGISTERED"), "en"); ok {
		t.Error("expected no template for unregistered code")
	}
}

func TestCatalog_Validate_Complete(t *testing.T) {
	cat := newTestCatalog(t)
	missing := cat.Validate(code.NewRegistry(), "de", "en-GB", "fr")
	if len(missing) != 0 {
		t.Errorf("expected complete catalog (default fallback covers everything), got missing %v", missing)
	}
}

func TestCatalog_Validate_MissingTemplates(t *testing.T) {
	reg := code.NewRegistry()
	reg.Register("QUOTA_EXCEEDED")

	b := NewBuilder("en")
	for _, c := range code.NewRegistry().All() {
		b.Add("en", c, "msg")
	}
	cat, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	missing := cat.Validate(reg)
	if len(missing) != 1 {
		t.Fatalf("expected exactly one missing pair, got %v", missing)
	}
	if missing[0].Code != "QUOTA_EXCEEDED" || missing[0].Locale != "en" {
		t.Errorf("expected QUOTA_EXCEEDED/en, got %v", missing[0])
	}
}

func TestCatalog_MustValidate_PanicsOnMissing(t *testing.T) {
	reg := code.NewRegistry()
	reg.Register("EXTRA")
	b := NewBuilder("en")
	b.Add("en", code.General, "msg")
	cat, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected MustValidate to panic")
		}
	}()
	cat.MustValidate(reg)
}

func TestBuilder_Build_RequiresDefaultLocaleTemplates(t *testing.T) {
	if _, err := NewBuilder("en").Build(); err == nil {
		t.Error("expected Build to fail without default-locale templates")
	}
	if _, err := NewBuilder("").Build(); err == nil {
		t.Error("expected Build to fail without a default locale")
	}
}

func TestCatalog_Locales_Sorted(t *testing.T) {
	cat := newTestCatalog(t)
	locales := cat.Locales()
	if len(locales) != 3 {
		t.Fatalf("expected 3 locales, got %v", locales)
	}
	if locales[0] != "de" || locales[1] != "en" || locales[2] != "en-GB" {
		t.Errorf("expected sorted locales, got %v", locales)
	}
}

func TestNormalizeLocale_Table(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"en-us", "en-US"},
		{"en_US", "en-US"},
		{" de-AT ", "de-AT"},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := normalizeLocale(tc.in); got != tc.want {
				t.Errorf("normalizeLocale(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
