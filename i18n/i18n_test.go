package i18n

import (
	"context"
	"testing"
)

func TestTranslateDefaultsToEnglish(t *testing.T) {
	got := Translate(context.Background(), "nav.signin", nil)
	if got != "Sign in" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestTranslateUsesContextLanguage(t *testing.T) {
	ctx := WithLanguage(context.Background(), "es")
	got := Translate(ctx, "nav.signin", nil)
	if got != "Iniciar sesión" {
		t.Fatalf("expected Spanish translation, got %q", got)
	}
}

func TestTranslateReturnsIDWhenMissing(t *testing.T) {
	got := Translate(context.Background(), "does.not.exist", nil)
	if got != "does.not.exist" {
		t.Fatalf("expected the id back, got %q", got)
	}
}

func TestTranslateInterpolatesData(t *testing.T) {
	got := Translate(context.Background(), "footer.copyright", map[string]any{"Year": 2026})
	if got == "" || got == "footer.copyright" {
		t.Fatalf("expected interpolated copyright line, got %q", got)
	}
}
