package bootstrap

import (
	"context"
	"strings"
	"testing"

	"github.com/kbukum/faultkit/apperr"
	"github.com/kbukum/faultkit/code"
	"github.com/kbukum/faultkit/config"
)

func testSettings() *config.Settings {
	return &config.Settings{
		Name:          "orders-api",
		Environment:   "staging",
		DefaultLocale: "en",
		Locales:       []string{"en"},
		CatalogDir:    "testdata/catalog",
	}
}

func TestSetup_Success(t *testing.T) {
	app, err := Setup(testSettings(), code.NewRegistry())
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if app.Handler == nil || app.Catalog == nil || app.Logger == nil {
		t.Fatal("expected all components wired")
	}

	resp := app.Handler.Handle(context.Background(), apperr.New(code.BadConfig, "config.properties"), "en")
	if resp.UserMessage != "Invalid configuration. File: config.properties" {
		t.Errorf("unexpected message %q", resp.UserMessage)
	}
}

func TestSetup_MissingTemplate_RefusesToServe(t *testing.T) {
	reg := code.NewRegistry()
	reg.Register("QUOTA_EXCEEDED")

	_, err := Setup(testSettings(), reg)
	if err == nil {
		t.Fatal("expected Setup to fail for unresolvable code")
	}
	if !strings.Contains(err.Error(), "QUOTA_EXCEEDED") {
		t.Errorf("expected the missing pair named, got %v", err)
	}
	if !strings.Contains(err.Error(), "refusing to serve") {
		t.Errorf("expected startup refusal, got %v", err)
	}
}

func TestSetup_InvalidSettings(t *testing.T) {
	s := testSettings()
	s.Name = ""
	if _, err := Setup(s, code.NewRegistry()); err == nil {
		t.Error("expected Setup to fail on invalid settings")
	}
}

func TestSetup_MissingCatalogDir(t *testing.T) {
	s := testSettings()
	s.CatalogDir = "testdata/absent"
	if _, err := Setup(s, code.NewRegistry()); err == nil {
		t.Error("expected Setup to fail on missing catalog dir")
	}
}

func TestSetupFromFile_Success(t *testing.T) {
	app, err := SetupFromFile("testdata/config.yml", code.NewRegistry())
	if err != nil {
		t.Fatalf("SetupFromFile failed: %v", err)
	}
	if app.Settings.Name != "orders-api" {
		t.Errorf("expected name from file, got %s", app.Settings.Name)
	}
}

func TestSetupFromFile_MissingFile(t *testing.T) {
	if _, err := SetupFromFile("testdata/absent.yml", code.NewRegistry()); err == nil {
		t.Error("expected error for missing settings file")
	}
}
