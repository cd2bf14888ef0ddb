package fixer

import (
	"errors"
	"testing"
)

func TestJSONCodec_ContentType(t *testing.T) {
	if ct := (JSONCodec{}).ContentType(); ct != "application/json" {
		t.Errorf("expected 'application/json', got %q", ct)
	}
}

func TestYAMLCodec_ContentType(t *testing.T) {
	if ct := (YAMLCodec{}).ContentType(); ct != "application/x-yaml" {
		t.Errorf("expected 'application/x-yaml', got %q", ct)
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	data := []byte(`{"start": 120, "offset": 10, "reverse": true, "sensitivity": 4}`)

	cfg, err := LoadConfig(data, JSONCodec{})
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Start == nil || *cfg.Start != 120 {
		t.Errorf("expected start 120, got %v", cfg.Start)
	}
	if cfg.End != nil {
		t.Errorf("expected end to stay derived, got %d", *cfg.End)
	}
	if cfg.Offset != 10 {
		t.Errorf("expected offset 10, got %d", cfg.Offset)
	}
	if !cfg.Reverse {
		t.Error("expected reverse mode")
	}
	if cfg.Sensitivity != 4 {
		t.Errorf("expected sensitivity 4, got %d", cfg.Sensitivity)
	}
}

func TestLoadConfig_YAMLKeepsDefaults(t *testing.T) {
	data := []byte("end: 300\nauto_padding: true\nclasses:\n  prefix: header\n")

	cfg, err := LoadConfig(data, YAMLCodec{})
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.End == nil || *cfg.End != 300 {
		t.Errorf("expected end 300, got %v", cfg.End)
	}
	if !cfg.AutoPadding {
		t.Error("expected auto padding")
	}
	if !cfg.ScrollEvent || !cfg.AutoLoad {
		t.Error("expected scroll and load notifications to stay enabled")
	}
	if cfg.ResizeDebounceMs != 100 {
		t.Errorf("expected default debounce 100ms, got %d", cfg.ResizeDebounceMs)
	}
	if cfg.Classes.Container != "header-container" {
		t.Errorf("expected 'header-container', got %q", cfg.Classes.Container)
	}
	if cfg.Classes.Fixed != "is-fixed" {
		t.Errorf("expected 'is-fixed', got %q", cfg.Classes.Fixed)
	}
}

func TestLoadConfig_InvalidDocument(t *testing.T) {
	_, err := LoadConfig([]byte(`{not valid json}`), JSONCodec{})
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestLoadConfig_NegativeSensitivity(t *testing.T) {
	_, err := LoadConfig([]byte("sensitivity: -3\n"), YAMLCodec{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}
