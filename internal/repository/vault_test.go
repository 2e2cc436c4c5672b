package repository

import (
	"testing"
)

func TestVaultPutGetRoundTrip(t *testing.T) {
	settings := NewSettingRepository(setupTestDB(t))
	vault, err := NewVault(settings, "test-secret")
	if err != nil {
		t.Fatalf("new vault: %v", err)
	}

	if err := vault.Put("access_token", "tok-123"); err != nil {
		t.Fatalf("put: %v", err)
	}

	// 底层存储只见密文
	raw, ok, err := settings.GetByKey("access_token")
	if err != nil || !ok {
		t.Fatalf("raw get: ok=%v err=%v", ok, err)
	}
	if raw == "tok-123" {
		t.Fatalf("value stored in plaintext")
	}

	val, ok, err := vault.Get("access_token")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || val != "tok-123" {
		t.Fatalf("expected tok-123, got %q ok=%v", val, ok)
	}
}

func TestVaultGetMissing(t *testing.T) {
	vault, err := NewVault(NewSettingRepository(setupTestDB(t)), "test-secret")
	if err != nil {
		t.Fatalf("new vault: %v", err)
	}
	_, ok, err := vault.Get("missing")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Fatalf("expected missing key")
	}
}

func TestVaultWrongSecretFails(t *testing.T) {
	settings := NewSettingRepository(setupTestDB(t))
	vault, err := NewVault(settings, "secret-a")
	if err != nil {
		t.Fatalf("new vault: %v", err)
	}
	if err := vault.Put("k", "v"); err != nil {
		t.Fatalf("put: %v", err)
	}

	other, err := NewVault(settings, "secret-b")
	if err != nil {
		t.Fatalf("new vault: %v", err)
	}
	if _, _, err := other.Get("k"); err != ErrVaultCorrupted {
		t.Fatalf("expected ErrVaultCorrupted, got %v", err)
	}
}

func TestVaultDelete(t *testing.T) {
	vault, err := NewVault(NewSettingRepository(setupTestDB(t)), "test-secret")
	if err != nil {
		t.Fatalf("new vault: %v", err)
	}
	if err := vault.Put("k", "v"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := vault.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := vault.Get("k"); ok {
		t.Fatalf("expected key deleted")
	}
}
