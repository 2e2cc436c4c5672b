package repository

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// ErrVaultCorrupted 密文无法解开
var ErrVaultCorrupted = errors.New("vault: ciphertext corrupted")

const vaultSalt = "storefront-vault-v1"

// Vault 对敏感键值（令牌、账号凭据）做加密存储。
// 密钥由配置的口令经 scrypt 派生，密文使用 XChaCha20-Poly1305。
type Vault struct {
	settings SettingRepository
	key      []byte
}

// NewVault 创建加密存储
func NewVault(settings SettingRepository, secret string) (*Vault, error) {
	key, err := scrypt.Key([]byte(secret), []byte(vaultSalt), 1<<15, 8, 1, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("vault: derive key: %w", err)
	}
	return &Vault{settings: settings, key: key}, nil
}

// Put 加密并写入
func (v *Vault) Put(key, value string) error {
	aead, err := chacha20poly1305.NewX(v.key)
	if err != nil {
		return err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	sealed := aead.Seal(nonce, nonce, []byte(value), nil)
	return v.settings.Upsert(key, base64.StdEncoding.EncodeToString(sealed))
}

// Get 读取并解密。键不存在时返回 ok=false。
func (v *Vault) Get(key string) (string, bool, error) {
	raw, ok, err := v.settings.GetByKey(key)
	if err != nil || !ok {
		return "", false, err
	}
	sealed, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", false, ErrVaultCorrupted
	}
	aead, err := chacha20poly1305.NewX(v.key)
	if err != nil {
		return "", false, err
	}
	if len(sealed) < aead.NonceSize() {
		return "", false, ErrVaultCorrupted
	}
	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", false, ErrVaultCorrupted
	}
	return string(plain), true, nil
}

// Delete 删除键
func (v *Vault) Delete(key string) error {
	return v.settings.Delete(key)
}
