package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/storefront-client/internal/constants"
	"github.com/storefront-client/internal/repository"
)

// Session 当前登录态。令牌与账号凭据走加密存储，
// 其余键（客户编号、收货地址）走明文键值存储。
type Session struct {
	vault    *repository.Vault
	settings repository.SettingRepository
}

// New 创建会话
func New(vault *repository.Vault, settings repository.SettingRepository) *Session {
	return &Session{vault: vault, settings: settings}
}

// Token 读取访问令牌
func (s *Session) Token() (string, bool, error) {
	return s.vault.Get(constants.KeyAccessToken)
}

// SetToken 保存访问令牌
func (s *Session) SetToken(token string) error {
	return s.vault.Put(constants.KeyAccessToken, token)
}

// TokenExpired 判断令牌是否过期。只解析声明不校验签名，
// 签名校验是后端的事。无令牌或解析失败按过期处理。
func (s *Session) TokenExpired() bool {
	token, ok, err := s.Token()
	if err != nil || !ok || token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(time.Now())
}

// CustomerID 读取客户编号
func (s *Session) CustomerID() (string, bool, error) {
	return s.settings.GetByKey(constants.KeyCustomerID)
}

// SetCustomerID 保存客户编号
func (s *Session) SetCustomerID(id string) error {
	return s.settings.Upsert(constants.KeyCustomerID, id)
}

// Credentials 读取保存的登录凭据
func (s *Session) Credentials() (email string, password string, ok bool, err error) {
	email, ok, err = s.vault.Get(constants.KeyCredentialEmail)
	if err != nil || !ok {
		return "", "", false, err
	}
	password, ok, err = s.vault.Get(constants.KeyCredentialPass)
	if err != nil || !ok {
		return "", "", false, err
	}
	return email, password, true, nil
}

// SetCredentials 保存登录凭据，用于令牌过期后的静默重登
func (s *Session) SetCredentials(email, password string) error {
	if err := s.vault.Put(constants.KeyCredentialEmail, email); err != nil {
		return err
	}
	return s.vault.Put(constants.KeyCredentialPass, password)
}

// DeliveryAddress 读取收货地址
func (s *Session) DeliveryAddress() (string, bool, error) {
	return s.settings.GetByKey(constants.KeyDeliveryAddress)
}

// SetDeliveryAddress 保存收货地址
func (s *Session) SetDeliveryAddress(address string) error {
	return s.settings.Upsert(constants.KeyDeliveryAddress, address)
}

// Clear 退出登录，清空全部会话键
func (s *Session) Clear() error {
	for _, key := range []string{
		constants.KeyAccessToken,
		constants.KeyCredentialEmail,
		constants.KeyCredentialPass,
	} {
		if err := s.vault.Delete(key); err != nil {
			return err
		}
	}
	for _, key := range []string{
		constants.KeyCustomerID,
		constants.KeyDeliveryAddress,
	} {
		if err := s.settings.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
