package repository

import (
	"errors"

	"github.com/storefront-client/internal/models"

	"gorm.io/gorm"
)

// SettingRepository 本地键值存储访问接口
type SettingRepository interface {
	GetByKey(key string) (string, bool, error)
	Upsert(key, value string) error
	Delete(key string) error
}

// GormSettingRepository GORM 实现
type GormSettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository 创建键值存储仓库
func NewSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// GetByKey 读取键值，未设置时返回 false
func (r *GormSettingRepository) GetByKey(key string) (string, bool, error) {
	var setting models.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return setting.Value, true, nil
}

// Upsert 写入或更新键值
func (r *GormSettingRepository) Upsert(key, value string) error {
	var setting models.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&models.Setting{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	setting.Value = value
	return r.db.Save(&setting).Error
}

// Delete 删除键值
func (r *GormSettingRepository) Delete(key string) error {
	return r.db.Where("key = ?", key).Delete(&models.Setting{}).Error
}
