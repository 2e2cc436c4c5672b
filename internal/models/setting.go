package models

// Setting 本地键值存储表（序列化 JSON 值）
type Setting struct {
	Key   string `gorm:"primarykey" json:"key"`  // 存储键
	Value string `gorm:"type:text" json:"value"` // 序列化后的值
}

// TableName 指定表名
func (Setting) TableName() string {
	return "settings"
}
