package method

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("payment method not found")
	ErrInUse    = errors.New("payment method is referenced by at least one payment")
)

// Method is a way a client can pay (cash, transfer, wallet...).
type Method struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	MethodID  string         `gorm:"column:method_id;size:32;uniqueIndex:ux_methods_method_id" json:"method_id"`
	Name      string         `gorm:"column:name;size:100;uniqueIndex:ux_methods_name" json:"name"`
	Active    bool           `gorm:"column:active;default:true" json:"active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Method) TableName() string { return "payment_methods" }
