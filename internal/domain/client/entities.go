package client

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("client not found")
	ErrInUse    = errors.New("client has loans on record")
)

type Client struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	ClientID  string         `gorm:"column:client_id;size:32;uniqueIndex:ux_clients_client_id" json:"client_id"`
	FullName  string         `gorm:"column:full_name;size:200" json:"full_name"`
	Document  string         `gorm:"column:document;size:20;uniqueIndex:ux_clients_document" json:"document"`
	Phone     string         `gorm:"column:phone;size:20" json:"phone"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Client) TableName() string { return "clients" }
