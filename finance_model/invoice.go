package finance_model

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title" gorm:"size:64;not null"`
	Description  string    `json:"description" gorm:"size:200"`
	Amount       float64   `json:"amount"`
	CurrencyCode string    `json:"currency_code" gorm:"size:10"`
	Attachment   string    `json:"attachment" gorm:"size:200"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Created      time.Time `json:"created" gorm:"autoCreateTime"`
	Updated      time.Time `json:"updated" gorm:"autoUpdateTime"`

	Logs []*InvoiceLog `json:"-" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

type InvoiceLog struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title" gorm:"size:64;not null"`
	Description  string    `json:"description" gorm:"size:200"`
	Amount       float64   `json:"amount"`
	CurrencyCode string    `json:"currency_code" gorm:"size:10"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	InvoiceID    uint      `json:"invoice_id" gorm:"index;not null"`
	Created      time.Time `json:"created" gorm:"autoCreateTime"`
	Updated      time.Time `json:"updated" gorm:"autoUpdateTime"`
}
