package finance_model

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title" gorm:"size:64;not null"`
	Description  string    `json:"description" gorm:"size:200"`
	Amount       float64   `json:"amount"`
	CurrencyCode string    `json:"currency_code" gorm:"size:10"`
	Attachment   string    `json:"attachment" gorm:"size:200"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	Created      time.Time `json:"created" gorm:"autoCreateTime"`
	Updated      time.Time `json:"updated" gorm:"autoUpdateTime"`

	Logs []*ExpenseLog `json:"-" gorm:"foreignKey:ExpenseID;constraint:OnDelete:CASCADE"`
}

type ExpenseLog struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title" gorm:"size:64;not null"`
	Description  string    `json:"description" gorm:"size:200"`
	Amount       float64   `json:"amount"`
	CurrencyCode string    `json:"currency_code" gorm:"size:10"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	ExpenseID    uint      `json:"expense_id" gorm:"index;not null"`
	Created      time.Time `json:"created" gorm:"autoCreateTime"`
	Updated      time.Time `json:"updated" gorm:"autoUpdateTime"`
}
