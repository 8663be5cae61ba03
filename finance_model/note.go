package finance_model

import "time"

// Note is a free-form note. Notes are not scoped to an owner.
type Note struct {
	ID      uint      `json:"id" gorm:"primarykey"`
	Title   string    `json:"title" gorm:"size:64;not null"`
	Content string    `json:"content"`
	Created time.Time `json:"created" gorm:"autoCreateTime"`
	Updated time.Time `json:"updated" gorm:"autoUpdateTime"`
}
