package domain

import (
	"time"
)

// Snack is the durable catalog entry. Name, brand, and flavor are
// user-supplied and required; everything else is optional. Rating is a
// nullable 1-3 value: NULL means "not rated" and is never conflated
// with zero.
type Snack struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Brand     string    `json:"brand" gorm:"type:text;not null"`
	Flavor    string    `json:"flavor" gorm:"type:text;not null"`
	Rating    *int      `json:"rating" gorm:"type:smallint"`
	Price     *float64  `json:"price,omitempty" gorm:"type:numeric"`
	Store     *string   `json:"store,omitempty" gorm:"type:text"`
	UPCCode   *string   `json:"upc_code,omitempty" gorm:"column:upc_code;type:text"`
	ImageURL  *string   `json:"image_url,omitempty" gorm:"column:image_url;type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Snack) TableName() string { return "snacks" }
