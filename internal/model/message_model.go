package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PageId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	AgentId   *uuid.UUID `gorm:"type:uuid;index"`
	FeatureId *uuid.UUID `gorm:"type:uuid;index"`
	Role      string     `gorm:"type:varchar(20);not null"`
	Content   string     `gorm:"type:text;not null"`
	Source    string     `gorm:"type:varchar(20);not null;default:'chat'"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index"`
}

func (Message) TableName() string {
	return "messages"
}
