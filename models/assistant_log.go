package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AssistantSucceeded = "succeeded"
	AssistantFailed    = "failed"
)

// AssistantLog keeps one AI chat exchange together with the data snapshot
// that was sent as context, so answers can be audited against what the
// assistant actually saw.
type AssistantLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Question string         `gorm:"type:text" json:"question"`
	Answer   string         `gorm:"type:text" json:"answer"`
	Context  datatypes.JSON `gorm:"column:context" json:"context,omitempty"`
	Status   string         `gorm:"size:32" json:"status"`
}
