package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	TriggerManual    = "manual"
	TriggerScheduled = "scheduled"
)

// SyncRun is the persisted audit row for one sync invocation, successful or
// not. It is what operators query instead of scraping logs.
type SyncRun struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	RunID      string       `gorm:"column:run_id;not null" json:"run_id"`
	Trigger    string       `gorm:"column:triggered_by;type:text;not null" json:"trigger"`
	StartedAt  time.Time    `gorm:"not null" json:"started_at"`
	FinishedAt time.Time    `gorm:"not null" json:"finished_at"`

	PaymentsCreated int `gorm:"not null;default:0" json:"payments_created"`
	PaymentsUpdated int `gorm:"not null;default:0" json:"payments_updated"`
	PaymentsSkipped int `gorm:"not null;default:0" json:"payments_skipped"`
	PaymentsFailed  int `gorm:"not null;default:0" json:"payments_failed"`

	PayoutsCreated int `gorm:"not null;default:0" json:"payouts_created"`
	PayoutsUpdated int `gorm:"not null;default:0" json:"payouts_updated"`
	PayoutsSkipped int `gorm:"not null;default:0" json:"payouts_skipped"`
	PayoutsFailed  int `gorm:"not null;default:0" json:"payouts_failed"`

	Error string `gorm:"column:error" json:"error,omitempty"`
}

func (SyncRun) TableName() string { return "sync_runs" }
