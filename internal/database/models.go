package database

import (
	"time"

	"gorm.io/gorm"
)

// RequestLog is one audited call to a file endpoint.
type RequestLog struct {
	gorm.Model
	RequestID    string    `json:"request_id" gorm:"size:36"`
	Method       string    `json:"method"`
	Route        string    `json:"route"`
	Path         string    `json:"path"`
	FileID       string    `json:"file_id"`
	AppearanceID string    `json:"appearance_id"`
	AgencyID     string    `json:"agency_id"`
	PartID       string    `json:"part_id"`
	Status       int       `json:"status"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"error_message"`
	LatencyMs    int64     `json:"latency_ms"`
	RequestTime  time.Time `json:"request_time"`
	IPAddress    string    `json:"ip_address"`
}

func (RequestLog) TableName() string {
	return "request_logs"
}
