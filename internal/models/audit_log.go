package models

import "time"

// AuditLog records API operations for traceability.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RequestID string    `gorm:"size:36;index" json:"requestId"`
	Method    string    `gorm:"size:16" json:"method"`
	Path      string    `gorm:"size:255" json:"path"`
	Status    int       `json:"status"`
	IP        string    `gorm:"size:64" json:"ip"`
	UserAgent string    `gorm:"size:255" json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
}
