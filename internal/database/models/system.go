package models

import (
	"time"

	"gorm.io/datatypes"
)

// SystemConfig is one editable key/value setting
type SystemConfig struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	Key         string          `gorm:"column:config_key;size:100;uniqueIndex;not null" json:"key"`
	Value       *string         `json:"value,omitempty"`
	ValueType   ConfigValueType `gorm:"size:20;not null;default:texto" json:"value_type"`
	Description *string         `json:"description,omitempty"`
	Group       *string         `gorm:"column:config_group;size:50" json:"group,omitempty"`
	Editable    *bool           `gorm:"not null;default:true" json:"editable"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName overrides the table name
func (SystemConfig) TableName() string {
	return "system_config"
}

type SystemBackup struct {
	ID              uint         `gorm:"primarykey" json:"id"`
	AdminID         *uint        `gorm:"index" json:"admin_id,omitempty"`
	FileName        string       `gorm:"size:255;not null" json:"file_name"`
	FilePath        string       `gorm:"size:500;not null" json:"file_path"`
	SizeBytes       int64        `gorm:"not null" json:"size_bytes"`
	BackupType      BackupType   `gorm:"size:20;not null" json:"backup_type"`
	Status          BackupStatus `gorm:"size:20;not null;default:en_progreso" json:"status"`
	StartedAt       time.Time    `gorm:"autoCreateTime" json:"started_at"`
	FinishedAt      *time.Time   `json:"finished_at,omitempty"`
	DurationSeconds *int         `json:"duration_seconds,omitempty"`
	ErrorMessage    *string      `json:"error_message,omitempty"`
}

// TableName overrides the table name
func (SystemBackup) TableName() string {
	return "system_backups"
}

type SystemLog struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Level     LogLevel       `gorm:"size:20;not null" json:"level"`
	Component string         `gorm:"size:100;not null" json:"component"`
	Message   string         `gorm:"not null" json:"message"`
	Context   datatypes.JSON `json:"context,omitempty"`
	IPAddress *string        `gorm:"column:ip_address;size:45" json:"ip_address,omitempty"`
	UserAgent *string        `gorm:"size:500" json:"user_agent,omitempty"`
	UserID    *uint          `gorm:"index" json:"user_id,omitempty"`
	AdminID   *uint          `gorm:"index" json:"admin_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// TableName overrides the table name
func (SystemLog) TableName() string {
	return "system_logs"
}

// SystemMetric is a recorded measurement, numeric or textual
type SystemMetric struct {
	ID                uint              `gorm:"primarykey" json:"id"`
	MetricName        string            `gorm:"size:100;not null" json:"metric_name"`
	NumericValue      *float64          `gorm:"type:numeric(15,4)" json:"numeric_value,omitempty"`
	TextValue         *string           `json:"text_value,omitempty"`
	Unit              *string           `gorm:"size:20" json:"unit,omitempty"`
	Category          *string           `gorm:"size:50" json:"category,omitempty"`
	RecordedAt        time.Time         `gorm:"autoCreateTime" json:"recorded_at"`
	AggregationPeriod AggregationPeriod `gorm:"size:20;not null;default:dia" json:"aggregation_period"`
}

// TableName overrides the table name
func (SystemMetric) TableName() string {
	return "system_metrics"
}
