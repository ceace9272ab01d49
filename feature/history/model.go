package history

import "time"

// Status is the outcome of a single image download.
type Status string

const (
	StatusDownloaded Status = "downloaded"
	StatusFailed     Status = "failed"
	StatusSkipped    Status = "skipped"
)

// TableName is the table holding download records.
const TableName = "download_history"

// DownloadRecord is one attempted image download.
type DownloadRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FrameID   string    `gorm:"column:frame_id;size:64;index" json:"frame_id"`
	Name      string    `gorm:"column:name;size:255" json:"name"`
	Scale     int       `gorm:"column:scale" json:"scale"`
	Format    string    `gorm:"column:format;size:8" json:"format"`
	Path      string    `gorm:"column:path;size:1024" json:"path"`
	Bytes     int64     `gorm:"column:bytes" json:"bytes"`
	Status    Status    `gorm:"column:status;size:16;index" json:"status"`
	Error     string    `gorm:"column:error;type:text" json:"error,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
}

// TableName overrides the table name used by DownloadRecord.
func (DownloadRecord) TableName() string {
	return TableName
}

// requiredColumns must exist for records to be written.
var requiredColumns = []string{"id", "frame_id", "name", "scale", "format", "path", "bytes", "status", "error", "created_at"}
