package domain

import (
	"path/filepath"
	"strings"
	"time"
)

type FileType string

const (
	FileTypeCSV  FileType = "csv"
	FileTypeXLSX FileType = "xlsx"
	FileTypeXLS  FileType = "xls"
)

const FileStatusUploaded = "uploaded"

// FileTypeFromName derives the file type from the extension of name.
func FileTypeFromName(name string) (FileType, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch FileType(ext) {
	case FileTypeCSV, FileTypeXLSX, FileTypeXLS:
		return FileType(ext), true
	}
	return "", false
}

func (t FileType) Extension() string {
	return "." + string(t)
}

// UploadedFile is the record of one accepted spreadsheet. Its metric rows
// reference it through MetricRecord.SourceFileID.
type UploadedFile struct {
	ID           int64     `json:"id"`
	StoredName   string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	FileType     FileType  `json:"file_type"`
	UploadedAt   time.Time `json:"upload_date"`
	SizeBytes    int64     `json:"file_size"`
	Status       string    `json:"status"`
}

// DatasetStats summarizes the valid rows of an upload.
type DatasetStats struct {
	TotalRows  int        `json:"totalRows"`
	Quarters   []string   `json:"quarters"`
	Metrics    []string   `json:"metrics"`
	Categories []string   `json:"categories"`
	ValueRange ValueRange `json:"valueRange"`
}

type ValueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
