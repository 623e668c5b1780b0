package domain

import (
	"encoding/json"
	"time"
)

// UploadedFile é o arquivo recebido no campo "file" do formulário multipart
type UploadedFile struct {
	Name    string
	Size    int64
	Content []byte
}

// UploadResult é o resultado de um upload aceito
type UploadResult struct {
	UploadID string
	Metrics  *Metrics
}

// UploadEntry é o registro de um upload aceito no arquivo histórico
type UploadEntry struct {
	ID         string          `json:"id"`
	FileName   string          `json:"file_name"`
	SizeBytes  int64           `json:"size_bytes"`
	Payload    json.RawMessage `json:"payload"`
	ReceivedAt time.Time       `json:"received_at"`
}

// MetricsUpdatedEvent é publicado no broker depois de cada upload aceito
type MetricsUpdatedEvent struct {
	UploadID    string          `json:"upload_id"`
	FileName    string          `json:"file_name"`
	SizeBytes   int64           `json:"size_bytes"`
	LastUpdated time.Time       `json:"last_updated"`
	KPIs        json.RawMessage `json:"kpis"`
}
