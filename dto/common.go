package dto

// DataPayload bọc payload dưới khóa "data" như backend gốc.
type DataPayload struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}
