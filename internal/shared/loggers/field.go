package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldHttpBytes  = "http_bytes"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"
	FieldSourceID    = "source_id"
	FieldChunkID     = "chunk_id"
	FieldStreamID    = "stream_id"
	FieldWatermark   = "watermark"
	FieldWindowEnd   = "window_end"
)
