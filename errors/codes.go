package errors

// ErrorCode là mã lỗi trả về cho client
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT ErrorCode = 2
	ErrorCode_NOT_FOUND        ErrorCode = 3
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 4

	// Transcript
	ErrorCode_TRANSCRIPT_EMPTY              ErrorCode = 100
	ErrorCode_TRANSCRIPT_TOO_LARGE          ErrorCode = 101
	ErrorCode_TRANSCRIPT_UNSUPPORTED_FORMAT ErrorCode = 102
	ErrorCode_TRANSCRIPT_PROCESSING_FAILED  ErrorCode = 103

	// Meeting record
	ErrorCode_RECORD_NOT_FOUND     ErrorCode = 200
	ErrorCode_RECORD_EXPORT_FAILED ErrorCode = 201

	// Integration
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 300
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 301

	// Database
	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 400
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 401
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                       "HTTP_OK",
	ErrorCode_INTERNAL:                      "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:              "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                     "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:               "INVALID_PAYLOAD",
	ErrorCode_TRANSCRIPT_EMPTY:              "TRANSCRIPT_EMPTY",
	ErrorCode_TRANSCRIPT_TOO_LARGE:          "TRANSCRIPT_TOO_LARGE",
	ErrorCode_TRANSCRIPT_UNSUPPORTED_FORMAT: "TRANSCRIPT_UNSUPPORTED_FORMAT",
	ErrorCode_TRANSCRIPT_PROCESSING_FAILED:  "TRANSCRIPT_PROCESSING_FAILED",
	ErrorCode_RECORD_NOT_FOUND:              "RECORD_NOT_FOUND",
	ErrorCode_RECORD_EXPORT_FAILED:          "RECORD_EXPORT_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED:    "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:      "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:          "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:               "DB_QUERY_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
