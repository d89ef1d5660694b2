package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// Manuscript upload constraints.
const (
	MimePDF         = "application/pdf"
	MimeOctetStream = "application/octet-stream"
	MaxManuscriptMB = 25
)

var AllowedManuscriptExtensions = []string{".pdf", ".doc", ".docx"}
