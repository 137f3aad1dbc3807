package util

const DateFormat = "2006-01-02"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 题目导入相关常量
const (
	DocxExtension = ".docx"
	MimeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeZip       = "application/zip"
)

const (
	MinDifficulty = 1
	MaxDifficulty = 5

	DefaultPageSize = 10
	MaxPageSize     = 100

	DefaultExerciseCount = 10
	MaxExerciseCount     = 100
	DefaultWrongLimit    = 20
)

// StudentIDHeader 由上游网关写入的学生标识
const StudentIDHeader = "X-Student-ID"
