package model

type ImportSource string

const (
	ImportSourceUpload ImportSource = "upload"
	ImportSourceCLI    ImportSource = "cli"
)

// QuestionImport 一次 docx 导入的记录
type QuestionImport struct {
	BaseModel
	Filename   string       `gorm:"size:255" json:"filename"`
	Chapter    string       `gorm:"size:100;index" json:"chapter"`
	Difficulty int          `json:"difficulty"`
	Strategy   string       `gorm:"size:20" json:"strategy"`
	Parsed     int          `json:"parsed"`
	Imported   int          `json:"imported"`
	ArchiveURL string       `gorm:"size:512" json:"archiveUrl,omitempty"`
	Source     ImportSource `gorm:"size:20" json:"source"`
}

func (QuestionImport) TableName() string {
	return "question_imports"
}
