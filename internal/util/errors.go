package util

import "errors"

var (
	ErrQuestionNotFound      = errors.New("question not found")
	ErrWrongQuestionNotFound = errors.New("wrong question not found")
	ErrInvalidDifficulty     = errors.New("difficulty must be between 1 and 5")
	ErrChapterRequired       = errors.New("chapter is required")
	ErrInvalidExerciseMode   = errors.New("invalid exercise mode")
	ErrUnsupportedFileType   = errors.New("only .docx files are supported")
	ErrFileTooLarge          = errors.New("file too large")
	ErrInvalidDocument       = errors.New("unable to read document")
	ErrStudentRequired       = errors.New("student id is required")
)
