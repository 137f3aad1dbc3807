package util

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// ValidateMimeType 深度校验文件 MIME 类型
// allowedTypes: 允许的 MIME 前缀或完整类型，如 "application/zip"
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buffer[:n])

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}

// IsDocx 按扩展名判断，大小写不敏感
func IsDocx(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), DocxExtension)
}

// ValidateDocx docx 本质是 zip 包，嗅探结果为 application/zip
func ValidateDocx(filename string, reader io.Reader) error {
	if !IsDocx(filename) {
		return ErrUnsupportedFileType
	}
	if _, err := ValidateMimeType(reader, []string{MimeZip}); err != nil {
		return ErrUnsupportedFileType
	}
	return nil
}
