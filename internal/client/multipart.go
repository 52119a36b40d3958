package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

type formField struct {
	name, value string
}

// multipartForm is a multipart/form-data body: plain fields followed by one file.
type multipartForm struct {
	fields    []formField
	fileField string
	fileName  string
	file      io.Reader
}

func (f *multipartForm) encode() (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.name, fld.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", fld.name, err)
		}
	}
	if f.file != nil {
		part, err := w.CreateFormFile(f.fileField, f.fileName)
		if err != nil {
			return nil, "", fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(part, f.file); err != nil {
			return nil, "", fmt.Errorf("copy file part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
