package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"strconv"
)

// FileUpload is one file part in a multipart create/update.
type FileUpload struct {
	Field string
	Name  string
	Data  []byte
}

// encodeMultipart packs text fields and files into a multipart body.
// Field order is fields first, then files, both in the given order.
func encodeMultipart(fields [][2]string, files []FileUpload) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, kv := range fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", err
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func numField(key string, v float64) [2]string {
	return [2]string{key, strconv.FormatFloat(v, 'f', -1, 64)}
}
