package marketplace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"reflect"
	"strings"

	console "github.com/goliatone/go-marketplace-admin/components/console"
)

var uploadType = reflect.TypeOf((*console.Upload)(nil))

// encodeBody serializes a request payload. Payloads carrying at least one
// file upload become multipart/form-data with scalar fields as form values
// and slices/objects JSON-stringified into a single field; everything else
// is plain JSON.
func encodeBody(payload any) (io.Reader, string, error) {
	if payload == nil {
		return bytes.NewReader([]byte("{}")), "application/json", nil
	}
	if hasUpload(reflect.ValueOf(payload)) {
		return encodeMultipart(payload)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(data), "application/json", nil
}

// hasUpload walks the payload looking for a non-nil *console.Upload.
func hasUpload(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return false
		}
		if v.Type() == uploadType {
			return true
		}
		return hasUpload(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() && hasUpload(v.Field(i)) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if hasUpload(v.Index(i)) {
				return true
			}
		}
	case reflect.Map:
		for _, key := range v.MapKeys() {
			if hasUpload(v.MapIndex(key)) {
				return true
			}
		}
	case reflect.Interface:
		if !v.IsNil() {
			return hasUpload(v.Elem())
		}
	}
	return false
}

func encodeMultipart(payload any) (io.Reader, string, error) {
	v := reflect.ValueOf(payload)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, "", fmt.Errorf("marketplace: multipart payload must be a struct, got %T", payload)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, omitEmpty := fieldName(field)
		if name == "-" {
			continue
		}
		value := v.Field(i)
		if omitEmpty && value.IsZero() {
			continue
		}
		if err := writeField(writer, name, value); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}

func writeField(writer *multipart.Writer, name string, value reflect.Value) error {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		if value.Type() == uploadType {
			return writeUpload(writer, name, value.Interface().(*console.Upload))
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.String:
		return writer.WriteField(name, value.String())
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return writer.WriteField(name, fmt.Sprint(value.Interface()))
	case reflect.Slice, reflect.Array:
		// A slice of uploads becomes repeated file parts under one name.
		if value.Type().Elem() == uploadType {
			for i := 0; i < value.Len(); i++ {
				if value.Index(i).IsNil() {
					continue
				}
				up := value.Index(i).Interface().(*console.Upload)
				if err := writeUpload(writer, name, up); err != nil {
					return err
				}
			}
			return nil
		}
		return writeJSONField(writer, name, value)
	case reflect.Struct, reflect.Map:
		return writeJSONField(writer, name, value)
	default:
		return writer.WriteField(name, fmt.Sprint(value.Interface()))
	}
}

func writeJSONField(writer *multipart.Writer, name string, value reflect.Value) error {
	data, err := json.Marshal(value.Interface())
	if err != nil {
		return err
	}
	return writer.WriteField(name, string(data))
}

func writeUpload(writer *multipart.Writer, name string, up *console.Upload) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, name, up.Name))
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	if up.Reader == nil {
		return nil
	}
	_, err = io.Copy(part, up.Reader)
	return err
}

func fieldName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name, false
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	if name == "" {
		name = field.Name
	}
	omitEmpty := false
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}
