// Package voc разбирает XML-разметку в формате Pascal VOC.
//
// Интерпретируются только filename, size/{width,height} и
// object/{name,bndbox/{xmin,ymin,xmax,ymax}}. Поля folder, segmented, pose,
// occluded, truncated, difficult и depth игнорируются.
package voc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"facemask/internal/domain/entity"
)

// ParseError ошибка разбора файла разметки.
type ParseError struct {
	Path   string // путь к файлу, если известен
	Object int    // номер объекта в документе, -1 для полей документа
	Field  string // имя поля, пусто для ошибок XML
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parse annotation")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Object >= 0 {
		fmt.Fprintf(&b, ": object %d", e.Object)
	}
	if e.Field != "" {
		b.WriteString(": ")
		b.WriteString(e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is позволяет проверять ошибку через errors.Is(err, entity.ErrMalformedAnnotation).
func (e *ParseError) Is(target error) bool {
	return target == entity.ErrMalformedAnnotation
}

var errMissing = errors.New("element is missing")

type document struct {
	Filename *string     `xml:"filename"`
	Size     *sizeElem   `xml:"size"`
	Objects  []objectXML `xml:"object"`
}

type sizeElem struct {
	Width  *string `xml:"width"`
	Height *string `xml:"height"`
}

type objectXML struct {
	Name   *string `xml:"name"`
	BndBox *struct {
		XMin *string `xml:"xmin"`
		YMin *string `xml:"ymin"`
		XMax *string `xml:"xmax"`
		YMax *string `xml:"ymax"`
	} `xml:"bndbox"`
}

// ParseLabels возвращает объекты разметки в порядке документа.
// Элемент size необязателен и не читается.
func ParseLabels(r io.Reader) ([]entity.Object, error) {
	doc, err := decode(r)
	if err != nil {
		return nil, err
	}
	return doc.objects()
}

// ParseAnnotation возвращает разметку вместе с filename и size/{width,height}.
// В отличие от ParseLabels размер изображения обязателен.
func ParseAnnotation(r io.Reader) (*entity.Annotation, error) {
	doc, err := decode(r)
	if err != nil {
		return nil, err
	}

	if doc.Size == nil {
		return nil, &ParseError{Object: -1, Field: "size", Err: errMissing}
	}
	width, err := requireInt(doc.Size.Width, -1, "size/width")
	if err != nil {
		return nil, err
	}
	height, err := requireInt(doc.Size.Height, -1, "size/height")
	if err != nil {
		return nil, err
	}

	objects, err := doc.objects()
	if err != nil {
		return nil, err
	}

	var filename string
	if doc.Filename != nil {
		filename = strings.TrimSpace(*doc.Filename)
	}

	return &entity.Annotation{
		Filename: filename,
		Width:    width,
		Height:   height,
		Objects:  objects,
	}, nil
}

func decode(r io.Reader) (*document, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &ParseError{Object: -1, Err: err}
	}
	return &doc, nil
}

func (d *document) objects() ([]entity.Object, error) {
	objs := make([]entity.Object, 0, len(d.Objects))
	for i, raw := range d.Objects {
		if raw.Name == nil {
			return nil, &ParseError{Object: i, Field: "name", Err: errMissing}
		}
		if raw.BndBox == nil {
			return nil, &ParseError{Object: i, Field: "bndbox", Err: errMissing}
		}

		var box entity.BoundingBox
		coords := []struct {
			field string
			text  *string
			dst   *int
		}{
			{"bndbox/xmin", raw.BndBox.XMin, &box.XMin},
			{"bndbox/ymin", raw.BndBox.YMin, &box.YMin},
			{"bndbox/xmax", raw.BndBox.XMax, &box.XMax},
			{"bndbox/ymax", raw.BndBox.YMax, &box.YMax},
		}
		for _, c := range coords {
			v, err := requireInt(c.text, i, c.field)
			if err != nil {
				return nil, err
			}
			*c.dst = v
		}

		objs = append(objs, entity.Object{
			Class: entity.ClassLabel(strings.TrimSpace(*raw.Name)),
			Box:   box,
		})
	}
	return objs, nil
}

func requireInt(text *string, object int, field string) (int, error) {
	if text == nil {
		return 0, &ParseError{Object: object, Field: field, Err: errMissing}
	}
	v, err := strconv.Atoi(strings.TrimSpace(*text))
	if err != nil {
		return 0, &ParseError{Object: object, Field: field, Err: err}
	}
	return v, nil
}
