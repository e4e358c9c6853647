package cgxml

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/arloliu/geomcodec/errs"
)

// XMLWriter renders the element tree as XML text.
//
// Start tags are held until the next call so that attributes can be added.
// Call Flush after the last element to write buffered output.
type XMLWriter struct {
	enc     *xml.Encoder
	pending *xml.StartElement
}

var _ StructuredWriter = (*XMLWriter)(nil)

// NewXMLWriter creates an XMLWriter that writes to w.
func NewXMLWriter(w io.Writer) *XMLWriter {
	return &XMLWriter{enc: xml.NewEncoder(w)}
}

// Indent enables pretty printing; see xml.Encoder.Indent.
func (x *XMLWriter) Indent(prefix, indent string) {
	x.enc.Indent(prefix, indent)
}

// Flush writes any buffered output to the underlying writer.
func (x *XMLWriter) Flush() error {
	if err := x.flushPending(); err != nil {
		return err
	}

	return x.enc.Flush()
}

func (x *XMLWriter) BeginSet(name string) error {
	if err := x.flushPending(); err != nil {
		return err
	}
	x.pending = &xml.StartElement{Name: xml.Name{Local: name}}

	return nil
}

func (x *XMLWriter) EndSet(name string) error {
	if err := x.flushPending(); err != nil {
		return err
	}

	return x.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

func (x *XMLWriter) BeginArray(name, _ string) error {
	return x.BeginSet(name)
}

func (x *XMLWriter) EndArray(name, _ string) error {
	return x.EndSet(name)
}

func (x *XMLWriter) Attribute(name, value string) error {
	if x.pending == nil {
		return errs.ErrMisplacedAttribute
	}
	x.pending.Attr = append(x.pending.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: value})

	return nil
}

func (x *XMLWriter) Bool(name string, v bool, _ bool) error {
	return x.leaf(name, strconv.FormatBool(v))
}

func (x *XMLWriter) Int(name string, v int64, _ bool) error {
	return x.leaf(name, strconv.FormatInt(v, 10))
}

func (x *XMLWriter) Double(name string, v float64, _ bool) error {
	return x.leaf(name, formatDouble(v))
}

func (x *XMLWriter) Text(name string, v string, _ bool) error {
	return x.leaf(name, v)
}

// BlockedDoubles writes vals as comma-separated text.
func (x *XMLWriter) BlockedDoubles(name string, _ bool, vals []float64) error {
	return x.leaf(name, joinDoubles(vals))
}

func (x *XMLWriter) leaf(name, text string) error {
	if err := x.flushPending(); err != nil {
		return err
	}
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := x.enc.EncodeToken(start); err != nil {
		return err
	}
	if text != "" {
		if err := x.enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}

	return x.enc.EncodeToken(start.End())
}

func (x *XMLWriter) flushPending() error {
	if x.pending == nil {
		return nil
	}
	start := *x.pending
	x.pending = nil

	return x.enc.EncodeToken(start)
}
