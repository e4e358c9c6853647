package cgxml

// Namespaces written on root and envelope elements.
const (
	CommonGeometryNamespace = "http://www.bentley.com/schemas/Bentley.Geometry.Common.1.0"
	ECSerializableNamespace = "http://www.bentley.com/schemas/Bentley.ECSerializable.1.0"
)

// StructuredWriter receives the element tree produced by a Writer.
//
// Sets and arrays nest; every BeginSet is matched by an EndSet with the same
// name and every BeginArray by an EndArray. Attribute is only valid directly
// after BeginSet or BeginArray. Leaf values marked nameOptional are array
// items whose element name a compact back end may omit.
type StructuredWriter interface {
	BeginSet(name string) error
	EndSet(name string) error
	BeginArray(name, itemName string) error
	EndArray(name, itemName string) error
	Attribute(name, value string) error

	Bool(name string, v bool, nameOptional bool) error
	Int(name string, v int64, nameOptional bool) error
	Double(name string, v float64, nameOptional bool) error
	Text(name string, v string, nameOptional bool) error
	BlockedDoubles(name string, nameOptional bool, vals []float64) error
}

// stickyWriter forwards to a StructuredWriter until a call fails. Every
// later call returns that first error without reaching the sink.
type stickyWriter struct {
	sw  StructuredWriter
	err error
}

func (s *stickyWriter) do(fn func() error) error {
	if s.err == nil {
		s.err = fn()
	}

	return s.err
}

func (s *stickyWriter) BeginSet(name string) error {
	return s.do(func() error { return s.sw.BeginSet(name) })
}

func (s *stickyWriter) EndSet(name string) error {
	return s.do(func() error { return s.sw.EndSet(name) })
}

func (s *stickyWriter) BeginArray(name, itemName string) error {
	return s.do(func() error { return s.sw.BeginArray(name, itemName) })
}

func (s *stickyWriter) EndArray(name, itemName string) error {
	return s.do(func() error { return s.sw.EndArray(name, itemName) })
}

func (s *stickyWriter) Attribute(name, value string) error {
	return s.do(func() error { return s.sw.Attribute(name, value) })
}

func (s *stickyWriter) Bool(name string, v bool, nameOptional bool) error {
	return s.do(func() error { return s.sw.Bool(name, v, nameOptional) })
}

func (s *stickyWriter) Int(name string, v int64, nameOptional bool) error {
	return s.do(func() error { return s.sw.Int(name, v, nameOptional) })
}

func (s *stickyWriter) Double(name string, v float64, nameOptional bool) error {
	return s.do(func() error { return s.sw.Double(name, v, nameOptional) })
}

func (s *stickyWriter) Text(name string, v string, nameOptional bool) error {
	return s.do(func() error { return s.sw.Text(name, v, nameOptional) })
}

func (s *stickyWriter) BlockedDoubles(name string, nameOptional bool, vals []float64) error {
	return s.do(func() error { return s.sw.BlockedDoubles(name, nameOptional, vals) })
}
