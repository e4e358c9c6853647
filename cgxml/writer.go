package cgxml

import (
	"fmt"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/options"
)

// Writer walks geometry trees and emits them on a StructuredWriter.
//
// A Writer holds only its configuration; nesting depth is passed down the
// walk, so one instance may serve many goroutines as long as each call uses
// its own StructuredWriter.
type Writer struct {
	*WriterConfig
}

// NewWriter creates a Writer with the given options.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	config := newWriterConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Writer{WriterConfig: config}, nil
}

// WriteGeometry emits any geometry value as a root element.
//
// Returns errs.ErrUnsupportedGeometry when a node has no element form, and
// errs.ErrMaxDepthExceeded when the tree nests too deeply.
func (w *Writer) WriteGeometry(sw StructuredWriter, g geometry.Geometry) error {
	if sw == nil {
		return errs.ErrNilWriter
	}
	if geometry.IsNil(g) {
		return errs.ErrNilGeometry
	}

	return (&walk{Writer: w, sw: &stickyWriter{sw: sw}}).geometry(g, 0)
}

// WriteCurvePrimitive emits a single curve primitive.
func (w *Writer) WriteCurvePrimitive(sw StructuredWriter, c geometry.CurvePrimitive) error {
	return w.WriteGeometry(sw, c)
}

// WriteCurveVector emits a curve vector.
func (w *Writer) WriteCurveVector(sw StructuredWriter, cv *geometry.CurveVector) error {
	return w.WriteGeometry(sw, cv)
}

// WriteSolid emits a solid primitive.
func (w *Writer) WriteSolid(sw StructuredWriter, s geometry.SolidPrimitive) error {
	return w.WriteGeometry(sw, s)
}

// WriteSurface emits a B-spline surface.
func (w *Writer) WriteSurface(sw StructuredWriter, s *geometry.BsplineSurface) error {
	return w.WriteGeometry(sw, s)
}

// WritePolyface emits a mesh as an IndexedMesh element.
func (w *Writer) WritePolyface(sw StructuredWriter, p *geometry.Polyface) error {
	return w.WriteGeometry(sw, p)
}

// WriteGeometryList emits a Group element. A nil list writes an empty group.
func (w *Writer) WriteGeometryList(sw StructuredWriter, list geometry.GeometryList) error {
	if sw == nil {
		return errs.ErrNilWriter
	}
	if list == nil {
		list = geometry.GeometryList{}
	}

	return (&walk{Writer: w, sw: &stickyWriter{sw: sw}}).geometry(list, 0)
}

// walk carries the sink through one write call.
type walk struct {
	*Writer
	sw StructuredWriter
}

func (k *walk) geometry(g geometry.Geometry, depth int) error {
	if depth > k.maxDepth {
		return errs.ErrMaxDepthExceeded
	}
	if geometry.IsNil(g) {
		return errs.ErrNilGeometry
	}

	switch v := g.(type) {
	case geometry.CurvePrimitive:
		return k.curvePrimitive(v, depth)
	case *geometry.CurveVector:
		return k.curveVector(v, depth)
	case geometry.SolidPrimitive:
		return k.solid(v, depth)
	case *geometry.BsplineSurface:
		return k.surface(v, depth)
	case *geometry.Polyface:
		return k.polyface(v, depth)
	case geometry.GeometryList:
		return k.group(v, depth)
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedGeometry, g)
	}
}

func (k *walk) group(list geometry.GeometryList, depth int) error {
	return k.set("Group", depth, func() error {
		return k.array("ListOfMember", "Member", func() error {
			for _, g := range list {
				if err := k.geometry(g, depth+1); err != nil {
					return err
				}
			}

			return nil
		})
	})
}

// set emits a named set around body. The root set carries the namespace.
func (k *walk) set(name string, depth int, body func() error) error {
	if err := k.sw.BeginSet(name); err != nil {
		return err
	}
	if depth == 0 {
		if err := k.sw.Attribute("xmlns", CommonGeometryNamespace); err != nil {
			return err
		}
	}
	if err := body(); err != nil {
		return err
	}

	return k.sw.EndSet(name)
}

// child emits a nested, non-root set.
func (k *walk) child(name string, body func() error) error {
	return k.set(name, -1, body)
}

func (k *walk) array(name, itemName string, body func() error) error {
	if err := k.sw.BeginArray(name, itemName); err != nil {
		return err
	}
	if err := body(); err != nil {
		return err
	}

	return k.sw.EndArray(name, itemName)
}
