package fbgeom

import (
	"bytes"
	"fmt"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/format"
)

var magic = []byte(format.MagicPrefix)

// HasMagic reports whether data starts with the BGFB magic prefix.
func HasMagic(data []byte) bool {
	return len(data) >= format.MagicSize && bytes.Equal(data[:format.MagicSize], magic)
}

// payload strips the magic prefix and returns the FlatBuffer that follows it.
func payload(data []byte) ([]byte, error) {
	if !HasMagic(data) {
		return nil, fmt.Errorf("%w: expected %q prefix", errs.ErrInvalidMagic, format.MagicPrefix)
	}

	return data[format.MagicSize:], nil
}
