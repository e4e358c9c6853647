package cgxml

import (
	"fmt"
	"io"

	"github.com/tinylib/msgp/msgp"

	"github.com/arloliu/geomcodec/errs"
)

// TokenKind identifies an event in a token stream.
type TokenKind uint8

const (
	TokenBeginSet TokenKind = iota + 1
	TokenEndSet
	TokenBeginArray
	TokenEndArray
	TokenAttribute
	TokenBool
	TokenInt
	TokenDouble
	TokenText
	TokenBlockedDoubles
)

func (k TokenKind) String() string {
	switch k {
	case TokenBeginSet:
		return "BeginSet"
	case TokenEndSet:
		return "EndSet"
	case TokenBeginArray:
		return "BeginArray"
	case TokenEndArray:
		return "EndArray"
	case TokenAttribute:
		return "Attribute"
	case TokenBool:
		return "Bool"
	case TokenInt:
		return "Int"
	case TokenDouble:
		return "Double"
	case TokenText:
		return "Text"
	case TokenBlockedDoubles:
		return "BlockedDoubles"
	default:
		return "Unknown"
	}
}

// TokenWriter records the element tree as a compact MessagePack stream.
//
// Each event is a kind byte followed by its operands. A name is written as a
// string on first use and as its table index afterwards; names marked
// optional are written as nil. End events carry no name.
type TokenWriter struct {
	buf    []byte
	names  map[string]uint32
	inHead bool
}

var _ StructuredWriter = (*TokenWriter)(nil)

// NewTokenWriter creates an empty TokenWriter.
func NewTokenWriter() *TokenWriter {
	return &TokenWriter{names: make(map[string]uint32)}
}

// Bytes returns the stream written so far. The slice is valid until the next
// write or Reset.
func (t *TokenWriter) Bytes() []byte {
	return t.buf
}

// Len returns the stream length in bytes.
func (t *TokenWriter) Len() int {
	return len(t.buf)
}

// Reset clears the stream and the name table.
func (t *TokenWriter) Reset() {
	t.buf = t.buf[:0]
	clear(t.names)
	t.inHead = false
}

// WriteTo implements io.WriterTo.
func (t *TokenWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.buf)

	return int64(n), err
}

func (t *TokenWriter) BeginSet(name string) error {
	t.event(TokenBeginSet)
	t.name(name, false)
	t.inHead = true

	return nil
}

func (t *TokenWriter) EndSet(string) error {
	t.event(TokenEndSet)
	return nil
}

func (t *TokenWriter) BeginArray(name, itemName string) error {
	t.event(TokenBeginArray)
	t.name(name, false)
	t.name(itemName, false)
	t.inHead = true

	return nil
}

func (t *TokenWriter) EndArray(string, string) error {
	t.event(TokenEndArray)
	return nil
}

func (t *TokenWriter) Attribute(name, value string) error {
	if !t.inHead {
		return errs.ErrMisplacedAttribute
	}
	t.buf = msgp.AppendUint8(t.buf, uint8(TokenAttribute))
	t.name(name, false)
	t.buf = msgp.AppendString(t.buf, value)

	return nil
}

func (t *TokenWriter) Bool(name string, v bool, nameOptional bool) error {
	t.event(TokenBool)
	t.name(name, nameOptional)
	t.buf = msgp.AppendBool(t.buf, v)

	return nil
}

func (t *TokenWriter) Int(name string, v int64, nameOptional bool) error {
	t.event(TokenInt)
	t.name(name, nameOptional)
	t.buf = msgp.AppendInt64(t.buf, v)

	return nil
}

func (t *TokenWriter) Double(name string, v float64, nameOptional bool) error {
	t.event(TokenDouble)
	t.name(name, nameOptional)
	t.buf = msgp.AppendFloat64(t.buf, v)

	return nil
}

func (t *TokenWriter) Text(name string, v string, nameOptional bool) error {
	t.event(TokenText)
	t.name(name, nameOptional)
	t.buf = msgp.AppendString(t.buf, v)

	return nil
}

func (t *TokenWriter) BlockedDoubles(name string, nameOptional bool, vals []float64) error {
	t.event(TokenBlockedDoubles)
	t.name(name, nameOptional)
	t.buf = msgp.AppendArrayHeader(t.buf, uint32(len(vals)))
	for _, v := range vals {
		t.buf = msgp.AppendFloat64(t.buf, v)
	}

	return nil
}

func (t *TokenWriter) event(kind TokenKind) {
	t.inHead = false
	t.buf = msgp.AppendUint8(t.buf, uint8(kind))
}

func (t *TokenWriter) name(name string, optional bool) {
	if optional {
		t.buf = msgp.AppendNil(t.buf)
		return
	}
	if idx, ok := t.names[name]; ok {
		t.buf = msgp.AppendUint32(t.buf, idx)
		return
	}
	t.names[name] = uint32(len(t.names))
	t.buf = msgp.AppendString(t.buf, name)
}

// Token is one decoded event of a token stream. Name is empty when the
// writer omitted it. Value holds a bool, int64, float64, string or []float64
// depending on Kind; for attributes it holds the attribute value.
type Token struct {
	Kind     TokenKind
	Name     string
	ItemName string
	Value    any
}

// DecodeTokens parses a stream produced by TokenWriter.
//
// End events are returned with the name of the set or array they close.
// Returns errs.ErrInvalidTokenStream when the stream is malformed.
func DecodeTokens(data []byte) ([]Token, error) {
	d := tokenDecoder{buf: data}
	var (
		tokens []Token
		open   []Token
	)
	for len(d.buf) > 0 {
		tok, err := d.next()
		if err != nil {
			return nil, fmt.Errorf("%w: token %d: %w", errs.ErrInvalidTokenStream, len(tokens), err)
		}
		switch tok.Kind {
		case TokenBeginSet, TokenBeginArray:
			open = append(open, tok)
		case TokenEndSet, TokenEndArray:
			if len(open) == 0 || open[len(open)-1].Kind != tok.Kind-1 {
				return nil, fmt.Errorf("%w: unbalanced %s", errs.ErrInvalidTokenStream, tok.Kind)
			}
			tok.Name = open[len(open)-1].Name
			tok.ItemName = open[len(open)-1].ItemName
			open = open[:len(open)-1]
		}
		tokens = append(tokens, tok)
	}
	if len(open) != 0 {
		return nil, fmt.Errorf("%w: %d unclosed elements", errs.ErrInvalidTokenStream, len(open))
	}

	return tokens, nil
}

type tokenDecoder struct {
	buf   []byte
	names []string
}

func (d *tokenDecoder) next() (Token, error) {
	kind, rest, err := msgp.ReadUint8Bytes(d.buf)
	if err != nil {
		return Token{}, err
	}
	d.buf = rest
	tok := Token{Kind: TokenKind(kind)}

	switch tok.Kind {
	case TokenEndSet, TokenEndArray:
		return tok, nil
	case TokenBeginSet:
		tok.Name, err = d.name()
	case TokenBeginArray:
		if tok.Name, err = d.name(); err == nil {
			tok.ItemName, err = d.name()
		}
	case TokenAttribute:
		if tok.Name, err = d.name(); err == nil {
			var v string
			v, d.buf, err = msgp.ReadStringBytes(d.buf)
			tok.Value = v
		}
	case TokenBool, TokenInt, TokenDouble, TokenText, TokenBlockedDoubles:
		if tok.Name, err = d.name(); err == nil {
			tok.Value, err = d.value(tok.Kind)
		}
	default:
		return Token{}, fmt.Errorf("unknown token kind %d", kind)
	}
	if err != nil {
		return Token{}, err
	}

	return tok, nil
}

func (d *tokenDecoder) name() (string, error) {
	switch msgp.NextType(d.buf) {
	case msgp.NilType:
		rest, err := msgp.ReadNilBytes(d.buf)
		d.buf = rest

		return "", err
	case msgp.StrType:
		name, rest, err := msgp.ReadStringBytes(d.buf)
		if err != nil {
			return "", err
		}
		d.buf = rest
		d.names = append(d.names, name)

		return name, nil
	default:
		idx, rest, err := msgp.ReadUint32Bytes(d.buf)
		if err != nil {
			return "", err
		}
		if int(idx) >= len(d.names) {
			return "", fmt.Errorf("name index %d out of range", idx)
		}
		d.buf = rest

		return d.names[idx], nil
	}
}

func (d *tokenDecoder) value(kind TokenKind) (any, error) {
	var (
		v   any
		err error
	)
	switch kind {
	case TokenBool:
		v, d.buf, err = msgp.ReadBoolBytes(d.buf)
	case TokenInt:
		v, d.buf, err = msgp.ReadInt64Bytes(d.buf)
	case TokenDouble:
		v, d.buf, err = msgp.ReadFloat64Bytes(d.buf)
	case TokenText:
		v, d.buf, err = msgp.ReadStringBytes(d.buf)
	case TokenBlockedDoubles:
		v, err = d.doubles()
	}

	return v, err
}

func (d *tokenDecoder) doubles() ([]float64, error) {
	n, rest, err := msgp.ReadArrayHeaderBytes(d.buf)
	if err != nil {
		return nil, err
	}
	if uint64(n)*9 > uint64(len(rest)) {
		return nil, fmt.Errorf("blocked array of %d doubles exceeds stream", n)
	}
	vals := make([]float64, n)
	for i := range vals {
		if vals[i], rest, err = msgp.ReadFloat64Bytes(rest); err != nil {
			return nil, err
		}
	}
	d.buf = rest

	return vals, nil
}
