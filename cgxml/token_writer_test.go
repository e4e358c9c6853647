package cgxml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geomcodec/errs"
)

func TestTokenWriter_RoundTrip(t *testing.T) {
	tw := NewTokenWriter()
	require.NoError(t, tw.BeginSet("Root"))
	require.NoError(t, tw.Attribute("xmlns", "urn:test"))
	require.NoError(t, tw.Bool("flag", true, false))
	require.NoError(t, tw.Int("count", -4, false))
	require.NoError(t, tw.Double("value", 0.5, false))
	require.NoError(t, tw.BeginArray("ListOfItem", "item"))
	require.NoError(t, tw.Text("item", "a", true))
	require.NoError(t, tw.BlockedDoubles("item", true, []float64{1, 2}))
	require.NoError(t, tw.Text("item", "b", false))
	require.NoError(t, tw.EndArray("ListOfItem", "item"))
	require.NoError(t, tw.EndSet("Root"))

	tokens, err := DecodeTokens(tw.Bytes())
	require.NoError(t, err)
	require.Equal(t, []Token{
		{Kind: TokenBeginSet, Name: "Root"},
		{Kind: TokenAttribute, Name: "xmlns", Value: "urn:test"},
		{Kind: TokenBool, Name: "flag", Value: true},
		{Kind: TokenInt, Name: "count", Value: int64(-4)},
		{Kind: TokenDouble, Name: "value", Value: 0.5},
		{Kind: TokenBeginArray, Name: "ListOfItem", ItemName: "item"},
		{Kind: TokenText, Value: "a"},
		{Kind: TokenBlockedDoubles, Value: []float64{1, 2}},
		{Kind: TokenText, Name: "item", Value: "b"},
		{Kind: TokenEndArray, Name: "ListOfItem", ItemName: "item"},
		{Kind: TokenEndSet, Name: "Root"},
	}, tokens)
}

func TestTokenWriter_InternsNames(t *testing.T) {
	tw := NewTokenWriter()
	require.NoError(t, tw.BeginSet("a"))
	require.NoError(t, tw.EndSet("a"))
	require.NoError(t, tw.BeginSet("a"))
	require.NoError(t, tw.EndSet("a"))

	require.Equal(t, []byte{0x01, 0xa1, 'a', 0x02, 0x01, 0x00, 0x02}, tw.Bytes())

	tokens, err := DecodeTokens(tw.Bytes())
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	require.Equal(t, "a", tokens[2].Name)
}

func TestTokenWriter_Reset(t *testing.T) {
	tw := NewTokenWriter()
	require.NoError(t, tw.BeginSet("a"))
	require.NoError(t, tw.EndSet("a"))
	first := append([]byte(nil), tw.Bytes()...)

	tw.Reset()
	require.Zero(t, tw.Len())
	require.NoError(t, tw.BeginSet("a"))
	require.NoError(t, tw.EndSet("a"))
	require.Equal(t, first, tw.Bytes())

	var buf bytes.Buffer
	n, err := tw.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(len(first)), n)
	require.Equal(t, first, buf.Bytes())
}

func TestTokenWriter_MisplacedAttribute(t *testing.T) {
	tw := NewTokenWriter()
	require.ErrorIs(t, tw.Attribute("x", "1"), errs.ErrMisplacedAttribute)

	require.NoError(t, tw.BeginArray("ListOfItem", "item"))
	require.NoError(t, tw.Attribute("x", "1"))
	require.NoError(t, tw.Int("item", 1, true))
	require.ErrorIs(t, tw.Attribute("y", "2"), errs.ErrMisplacedAttribute)
}

func TestDecodeTokens_Malformed(t *testing.T) {
	valid := NewTokenWriter()
	require.NoError(t, valid.BeginSet("Root"))
	require.NoError(t, valid.Double("value", 1, false))
	require.NoError(t, valid.EndSet("Root"))

	tests := []struct {
		name string
		data []byte
	}{
		{"UnknownKind", []byte{0x63}},
		{"UnbalancedEnd", []byte{0x02}},
		{"MismatchedEnd", []byte{0x01, 0xa1, 'a', 0x04}},
		{"Unclosed", valid.Bytes()[:len(valid.Bytes())-1]},
		{"Truncated", valid.Bytes()[:len(valid.Bytes())-4]},
		{"NameIndexOutOfRange", []byte{0x01, 0x05, 0x02}},
		{"BlockedLengthTooLarge", []byte{0x0a, 0xc0, 0xdc, 0xff, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTokens(tt.data)
			require.ErrorIs(t, err, errs.ErrInvalidTokenStream)
		})
	}
}

func TestDecodeTokens_Empty(t *testing.T) {
	tokens, err := DecodeTokens(nil)
	require.NoError(t, err)
	require.Empty(t, tokens)
}
