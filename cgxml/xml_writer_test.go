package cgxml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geomcodec/errs"
)

func TestXMLWriter(t *testing.T) {
	t.Run("SetsArraysAndLeaves", func(t *testing.T) {
		var buf bytes.Buffer
		x := NewXMLWriter(&buf)

		require.NoError(t, x.BeginSet("Root"))
		require.NoError(t, x.Attribute("xmlns", "urn:test"))
		require.NoError(t, x.Bool("flag", true, false))
		require.NoError(t, x.Int("count", -4, false))
		require.NoError(t, x.Double("value", 0.5, false))
		require.NoError(t, x.BeginArray("ListOfItem", "item"))
		require.NoError(t, x.Text("item", "a", true))
		require.NoError(t, x.BlockedDoubles("item", true, []float64{1, 2}))
		require.NoError(t, x.EndArray("ListOfItem", "item"))
		require.NoError(t, x.EndSet("Root"))
		require.NoError(t, x.Flush())

		require.Equal(t,
			`<Root xmlns="urn:test"><flag>true</flag><count>-4</count><value>0.5</value>`+
				`<ListOfItem><item>a</item><item>1,2</item></ListOfItem></Root>`,
			buf.String())
	})

	t.Run("EmptySet", func(t *testing.T) {
		var buf bytes.Buffer
		x := NewXMLWriter(&buf)
		require.NoError(t, x.BeginSet("Group"))
		require.NoError(t, x.EndSet("Group"))
		require.NoError(t, x.Flush())
		require.Equal(t, "<Group></Group>", buf.String())
	})

	t.Run("Escaping", func(t *testing.T) {
		var buf bytes.Buffer
		x := NewXMLWriter(&buf)
		require.NoError(t, x.Text("name", "a<b&c", false))
		require.NoError(t, x.Flush())
		require.Equal(t, "<name>a&lt;b&amp;c</name>", buf.String())
	})

	t.Run("MisplacedAttribute", func(t *testing.T) {
		var buf bytes.Buffer
		x := NewXMLWriter(&buf)
		require.ErrorIs(t, x.Attribute("xmlns", "urn:test"), errs.ErrMisplacedAttribute)

		require.NoError(t, x.BeginSet("Root"))
		require.NoError(t, x.Int("n", 1, false))
		require.ErrorIs(t, x.Attribute("late", "1"), errs.ErrMisplacedAttribute)
	})

	t.Run("MismatchedEnd", func(t *testing.T) {
		var buf bytes.Buffer
		x := NewXMLWriter(&buf)
		require.NoError(t, x.BeginSet("A"))
		require.Error(t, x.EndSet("B"))
	})
}
