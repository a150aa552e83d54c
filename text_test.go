package nbt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	root := NewCompound()
	root.Put("name", String("Bananrama"))
	l, _ := ListOf(Long(1), Long(2))
	root.Put("ids", l)

	var sb strings.Builder
	require.NoError(t, WriteText(&sb, "hello world", root))
	require.Equal(t, `TAG_Compound("hello world"): 2 entries
{
  TAG_String("name"): "Bananrama"
  TAG_List("ids"): 2 entries of type Long
  {
    TAG_Long(None): 1L
    TAG_Long(None): 2L
  }
}
`, sb.String())
}

func TestSprint(t *testing.T) {
	c := NewCompound()
	c.Put("a", Byte(1))
	c.Put("f", Float(0.5))
	c.Index("p")
	require.Equal(t, `{"a": 1b, "f": 0.5f, "p": <empty>}`, Sprint(c))

	long := make(IntArray, 20)
	require.Equal(t, "[I; 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0 ... 4 more]", Sprint(long))
}
