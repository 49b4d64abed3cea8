package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlocksJSONArray(t *testing.T) {
	blocks := ParseBlocks(`[{"output":"A"},{"output":"B"}]`)
	require.Len(t, blocks, 2)
	assert.Equal(t, "A", blocks[0])
	assert.Equal(t, "B", blocks[1])
}

func TestParseBlocksArrayElementWithoutOutput(t *testing.T) {
	blocks := ParseBlocks(`[{"name":"Jane"}]`)
	require.Len(t, blocks, 1)
	assert.Equal(t, `{"name":"Jane"}`, blocks[0])
}

func TestParseBlocksObjectWithOutput(t *testing.T) {
	blocks := ParseBlocks(`{"output":"report text"}`)
	require.Len(t, blocks, 1)
	assert.Equal(t, "report text", blocks[0])
}

func TestParseBlocksObjectWithoutOutput(t *testing.T) {
	blocks := ParseBlocks(`{"status":"done"}`)
	require.Len(t, blocks, 1)
	assert.Equal(t, `{"status":"done"}`, blocks[0])
}

func TestParseBlocksRawText(t *testing.T) {
	raw := "Hello **World**, not JSON at all"
	blocks := ParseBlocks(raw)
	require.Len(t, blocks, 1)
	assert.Equal(t, raw, blocks[0])
}

func TestParseBlocksNeverPanicsOnGarbage(t *testing.T) {
	for _, input := range []string{"", "{", "[1,", "\x00\x01", "null"} {
		assert.Len(t, ParseBlocks(input), 1, "input %q", input)
	}
}

func TestJoinBlocksSeparator(t *testing.T) {
	joined := JoinBlocks([]string{"A", "B"})
	assert.Equal(t, "A\n\n"+strings.Repeat("=", 50)+"\n\nB", joined)
}
