package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type splitterRecorder struct {
	text      strings.Builder
	reasoning strings.Builder
}

func (r *splitterRecorder) splitter() *thinkSplitter {
	return newThinkSplitter(
		func(s string) error { r.text.WriteString(s); return nil },
		func(s string) error { r.reasoning.WriteString(s); return nil },
	)
}

func feed(t *testing.T, sp *thinkSplitter, tokens ...string) {
	t.Helper()
	for _, tok := range tokens {
		assert.NoError(t, sp.Feed(tok))
	}
	assert.NoError(t, sp.Flush())
}

func TestSplitterSeparatesReasoning(t *testing.T) {
	rec := &splitterRecorder{}
	feed(t, rec.splitter(), "<think>先分析问题</think>最终答案")

	assert.Equal(t, "先分析问题", rec.reasoning.String())
	assert.Equal(t, "最终答案", rec.text.String())
}

func TestSplitterMarkerSplitAcrossTokens(t *testing.T) {
	rec := &splitterRecorder{}
	feed(t, rec.splitter(), "<th", "ink>推理", "中</th", "ink>答案")

	assert.Equal(t, "推理中", rec.reasoning.String())
	assert.Equal(t, "答案", rec.text.String())
}

func TestSplitterNoThinkRegion(t *testing.T) {
	rec := &splitterRecorder{}
	feed(t, rec.splitter(), "直接", "回答")

	assert.Empty(t, rec.reasoning.String())
	assert.Equal(t, "直接回答", rec.text.String())
}

func TestSplitterUnclosedThink(t *testing.T) {
	rec := &splitterRecorder{}
	feed(t, rec.splitter(), "<think>没有结束标记")

	assert.Equal(t, "没有结束标记", rec.reasoning.String())
	assert.Empty(t, rec.text.String())
}

func TestSplitterDanglingPartialMarkerFlushed(t *testing.T) {
	rec := &splitterRecorder{}
	feed(t, rec.splitter(), "答案<thi")

	assert.Equal(t, "答案<thi", rec.text.String())
}

func TestSplitterAngleBracketInText(t *testing.T) {
	rec := &splitterRecorder{}
	feed(t, rec.splitter(), "a < b 并且 b <the", "n> c")

	assert.Empty(t, rec.reasoning.String())
	assert.Equal(t, "a < b 并且 b <then> c", rec.text.String())
}

func TestWritePartEncoding(t *testing.T) {
	var sb strings.Builder
	assert.NoError(t, writeText(&sb, "你好\n"))
	assert.NoError(t, writeReasoning(&sb, "思考"))
	assert.NoError(t, writeFinish(&sb, "stop"))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Equal(t, `0:"你好\n"`, lines[0])
	assert.Equal(t, `g:"思考"`, lines[1])
	assert.Equal(t, `d:{"finishReason":"stop"}`, lines[2])
}
