package chat

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Data stream part prefixes, matching the Vercel AI SDK wire protocol
// that the web client consumes.
const (
	partText      = "0"
	partReasoning = "g"
	partFinish    = "d"
)

// StreamHeader must be set on the response for the client to parse the
// body as a data stream.
const (
	StreamHeaderName  = "x-vercel-ai-data-stream"
	StreamHeaderValue = "v1"
)

func writePart(w io.Writer, prefix string, payload interface{}) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s:%s\n", prefix, encoded)
	return err
}

func writeText(w io.Writer, text string) error {
	return writePart(w, partText, text)
}

func writeReasoning(w io.Writer, text string) error {
	return writePart(w, partReasoning, text)
}

func writeFinish(w io.Writer, reason string) error {
	return writePart(w, partFinish, map[string]string{"finishReason": reason})
}

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// thinkSplitter separates a token stream into answer text and the
// reasoning region delimited by <think> tags. Markers can arrive split
// across tokens, so a suffix that could begin a marker is held back until
// the next token settles it.
type thinkSplitter struct {
	buf      string
	thinking bool
	emitText func(string) error
	emitReas func(string) error
}

func newThinkSplitter(emitText, emitReasoning func(string) error) *thinkSplitter {
	return &thinkSplitter{emitText: emitText, emitReas: emitReasoning}
}

func (t *thinkSplitter) marker() string {
	if t.thinking {
		return thinkClose
	}
	return thinkOpen
}

func (t *thinkSplitter) emit(text string) error {
	if text == "" {
		return nil
	}
	if t.thinking {
		return t.emitReas(text)
	}
	return t.emitText(text)
}

// Feed consumes one streamed token.
func (t *thinkSplitter) Feed(token string) error {
	t.buf += token
	for {
		marker := t.marker()
		idx := strings.Index(t.buf, marker)
		if idx < 0 {
			hold := partialMarkerSuffix(t.buf, marker)
			if err := t.emit(t.buf[:len(t.buf)-hold]); err != nil {
				return err
			}
			t.buf = t.buf[len(t.buf)-hold:]
			return nil
		}
		if err := t.emit(t.buf[:idx]); err != nil {
			return err
		}
		t.buf = t.buf[idx+len(marker):]
		t.thinking = !t.thinking
	}
}

// Flush emits whatever is still buffered, including a dangling partial
// marker, under the current mode.
func (t *thinkSplitter) Flush() error {
	buf := t.buf
	t.buf = ""
	return t.emit(buf)
}

// partialMarkerSuffix returns the length of the longest suffix of s that
// is a proper prefix of marker.
func partialMarkerSuffix(s, marker string) int {
	max := len(marker) - 1
	if max > len(s) {
		max = len(s)
	}
	for n := max; n > 0; n-- {
		if strings.HasSuffix(s, marker[:n]) {
			return n
		}
	}
	return 0
}
