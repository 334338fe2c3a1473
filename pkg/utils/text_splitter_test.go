package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitText(t *testing.T) {
	t.Run("short text is a single chunk", func(t *testing.T) {
		chunks := SplitText("short", 100, 10)
		assert.Equal(t, []string{"short"}, chunks)
	})

	t.Run("chunks overlap", func(t *testing.T) {
		text := strings.Repeat("abcdefghij", 10) // 100 chars
		chunks := SplitText(text, 40, 10)

		assert.True(t, len(chunks) > 1)
		for i := 1; i < len(chunks); i++ {
			prev := chunks[i-1]
			// The tail of the previous chunk reappears at the head of the next.
			assert.Equal(t, prev[len(prev)-10:], chunks[i][:10])
		}
	})

	t.Run("no data lost", func(t *testing.T) {
		text := strings.Repeat("x", 95)
		chunks := SplitText(text, 40, 10)
		last := chunks[len(chunks)-1]
		assert.Equal(t, "x", string(last[len(last)-1]))

		total := 0
		for i, c := range chunks {
			if i == 0 {
				total += len(c)
				continue
			}
			total += len(c) - 10 // subtract overlap
		}
		assert.Equal(t, 95, total)
	})

	t.Run("overlap larger than chunk size falls back", func(t *testing.T) {
		chunks := SplitText(strings.Repeat("y", 50), 20, 30)
		assert.Len(t, chunks, 3)
	})

	t.Run("multibyte runes are not split", func(t *testing.T) {
		text := strings.Repeat("héllo wörld ", 20)
		chunks := SplitText(text, 40, 5)
		for _, c := range chunks {
			assert.True(t, strings.ContainsRune("héllo wörld ", []rune(c)[0]))
		}
	})
}
