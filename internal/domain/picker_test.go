package domain

import (
	"testing"

	m "github.com/mouse-blink/mdcover/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRandomPicker_Pick(t *testing.T) {
	urls := []m.CoverURL{"https://x/a.png", "https://x/b.png", "https://x/c.png"}

	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, m.CoverURL(""), NewRandomPicker(1).Pick(nil))
	})

	t.Run("single entry", func(t *testing.T) {
		picker := NewRandomPicker(0)
		for range 10 {
			assert.Equal(t, urls[0], picker.Pick(urls[:1]))
		}
	})

	t.Run("same seed same sequence", func(t *testing.T) {
		first, second := NewRandomPicker(42), NewRandomPicker(42)
		for range 50 {
			assert.Equal(t, first.Pick(urls), second.Pick(urls))
		}
	})

	t.Run("every entry can be chosen", func(t *testing.T) {
		picker := NewRandomPicker(7)
		seen := map[m.CoverURL]bool{}

		for range 300 {
			got := picker.Pick(urls)
			assert.Contains(t, urls, got)
			seen[got] = true
		}

		assert.Len(t, seen, len(urls))
	})
}
