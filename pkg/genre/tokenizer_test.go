package genre

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"科幻", "冒险"}, Split("科幻,冒险"))
	assert.Equal(t, []string{"A", "B"}, Split("A，B"))
	assert.Equal(t, []string{"A", "B"}, Split(" A ， B "))
	assert.Empty(t, Split(""))
	assert.Empty(t, Split(",，,"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"科幻", "冒险"}, Tokenize([]string{"科幻,冒险"}))
	assert.Equal(t, []string{"A", "B", "C"}, Tokenize([]string{"A，B", "C"}))
	assert.Empty(t, Tokenize(nil))
	assert.Empty(t, Tokenize([]string{}))

	// duplicates collapse, first-seen order wins
	assert.Equal(t, []string{"B", "A"}, Tokenize([]string{"B,A", "A,B"}))
}

func TestTokenSet(t *testing.T) {
	set := TokenSet([]string{"Sci-Fi,Adventure", "Sci-Fi"})
	assert.Len(t, set, 2)
	assert.Contains(t, set, "Sci-Fi")
	assert.Contains(t, set, "Adventure")
}
