package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"localiser/internal/locales"
)

func tableOf(pairs ...string) locales.Table {
	entries := make([]locales.Entry, 0, len(pairs))
	for _, key := range pairs {
		entries = append(entries, locales.Entry{Key: key, Value: key})
	}
	return locales.NewTable(entries...)
}

func TestCommon(t *testing.T) {
	set := locales.NewSet()
	set.Add("en", tableOf("a", "b"))
	set.Add("hi", tableOf("a"))

	common, err := Common(*set)

	assert.NoError(t, err)
	assert.Equal(t, []string{"a"}, common)
}

func TestCommonPreservesFirstTableOrder(t *testing.T) {
	set := locales.NewSet()
	set.Add("en", tableOf("zebra", "apple", "mango"))
	set.Add("hi", tableOf("mango", "zebra", "apple"))
	set.Add("ta", tableOf("apple", "mango", "zebra"))

	common, err := Common(*set)

	assert.NoError(t, err)
	assert.Equal(t, []string{"zebra", "apple", "mango"}, common)
}

func TestCommonEmptySet(t *testing.T) {
	_, err := Common(*locales.NewSet())
	assert.ErrorIs(t, err, ErrNoLocales)
}

func TestCommonSingleLocale(t *testing.T) {
	set := locales.NewSet()
	set.Add("en", tableOf("a", "b"))

	common, err := Common(*set)

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, common)
}

func TestUnique(t *testing.T) {
	set := locales.NewSet()
	set.Add("en", tableOf("a", "b"))
	set.Add("hi", tableOf("a"))

	assert.Equal(t, []string{"b"}, Unique(*set, "en"))
	assert.Empty(t, Unique(*set, "hi"))
}

func TestUniqueAgainstUnionOfOthers(t *testing.T) {
	set := locales.NewSet()
	set.Add("en", tableOf("a", "b", "c"))
	set.Add("hi", tableOf("b"))
	set.Add("ta", tableOf("c"))

	assert.Equal(t, []string{"a"}, Unique(*set, "en"))
}

func TestUniqueUnknownLocale(t *testing.T) {
	set := locales.NewSet()
	set.Add("en", tableOf("a"))

	assert.Nil(t, Unique(*set, "mr"))
}
