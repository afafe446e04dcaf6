package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type person struct{ first, email, gender string }

func TestFilterComposition(t *testing.T) {
	people := []person{
		{first: "Ann", email: "a@x.com", gender: "female"},
		{first: "Bo", email: "b@x.com", gender: "male"},
	}
	first := func(p person) string { return p.first }
	email := func(p person) string { return p.email }
	gender := func(p person) string { return p.gender }

	got := Apply(people, All(Matching("an", first, email), Equal("", gender)))
	assert.Equal(t, []person{people[0]}, got)

	got = Apply(people, All(Matching("", first, email), Equal("male", gender)))
	assert.Equal(t, []person{people[1]}, got)

	got = Apply(people, All(Matching("  X.COM ", first, email), Equal("FEMALE", gender)))
	assert.Equal(t, []person{people[0]}, got)
}

func TestApplyNeverMutatesInput(t *testing.T) {
	items := []int{1, 2, 3, 4}
	even := Apply(items, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
	assert.Equal(t, []int{1, 2, 3, 4}, items)

	none := Apply(items, func(int) bool { return false })
	assert.NotNil(t, none)
	assert.Empty(t, none)
	assert.Empty(t, Apply[int](nil, All[int]()))
}
