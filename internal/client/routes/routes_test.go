package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		route string
		want  Match
	}{
		{Home, Match{Kind: KindHome}},
		{Login, Match{Kind: KindLogin}},
		{Equipment, Match{Kind: KindEquipment}},
		{NewRecipe, Match{Kind: KindNewRecipe}},
		{Recipe("12"), Match{Kind: KindRecipe, ID: "12"}},
		{EditRecipe("12"), Match{Kind: KindEditRecipe, ID: "12"}},
		{AdminRecipes, Match{Kind: KindAdminRecipes}},
		{AdminNew, Match{Kind: KindAdminNew}},
		{AdminEdit("7"), Match{Kind: KindAdminEdit, ID: "7"}},
		{Recipe("a b"), Match{Kind: KindRecipe, ID: "a b"}},
		{"/nope/1/2/3/4", Match{Kind: KindUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.route))
		})
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder

	_, ok := r.Take()
	assert.False(t, ok)

	r.Navigate(Login)
	r.Navigate(Home)

	route, ok := r.Take()
	assert.True(t, ok)
	assert.Equal(t, Home, route)

	_, ok = r.Take()
	assert.False(t, ok)
	assert.Equal(t, []string{Login, Home}, r.History())
}
