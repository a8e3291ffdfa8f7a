package console

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answers replays canned follow-up input.
type answers []string

func (a *answers) Prompt(string) (string, error) {
	if len(*a) == 0 {
		return "", io.EOF
	}
	next := (*a)[0]
	*a = (*a)[1:]
	return next, nil
}

func TestMenu_Choose(t *testing.T) {
	menu := NorthwindMenu()

	testCases := []struct {
		name     string
		line     string
		answers  answers
		expected MenuChoice
	}{
		{name: "exit", line: "0", expected: Exit{}},
		{name: "padded", line: "  1 ", expected: ShowProducts{}},
		{name: "customers", line: "2", expected: ShowCustomers{}},
		{name: "categories", line: "3", expected: ShowCategories{}},
		{name: "category products", line: "4", answers: answers{" 7"}, expected: ShowCategoryProducts{CategoryID: 7}},
		{name: "negative category", line: "4", answers: answers{"-1"}, expected: ShowCategoryProducts{CategoryID: -1}},
		{name: "product names", line: "5", expected: ShowProductNames{}},
		{name: "not a number", line: "abc", expected: Invalid{Input: "abc"}},
		{name: "empty", line: "", expected: Invalid{Input: ""}},
		{name: "unknown key", line: "42", expected: Invalid{Input: "42"}},
		{name: "bad category", line: "4", answers: answers{"one"}, expected: InputError{Message: `Category ID must be a number, got "one".`}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			choice, err := menu.Choose(tc.line, &tc.answers)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, choice)
		})
	}
}

func TestMenu_ChooseEOF(t *testing.T) {
	_, err := NorthwindMenu().Choose("4", new(answers))
	assert.ErrorIs(t, err, io.EOF)
}

func TestMenu_FollowUps(t *testing.T) {
	sakila := SakilaMenu()

	choice, err := sakila.Choose("1", &answers{" TEMPLE "})
	require.NoError(t, err)
	assert.Equal(t, SearchActors{LastName: "TEMPLE"}, choice)

	choice, err = sakila.Choose("1", &answers{""})
	require.NoError(t, err)
	assert.Equal(t, InputError{Message: "Last name cannot be empty!"}, choice)

	choice, err = sakila.Choose("2", &answers{"NICK", "STALLONE"})
	require.NoError(t, err)
	assert.Equal(t, ShowActorFilms{FirstName: "NICK", LastName: "STALLONE"}, choice)

	choice, err = WorldMenu().Choose("1", &answers{""})
	require.NoError(t, err)
	assert.Equal(t, ShowCities{CountryCode: "USA"}, choice)
}

func TestFixedQueries(t *testing.T) {
	q := ShowCategoryProducts{CategoryID: 3}.Query()
	assert.Equal(t, categoryProductsSQL, q.SQL)
	assert.Equal(t, []any{3}, q.Args)
	assert.Equal(t, "No products found in category 3", q.EmptyNotice)

	q = ShowActorFilms{FirstName: "NICK", LastName: "STALLONE"}.Query()
	assert.Equal(t, []any{"NICK", "STALLONE"}, q.Args)

	// every query choice is read-only
	for _, choice := range []QueryChoice{
		ShowProducts{}, ShowProductNames{}, ShowCustomers{}, ShowCategories{},
		ShowCategoryProducts{}, SearchActors{}, ShowActorFilms{}, ShowCities{},
	} {
		assert.Regexp(t, `^SELECT `, choice.Query().SQL)
	}
}

func TestMenuByName(t *testing.T) {
	for _, name := range []string{"northwind", "sakila", "world"} {
		m, err := MenuByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.Name)
	}

	_, err := MenuByName("pubs")
	assert.Error(t, err)
}
