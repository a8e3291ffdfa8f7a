package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MenuChoice is what a line of menu input resolves to. The set of
// choices is closed: Exit, Invalid, InputError and the QueryChoice
// implementations below.
type MenuChoice interface {
	isMenuChoice()
}

// QueryChoice is a choice that runs exactly one fixed query.
type QueryChoice interface {
	MenuChoice
	Query() FixedQuery
}

type (
	Exit    struct{}
	Invalid struct{ Input string }
	// InputError is a valid menu entry whose follow-up input was rejected.
	InputError struct{ Message string }

	ShowProducts         struct{}
	ShowProductNames     struct{}
	ShowCustomers        struct{}
	ShowCategories       struct{}
	ShowCategoryProducts struct{ CategoryID int }

	SearchActors   struct{ LastName string }
	ShowActorFilms struct{ FirstName, LastName string }

	ShowCities struct{ CountryCode string }
)

func (Exit) isMenuChoice()                 {}
func (Invalid) isMenuChoice()              {}
func (InputError) isMenuChoice()           {}
func (ShowProducts) isMenuChoice()         {}
func (ShowProductNames) isMenuChoice()     {}
func (ShowCustomers) isMenuChoice()        {}
func (ShowCategories) isMenuChoice()       {}
func (ShowCategoryProducts) isMenuChoice() {}
func (SearchActors) isMenuChoice()         {}
func (ShowActorFilms) isMenuChoice()       {}
func (ShowCities) isMenuChoice()           {}

// Prompter asks for follow-up input.
type Prompter interface {
	Prompt(question string) (string, error)
}

// MenuItem is a numbered entry of a menu.
type MenuItem struct {
	Key   int
	Label string
	// choose builds the choice, asking for follow-up input if needed
	choose func(p Prompter) (MenuChoice, error)
}

// Menu is a numbered list of items. Key 0 always exits.
type Menu struct {
	Name     string
	Greeting string
	Items    []MenuItem
}

// Print writes the menu and the selection prompt.
func (m *Menu) Print(w io.Writer) {
	fmt.Fprintln(w, "What do you want to do?")
	for _, item := range m.Items {
		fmt.Fprintf(w, "%d) %s\n", item.Key, item.Label)
	}
	fmt.Fprintln(w, "0) Exit")
	fmt.Fprint(w, "Select an option: ")
}

// Choose maps a line of input to a MenuChoice. Only read errors of the
// follow-up prompts are returned.
func (m *Menu) Choose(line string, p Prompter) (MenuChoice, error) {
	line = strings.TrimSpace(line)

	key, err := strconv.Atoi(line)
	if err != nil {
		return Invalid{Input: line}, nil
	}
	if key == 0 {
		return Exit{}, nil
	}

	for _, item := range m.Items {
		if item.Key == key {
			return item.choose(p)
		}
	}

	return Invalid{Input: line}, nil
}

func fixed(choice MenuChoice) func(Prompter) (MenuChoice, error) {
	return func(Prompter) (MenuChoice, error) {
		return choice, nil
	}
}

// Menus returns all known menus by name.
func Menus() map[string]*Menu {
	return map[string]*Menu{
		"northwind": NorthwindMenu(),
		"sakila":    SakilaMenu(),
		"world":     WorldMenu(),
	}
}

// MenuByName looks up one of Menus.
func MenuByName(name string) (*Menu, error) {
	m, ok := Menus()[name]
	if !ok {
		return nil, fmt.Errorf("unknown menu: %q", name)
	}
	return m, nil
}

func NorthwindMenu() *Menu {
	return &Menu{
		Name: "northwind",
		Items: []MenuItem{
			{Key: 1, Label: "Display all products", choose: fixed(ShowProducts{})},
			{Key: 2, Label: "Display all customers", choose: fixed(ShowCustomers{})},
			{Key: 3, Label: "Display all categories", choose: fixed(ShowCategories{})},
			{Key: 4, Label: "Display products in a category", choose: chooseCategory},
			{Key: 5, Label: "Display product names", choose: fixed(ShowProductNames{})},
		},
	}
}

func chooseCategory(p Prompter) (MenuChoice, error) {
	answer, err := p.Prompt("Enter a category ID to view products in that category: ")
	if err != nil {
		return nil, err
	}

	id, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return InputError{Message: fmt.Sprintf("Category ID must be a number, got %q.", answer)}, nil
	}

	return ShowCategoryProducts{CategoryID: id}, nil
}

func SakilaMenu() *Menu {
	return &Menu{
		Name:     "sakila",
		Greeting: "Welcome to Sakila Movies Database Explorer!",
		Items: []MenuItem{
			{Key: 1, Label: "Search actors by last name", choose: chooseActorLastName},
			{Key: 2, Label: "Display movies of an actor", choose: chooseActorFullName},
		},
	}
}

func chooseActorLastName(p Prompter) (MenuChoice, error) {
	lastName, err := p.Prompt("Enter the last name of an actor you like (e.g. 'STALLONE', 'CRONYN', 'TEMPLE'): ")
	if err != nil {
		return nil, err
	}

	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return InputError{Message: "Last name cannot be empty!"}, nil
	}

	return SearchActors{LastName: lastName}, nil
}

func chooseActorFullName(p Prompter) (MenuChoice, error) {
	firstName, err := p.Prompt("Enter the first name of the actor: ")
	if err != nil {
		return nil, err
	}
	lastName, err := p.Prompt("Enter the last name of the actor: ")
	if err != nil {
		return nil, err
	}

	firstName, lastName = strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return InputError{Message: "Both first name and last name are required!"}, nil
	}

	return ShowActorFilms{FirstName: firstName, LastName: lastName}, nil
}

func WorldMenu() *Menu {
	return &Menu{
		Name: "world",
		Items: []MenuItem{
			{Key: 1, Label: "Display cities of a country", choose: chooseCountry},
		},
	}
}

func chooseCountry(p Prompter) (MenuChoice, error) {
	code, err := p.Prompt("Enter a country code (default USA): ")
	if err != nil {
		return nil, err
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = "USA"
	}

	return ShowCities{CountryCode: code}, nil
}
