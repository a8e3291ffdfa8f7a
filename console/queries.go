package console

import "fmt"

// FixedQuery is a read-only statement with its bound arguments and the
// text shown around its result.
type FixedQuery struct {
	Title       string
	SQL         string
	Args        []any
	EmptyNotice string
}

const (
	productsSQL         = "SELECT ProductID, ProductName, UnitPrice, UnitsInStock FROM Products"
	productNamesSQL     = "SELECT ProductName FROM Products"
	customersSQL        = "SELECT ContactName, CompanyName, City, Country, Phone FROM Customers ORDER BY Country"
	categoriesSQL       = "SELECT CategoryID, CategoryName FROM Categories ORDER BY CategoryID"
	categoryProductsSQL = "SELECT ProductID, ProductName, UnitPrice, UnitsInStock FROM Products WHERE CategoryID = ?"

	actorsSQL = "SELECT actor_id, first_name, last_name FROM actor WHERE last_name = ? ORDER BY first_name"
	filmsSQL  = `SELECT DISTINCT f.film_id, f.title, f.description, f.release_year, f.length
FROM film f
JOIN film_actor fa ON f.film_id = fa.film_id
JOIN actor a ON fa.actor_id = a.actor_id
WHERE a.first_name = ? AND a.last_name = ?
ORDER BY f.title`

	citiesSQL = "SELECT Name FROM city WHERE CountryCode = ? ORDER BY Name"
)

func (ShowProducts) Query() FixedQuery {
	return FixedQuery{Title: "Products", SQL: productsSQL, EmptyNotice: "No products found."}
}

func (ShowProductNames) Query() FixedQuery {
	return FixedQuery{Title: "Product names", SQL: productNamesSQL, EmptyNotice: "No products found."}
}

func (ShowCustomers) Query() FixedQuery {
	return FixedQuery{Title: "Customers", SQL: customersSQL, EmptyNotice: "No customers found."}
}

func (ShowCategories) Query() FixedQuery {
	return FixedQuery{Title: "Categories", SQL: categoriesSQL, EmptyNotice: "No categories found."}
}

func (c ShowCategoryProducts) Query() FixedQuery {
	return FixedQuery{
		Title:       fmt.Sprintf("Products in Category %d", c.CategoryID),
		SQL:         categoryProductsSQL,
		Args:        []any{c.CategoryID},
		EmptyNotice: fmt.Sprintf("No products found in category %d", c.CategoryID),
	}
}

func (c SearchActors) Query() FixedQuery {
	return FixedQuery{
		Title:       fmt.Sprintf("Actors with last name '%s'", c.LastName),
		SQL:         actorsSQL,
		Args:        []any{c.LastName},
		EmptyNotice: fmt.Sprintf("No actors found with last name '%s'", c.LastName),
	}
}

func (c ShowActorFilms) Query() FixedQuery {
	name := c.FirstName + " " + c.LastName
	return FixedQuery{
		Title:       "Movies starring " + name,
		SQL:         filmsSQL,
		Args:        []any{c.FirstName, c.LastName},
		EmptyNotice: fmt.Sprintf("No movies found for actor '%s'", name),
	}
}

func (c ShowCities) Query() FixedQuery {
	return FixedQuery{
		Title:       "Cities in " + c.CountryCode,
		SQL:         citiesSQL,
		Args:        []any{c.CountryCode},
		EmptyNotice: fmt.Sprintf("No cities found for country code %s", c.CountryCode),
	}
}
