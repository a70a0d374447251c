package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sampleCatalog() []Product {
	return []Product{
		{ID: uuid.New(), Name: "Chocolate Fudge Cake", Price: 24.99, Category: "Cakes"},
		{ID: uuid.New(), Name: "Vanilla Bean Cupcake", Price: 3.50, Category: "Cupcakes"},
		{ID: uuid.New(), Name: "Strawberry Milkshake", Price: 5.25, Category: "Drinks"},
		{ID: uuid.New(), Name: "Carrot Cake", Price: 18.00, Category: "Cakes"},
		{ID: uuid.New(), Name: "Iced Cake Latte", Price: 5.25, Category: "Drinks"},
	}
}

func Test_Filter(t *testing.T) {
	products := sampleCatalog()

	testCases := []struct {
		name          string
		query         Query
		expectedNames []string
	}{
		{
			name:          "Empty query matches everything",
			query:         Query{},
			expectedNames: []string{"Chocolate Fudge Cake", "Vanilla Bean Cupcake", "Strawberry Milkshake", "Carrot Cake", "Iced Cake Latte"},
		},
		{
			name:          "Substring match is case-insensitive",
			query:         Query{Text: "cak"},
			expectedNames: []string{"Chocolate Fudge Cake", "Vanilla Bean Cupcake", "Carrot Cake", "Iced Cake Latte"},
		},
		{
			name:          "Category is an exact match",
			query:         Query{Category: "Drinks"},
			expectedNames: []string{"Strawberry Milkshake", "Iced Cake Latte"},
		},
		{
			name:          "Text and category combine with AND",
			query:         Query{Text: "cak", Category: "Drinks"},
			expectedNames: []string{"Iced Cake Latte"},
		},
		{
			name:          "No match yields empty result",
			query:         Query{Text: "pizza"},
			expectedNames: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			matched := Filter(products, tc.query)
			// then
			names := make([]string, 0, len(matched))
			for _, p := range matched {
				names = append(names, p.Name)
			}
			assert.Equal(t, tc.expectedNames, names)
		})
	}
}

func Test_Filter_DoesNotMutateInput(t *testing.T) {
	// given
	products := sampleCatalog()
	original := make([]Product, len(products))
	copy(original, products)

	// when
	Filter(products, Query{Text: "cake"})

	// then
	assert.Equal(t, original, products)
}

func Test_SortByPrice(t *testing.T) {
	products := sampleCatalog()

	t.Run("Ascending", func(t *testing.T) {
		sorted := SortByPrice(products, SortPriceAsc)
		prices := make([]float64, 0, len(sorted))
		for _, p := range sorted {
			prices = append(prices, p.Price)
		}
		assert.Equal(t, []float64{3.50, 5.25, 5.25, 18.00, 24.99}, prices)
	})

	t.Run("Descending", func(t *testing.T) {
		sorted := SortByPrice(products, SortPriceDesc)
		assert.Equal(t, 24.99, sorted[0].Price)
		assert.Equal(t, 3.50, sorted[len(sorted)-1].Price)
	})

	t.Run("Stable for equal prices", func(t *testing.T) {
		// Milkshake and Latte share a price; catalog order must survive the sort.
		sorted := SortByPrice(products, SortPriceAsc)
		assert.Equal(t, "Strawberry Milkshake", sorted[1].Name)
		assert.Equal(t, "Iced Cake Latte", sorted[2].Name)
	})

	t.Run("None keeps catalog order", func(t *testing.T) {
		sorted := SortByPrice(products, SortNone)
		assert.Equal(t, products, sorted)
	})

	t.Run("Never mutates input", func(t *testing.T) {
		original := make([]Product, len(products))
		copy(original, products)
		SortByPrice(products, SortPriceDesc)
		assert.Equal(t, original, products)
	})
}

func Test_Categories(t *testing.T) {
	// when
	categories := Categories(sampleCatalog())
	// then: distinct, in first occurrence order
	assert.Equal(t, []string{"Cakes", "Cupcakes", "Drinks"}, categories)
}

func Test_ParseSortOrder(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortOrder("price_asc"))
	assert.Equal(t, SortPriceDesc, ParseSortOrder("price_desc"))
	assert.Equal(t, SortNone, ParseSortOrder("none"))
	assert.Equal(t, SortNone, ParseSortOrder(""))
	assert.Equal(t, SortNone, ParseSortOrder("garbage"))
}
