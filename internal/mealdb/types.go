package mealdb

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Ingredient is one (ingredient, measure) pair from a meal. Measure is
// display-only and may be empty.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// Meal is a full recipe as returned by the lookup, random and search
// endpoints. The upstream payload spreads ingredients over twenty
// numbered strIngredientN/strMeasureN keys, any of which may be null
// or blank; UnmarshalJSON collapses them into Ingredients here so the
// rest of the system never sees the raw key/value shape.
type Meal struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Area         string       `json:"area"`
	Instructions string       `json:"instructions"`
	ThumbURL     string       `json:"thumb_url"`
	Ingredients  []Ingredient `json:"ingredients"`
}

func (m *Meal) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	str := func(key string) string {
		if v, ok := raw[key].(string); ok {
			return v
		}
		return ""
	}

	m.ID = str("idMeal")
	m.Name = str("strMeal")
	m.Category = str("strCategory")
	m.Area = str("strArea")
	m.Instructions = str("strInstructions")
	m.ThumbURL = str("strMealThumb")

	m.Ingredients = nil
	for i := 1; i <= 20; i++ {
		name := strings.TrimSpace(str(fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}
		m.Ingredients = append(m.Ingredients, Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(str(fmt.Sprintf("strMeasure%d", i))),
		})
	}

	return nil
}

// Summary is the reduced shape returned by the filter endpoints.
type Summary struct {
	ID       string `json:"idMeal"`
	Name     string `json:"strMeal"`
	ThumbURL string `json:"strMealThumb"`
}

// Summary reduces a full meal to its listing shape.
func (m *Meal) Summary() Summary {
	return Summary{ID: m.ID, Name: m.Name, ThumbURL: m.ThumbURL}
}
