// Package foods holds the static food profile table and the rules that
// classify a temperature sample against a profile.
package foods

import (
	"fmt"
	"strconv"

	"food_monitor/internal/models"
)

// order fixes the listing order of the table.
var order = []string{
	"carnes",
	"pollo",
	"pescado",
	"lacteos",
	"quesos_duros",
	"quesos_blandos",
	"embutidos",
	"verduras",
	"frutas",
}

var table = map[string]models.FoodProfile{
	"carnes": {
		Name: "Carnes Rojas", Description: "Carne de res, cerdo, cordero", ShelfLife: "3-5 días",
		TempMin: -2, TempMax: 4, CriticalTemp: 7, HumidityMin: 85, HumidityMax: 95,
	},
	"pollo": {
		Name: "Pollo y Aves", Description: "Pollo, pavo, pato", ShelfLife: "1-2 días",
		TempMin: -2, TempMax: 2, CriticalTemp: 4, HumidityMin: 85, HumidityMax: 95,
	},
	"pescado": {
		Name: "Pescados y Mariscos", Description: "Pescado fresco, mariscos", ShelfLife: "1-2 días",
		TempMin: -2, TempMax: 0, CriticalTemp: 2, HumidityMin: 90, HumidityMax: 95,
	},
	"lacteos": {
		Name: "Productos Lácteos", Description: "Leche, yogurt, crema", ShelfLife: "5-7 días",
		TempMin: 1, TempMax: 4, CriticalTemp: 7, HumidityMin: 80, HumidityMax: 85,
	},
	"quesos_duros": {
		Name: "Quesos Duros", Description: "Cheddar, parmesano, gouda", ShelfLife: "2-4 semanas",
		TempMin: 2, TempMax: 8, CriticalTemp: 12, HumidityMin: 80, HumidityMax: 85,
	},
	"quesos_blandos": {
		Name: "Quesos Blandos", Description: "Brie, camembert, ricotta", ShelfLife: "1-2 semanas",
		TempMin: 1, TempMax: 4, CriticalTemp: 7, HumidityMin: 85, HumidityMax: 90,
	},
	"embutidos": {
		Name: "Embutidos", Description: "Jamón, salami, chorizo", ShelfLife: "2-3 semanas",
		TempMin: 0, TempMax: 4, CriticalTemp: 8, HumidityMin: 75, HumidityMax: 85,
	},
	"verduras": {
		Name: "Verduras Frescas", Description: "Lechuga, apio, zanahorias", ShelfLife: "1-2 semanas",
		TempMin: 0, TempMax: 4, CriticalTemp: 8, HumidityMin: 90, HumidityMax: 95,
	},
	"frutas": {
		Name: "Frutas Frescas", Description: "Manzanas, peras, uvas", ShelfLife: "1-4 semanas",
		TempMin: 0, TempMax: 4, CriticalTemp: 10, HumidityMin: 85, HumidityMax: 90,
	},
}

func init() {
	for _, key := range order {
		p := table[key]
		p.Category = key
		if !(p.TempMin < p.TempMax && p.TempMax < p.CriticalTemp) {
			panic(fmt.Sprintf("foods: profile %q breaks tempMin < tempMax < criticalTemp", key))
		}
		table[key] = p
	}
}

// Lookup returns the profile for category.
func Lookup(category string) (models.FoodProfile, bool) {
	p, ok := table[category]
	return p, ok
}

// All returns every profile in table order.
func All() []models.FoodProfile {
	out := make([]models.FoodProfile, 0, len(order))
	for _, key := range order {
		out = append(out, table[key])
	}
	return out
}

// Ranges formats the optimal and critical bands of p.
func Ranges(p models.FoodProfile) models.Ranges {
	return models.Ranges{
		Optimal:  fmt.Sprintf("%s°C a %s°C", formatTemp(p.TempMin), formatTemp(p.TempMax)),
		Critical: fmt.Sprintf(">%s°C", formatTemp(p.CriticalTemp)),
	}
}

func formatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
