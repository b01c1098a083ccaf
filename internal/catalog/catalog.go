// Package catalog holds the fixed service price list. The list is
// compiled in: the salon offers the same twelve services year round
// and prices are edited by releasing a new build.
package catalog

import "salonbook/internal/models"

var services = []models.Service{
	{ID: "1", Name: "Депилација Цели Нози + Раци", Price: 800},
	{ID: "2", Name: "Депилација Цели Нози + Препони", Price: 600},
	{ID: "3", Name: "Депилација Раци", Price: 400},
	{ID: "4", Name: "Депилација Препони", Price: 350},
	{ID: "5", Name: "Депилација Пола Нози + Препони", Price: 500},
	{ID: "6", Name: "Депилација Лице", Price: 150},
	{ID: "7", Name: "Депилација Веги", Price: 100},
	{ID: "8", Name: "Нокти Гел", Price: 600},
	{ID: "9", Name: "Шминка", Price: 500},
	{ID: "10", Name: "Педикир", Price: 500},
	{ID: "11", Name: "Нокти Гел - Нози", Price: 400},
	{ID: "12", Name: "Педикир + Гел", Price: 800},
}

// All returns a copy of the full catalog in display order.
func All() []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	return out
}

// ByID looks up a catalog entry by its id.
func ByID(id string) (models.Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return models.Service{}, false
}
