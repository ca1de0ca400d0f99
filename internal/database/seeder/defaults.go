package seeder

import "career-navigator/internal/domain/catalog"

func Defaults() []Seeder {
	return []Seeder{
		CatalogSeeder{Tables: catalog.Defaults()},
	}
}
