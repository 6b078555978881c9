package models

import "time"

// Brand is one of the shoe brands the shop carries.
type Brand string

const (
	BrandNike       Brand = "Nike"
	BrandAdidas     Brand = "Adidas"
	BrandPuma       Brand = "Puma"
	BrandConverse   Brand = "Converse"
	BrandVans       Brand = "Vans"
	BrandTimberland Brand = "Timberland"
)

// Valid reports whether b is a known brand.
func (b Brand) Valid() bool {
	switch b {
	case BrandNike, BrandAdidas, BrandPuma, BrandConverse, BrandVans, BrandTimberland:
		return true
	}
	return false
}

// Category is a shoe category.
type Category string

const (
	CategorySneakers Category = "sneakers"
	CategoryBoots    Category = "boots"
	CategoryCasual   Category = "casual"
	CategoryAthletic Category = "athletic"
	CategoryFormal   Category = "formal"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategorySneakers, CategoryBoots, CategoryCasual, CategoryAthletic, CategoryFormal:
		return true
	}
	return false
}

// DefaultStock is the stock counter assigned to seeded products.
const DefaultStock = 100

// Product represents a product in the store.
type Product struct {
	ID          string    `json:"id" bson:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" bson:"name" validate:"required"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price" validate:"gte=0"`
	Brand       Brand     `json:"brand" bson:"brand" gorm:"index;type:varchar(32)"`
	Category    Category  `json:"category" bson:"category" gorm:"index;type:varchar(32)"`
	Sizes       []float64 `json:"sizes" bson:"sizes" gorm:"serializer:json"`
	ImageURL    string    `json:"image_url" bson:"image_url"`
	Stock       int       `json:"stock" bson:"stock" gorm:"default:100"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// ProductFilter narrows a product listing. Empty fields are ignored.
type ProductFilter struct {
	Category Category
	Brand    Brand
}
