package domain

// Taxonomy entities referenced by profiles. Seeded out of band; the
// application only ever reads them or links them by id.

type Country struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:64;not null"`
	Code string `json:"code" gorm:"size:2"`
}

type Language struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:64;not null"`
	Code string `json:"code" gorm:"size:8"`
}

type Currency struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:64;not null"`
	Code string `json:"code" gorm:"size:3"`
}

type TravelInterest struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:64;not null"`
}

type TravelStyle struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:64;not null"`
}
