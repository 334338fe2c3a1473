package specification

import "gorm.io/gorm"

// ByCollectionName filters collections by their unique name
type ByCollectionName struct {
	Name string
}

func (s ByCollectionName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}
