package db

import "gorm.io/gorm"

// Database abstracts the gorm handle so repositories can be built
// against an interface instead of a shared global.
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }
