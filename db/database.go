package db

import "gorm.io/gorm"

// Database is the persistence handle injected into repositories. It is
// opened once at startup and owned by main.
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }
