package models

// Category is a shared label row, unique by name across all users.
// Created on first use and garbage collected once nothing references it.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:64;uniqueIndex;not null"`
}
