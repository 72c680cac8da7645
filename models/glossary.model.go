package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GlossaryTerm is a dictionary entry
type GlossaryTerm struct {
	gorm.Model
	Term         string         `json:"term" gorm:"uniqueIndex;not null"`
	Slug         string         `json:"slug" gorm:"uniqueIndex;not null"`
	Definition   string         `json:"definition" gorm:"not null"`
	Example      string         `json:"example"`
	Category     string         `json:"category"`
	RelatedTerms datatypes.JSON `json:"related_terms"`
}
