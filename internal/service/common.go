package service

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate is the row lock taken before any stock or balance mutation.
func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
