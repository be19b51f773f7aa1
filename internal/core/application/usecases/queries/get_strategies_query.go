package queries

import (
	"errors"

	"freightgate/internal/pkg/guard"
)

var ErrGetStrategiesQueryIsNotConstructed = errors.New(
	"GetStrategiesQuery must be created via NewGetStrategiesQuery constructor",
)

// GetStrategiesQuery lists the ranking strategies clients may configure.
type GetStrategiesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStrategiesQuery creates a query for the ranking strategy list.
func NewGetStrategiesQuery() GetStrategiesQuery {
	return GetStrategiesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStrategiesQuery) Validate() error {
	return q.guard.Validate(ErrGetStrategiesQueryIsNotConstructed)
}
