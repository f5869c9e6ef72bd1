package hateoas

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the sort direction for the requested page.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (d Direction) Valid() bool {
	return d == DirectionASC || d == DirectionDESC
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction Direction
	}

	ColumnAlias = string

	// ColumnMapping maps sort aliases exposed to clients to column names.
	// Key is an external alias, value is an internal column name.
	ColumnMapping = map[ColumnAlias]string
)

var _availableColumnNameSymbols = append([]rune("_.'`\""), lo.AlphanumericCharset...)

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s': %w", o.Direction, ErrInvalidArgument)
	}

	// Column names end up in raw ORDER BY SQL.
	if o.Column == "" || !lo.Every(_availableColumnNameSymbols, []rune(o.Column)) {
		return fmt.Errorf("ordering column name contains forbidden symbols '%s': %w", o.Column, ErrInvalidArgument)
	}

	return nil
}

// ToSQL converts Orderings to "<column_1> <direction_1>, <column_2> <direction_2>".
//
// Example: for [{"a", "ASC"}, {"b", "DESC"}] returns "a ASC, b DESC".
func (o Orderings) ToSQL() string {
	return strings.Join(lo.Map(o, func(ordering OrderBy, _ int) string {
		return fmt.Sprintf("%s %s", ordering.Column, ordering.Direction)
	}), ", ")
}

// Apply applies the ordering to a gorm query.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	if len(o) == 0 {
		return db
	}

	return db.Order(o.ToSQL())
}

func (o Orderings) validate() error {
	if len(o) == 0 {
		return fmt.Errorf("empty ordering list: %w", ErrInvalidArgument)
	}

	for _, ordering := range o {
		if err := ordering.validate(); err != nil {
			return err
		}
	}

	return nil
}

// ParseSort builds Orderings from sort expressions of the form "alias",
// "alias asc|desc" or "alias,asc|desc". A missing direction means ASC.
// Aliases are resolved via columnMapping; an unknown alias is reported
// together with the closest known one.
func ParseSort(sortExpressions []string, columnMapping ColumnMapping) (Orderings, error) {
	ret := make(Orderings, 0, len(sortExpressions))
	aliases := lo.Keys(columnMapping)

	for _, expression := range sortExpressions {
		parts := strings.FieldsFunc(expression, func(r rune) bool {
			return r == ' ' || r == ','
		})
		if len(parts) == 0 || len(parts) > 2 {
			return nil, fmt.Errorf("invalid ordering string format '%s': %w", expression, ErrInvalidArgument)
		}

		direction := DirectionASC
		if len(parts) == 2 {
			direction = Direction(strings.ToUpper(parts[1]))
			if !direction.Valid() {
				return nil, fmt.Errorf("invalid ordering direction '%s': %w", parts[1], ErrInvalidArgument)
			}
		}

		columnName := columnMapping[parts[0]]
		if columnName == "" {
			return nil, fmt.Errorf("invalid column alias '%s'. closest: '%s': %w", parts[0], closestAlias(parts[0], aliases), ErrInvalidArgument)
		}

		ret = append(ret, OrderBy{
			Column:    columnName,
			Direction: direction,
		})
	}

	return ret, nil
}

func closestAlias(input ColumnAlias, dataSet []ColumnAlias) ColumnAlias {
	minDist := math.MaxInt
	closest := ""

	for _, candidate := range dataSet {
		dist := levenshtein([]rune(candidate), []rune(input))
		if dist < minDist || (dist == minDist && candidate < closest) {
			minDist = dist
			closest = candidate
		}
	}

	return closest
}
