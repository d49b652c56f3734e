package repos

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/storecraft/storefront/pkg/logger"
)

var columnMapping = map[string]string{
	"id":        "id",
	"name":      "name",
	"color":     "color",
	"size":      "size",
	"price":     "price",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type CriteriaTranslator struct {
	logger *logger.Logger
}

func NewCriteriaTranslator(log *logger.Logger) *CriteriaTranslator {
	return &CriteriaTranslator{logger: log}
}

func (t *CriteriaTranslator) ApplyToSelect(builder sq.SelectBuilder, criteria model.Criteria) sq.SelectBuilder {
	if criteria.HasSpec() {
		builder = builder.Where(t.translateSpec(criteria.Spec()))
	}

	builder = t.applySorting(builder, criteria)
	builder = t.applyPagination(builder, criteria)

	return builder
}

func (t *CriteriaTranslator) ApplyConditionsOnly(builder sq.SelectBuilder, criteria model.Criteria) sq.SelectBuilder {
	if criteria.HasSpec() {
		builder = builder.Where(t.translateSpec(criteria.Spec()))
	}

	return builder
}

func (t *CriteriaTranslator) translateSpec(spec model.Specification) sq.Sqlizer {
	switch spec.Operator() {
	case model.SpecOpEq:
		return sq.Eq{t.col(spec.Field()): bindValue(spec.Value())}

	case model.SpecOpLike:
		return sq.Like{t.col(spec.Field()): bindValue(spec.Value())}

	case model.SpecOpBetween:
		values := spec.Value().([]any)
		col := t.col(spec.Field())

		return sq.And{sq.GtOrEq{col: values[0]}, sq.LtOrEq{col: values[1]}}

	case model.SpecOpAll:
		children := spec.Children()
		if len(children) == 0 {
			return sq.Expr("TRUE")
		}

		conditions := make(sq.And, 0, len(children))
		for _, child := range children {
			conditions = append(conditions, t.translateSpec(child))
		}

		return conditions

	case model.SpecOpAny:
		children := spec.Children()
		if len(children) == 0 {
			return sq.Expr("FALSE")
		}

		conditions := make(sq.Or, 0, len(children))
		for _, child := range children {
			conditions = append(conditions, t.translateSpec(child))
		}

		return conditions

	case model.SpecOpOne:
		return t.translateOneOf(spec.Children())

	case model.SpecOpNot:
		children := spec.Children()
		if len(children) > 0 {
			return sq.Expr("NOT (?)", t.translateSpec(children[0]))
		}
	}

	return nil
}

// translateOneOf renders an exactly-one-of condition by summing each
// child's truth value and requiring the sum to equal one.
func (t *CriteriaTranslator) translateOneOf(children []model.Specification) sq.Sqlizer {
	if len(children) == 0 {
		return sq.Expr("FALSE")
	}

	parts := make([]string, len(children))
	args := make([]any, len(children))

	for index, child := range children {
		parts[index] = "(CASE WHEN ? THEN 1 ELSE 0 END)"
		args[index] = t.translateSpec(child)
	}

	return sq.Expr(strings.Join(parts, " + ")+" = 1", args...)
}

func (t *CriteriaTranslator) col(field string) string {
	if col, ok := columnMapping[field]; ok {
		return col
	}

	if t.logger != nil {
		t.logger.Warn().
			Str("field", field).
			Str("fallback", "created_at").
			Msg("unknown sort field requested, falling back to default")
	}

	return "created_at"
}

func (t *CriteriaTranslator) applySorting(builder sq.SelectBuilder, c model.Criteria) sq.SelectBuilder {
	if !c.HasSorting() {
		return builder.OrderBy("created_at DESC")
	}

	for _, s := range c.Sorting() {
		builder = builder.OrderBy(fmt.Sprintf("%s %s", t.col(s.Field), s.Direction))
	}

	return builder
}

func (t *CriteriaTranslator) applyPagination(builder sq.SelectBuilder, c model.Criteria) sq.SelectBuilder {
	if !c.HasPagination() {
		return builder
	}

	return builder.Limit(uint64(c.Size())).Offset(uint64(c.Offset()))
}

// bindValue flattens typed enums into their string form so placeholders
// bind as plain text.
func bindValue(v any) any {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	return v
}
