// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abenov/mathai/ent/predicate"
	"github.com/abenov/mathai/ent/profilesnapshot"
)

// ProfileSnapshotQuery is the builder for querying ProfileSnapshot entities.
type ProfileSnapshotQuery struct {
	config
	ctx        *QueryContext
	order      []profilesnapshot.OrderOption
	inters     []Interceptor
	predicates []predicate.ProfileSnapshot
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ProfileSnapshotQuery builder.
func (_q *ProfileSnapshotQuery) Where(ps ...predicate.ProfileSnapshot) *ProfileSnapshotQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ProfileSnapshotQuery) Limit(limit int) *ProfileSnapshotQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ProfileSnapshotQuery) Offset(offset int) *ProfileSnapshotQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ProfileSnapshotQuery) Unique(unique bool) *ProfileSnapshotQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ProfileSnapshotQuery) Order(o ...profilesnapshot.OrderOption) *ProfileSnapshotQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first ProfileSnapshot entity from the query.
// Returns a *NotFoundError when no ProfileSnapshot was found.
func (_q *ProfileSnapshotQuery) First(ctx context.Context) (*ProfileSnapshot, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{profilesnapshot.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ProfileSnapshotQuery) FirstX(ctx context.Context) *ProfileSnapshot {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ProfileSnapshot ID from the query.
// Returns a *NotFoundError when no ProfileSnapshot ID was found.
func (_q *ProfileSnapshotQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{profilesnapshot.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ProfileSnapshotQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ProfileSnapshot entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ProfileSnapshot entity is found.
// Returns a *NotFoundError when no ProfileSnapshot entities are found.
func (_q *ProfileSnapshotQuery) Only(ctx context.Context) (*ProfileSnapshot, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{profilesnapshot.Label}
	default:
		return nil, &NotSingularError{profilesnapshot.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ProfileSnapshotQuery) OnlyX(ctx context.Context) *ProfileSnapshot {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ProfileSnapshot ID in the query.
// Returns a *NotSingularError when more than one ProfileSnapshot ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ProfileSnapshotQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{profilesnapshot.Label}
	default:
		err = &NotSingularError{profilesnapshot.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ProfileSnapshotQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ProfileSnapshots.
func (_q *ProfileSnapshotQuery) All(ctx context.Context) ([]*ProfileSnapshot, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ProfileSnapshot, *ProfileSnapshotQuery]()
	return withInterceptors[[]*ProfileSnapshot](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ProfileSnapshotQuery) AllX(ctx context.Context) []*ProfileSnapshot {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ProfileSnapshot IDs.
func (_q *ProfileSnapshotQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(profilesnapshot.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ProfileSnapshotQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ProfileSnapshotQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ProfileSnapshotQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ProfileSnapshotQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ProfileSnapshotQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ProfileSnapshotQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ProfileSnapshotQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ProfileSnapshotQuery) Clone() *ProfileSnapshotQuery {
	if _q == nil {
		return nil
	}
	return &ProfileSnapshotQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]profilesnapshot.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.ProfileSnapshot{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Data string `json:"data,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ProfileSnapshot.Query().
//		GroupBy(profilesnapshot.FieldData).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ProfileSnapshotQuery) GroupBy(field string, fields ...string) *ProfileSnapshotGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ProfileSnapshotGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = profilesnapshot.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Data string `json:"data,omitempty"`
//	}
//
//	client.ProfileSnapshot.Query().
//		Select(profilesnapshot.FieldData).
//		Scan(ctx, &v)
func (_q *ProfileSnapshotQuery) Select(fields ...string) *ProfileSnapshotSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ProfileSnapshotSelect{ProfileSnapshotQuery: _q}
	sbuild.label = profilesnapshot.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ProfileSnapshotSelect configured with the given aggregations.
func (_q *ProfileSnapshotQuery) Aggregate(fns ...AggregateFunc) *ProfileSnapshotSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ProfileSnapshotQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !profilesnapshot.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ProfileSnapshotQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ProfileSnapshot, error) {
	var (
		nodes = []*ProfileSnapshot{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ProfileSnapshot).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ProfileSnapshot{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (_q *ProfileSnapshotQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ProfileSnapshotQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(profilesnapshot.Table, profilesnapshot.Columns, sqlgraph.NewFieldSpec(profilesnapshot.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profilesnapshot.FieldID)
		for i := range fields {
			if fields[i] != profilesnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ProfileSnapshotQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(profilesnapshot.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = profilesnapshot.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ProfileSnapshotGroupBy is the group-by builder for ProfileSnapshot entities.
type ProfileSnapshotGroupBy struct {
	selector
	build *ProfileSnapshotQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ProfileSnapshotGroupBy) Aggregate(fns ...AggregateFunc) *ProfileSnapshotGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ProfileSnapshotGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProfileSnapshotQuery, *ProfileSnapshotGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ProfileSnapshotGroupBy) sqlScan(ctx context.Context, root *ProfileSnapshotQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ProfileSnapshotSelect is the builder for selecting fields of ProfileSnapshot entities.
type ProfileSnapshotSelect struct {
	*ProfileSnapshotQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ProfileSnapshotSelect) Aggregate(fns ...AggregateFunc) *ProfileSnapshotSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ProfileSnapshotSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ProfileSnapshotQuery, *ProfileSnapshotSelect](ctx, _s.ProfileSnapshotQuery, _s, _s.inters, v)
}

func (_s *ProfileSnapshotSelect) sqlScan(ctx context.Context, root *ProfileSnapshotQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
