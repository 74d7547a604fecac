// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-trail-service/models"
)

// Stored procedure names.
const (
	procGetAllTrails = "sp_get_all_trails"
	procGetTrailByID = "sp_get_trail_by_id"
	procCreateTrail  = "sp_create_trail"
	procUpdateTrail  = "sp_update_trail"
	procDeleteTrail  = "sp_delete_trail"
)

// Statement is one invocation handed to the gateway.
type Statement struct {
	// Name labels the call in logs and metrics.
	Name string
	SQL  string
	Args []any
}

type invocationKind int

const (
	// selectFrom reads rows from a set-returning function.
	selectFrom invocationKind = iota
	// call runs a procedure that returns nothing.
	call
)

// procedureCall renders "SELECT * FROM schema.fn(?, ...)" or
// "CALL schema.proc(?, ...)". It implements sq.Sqlizer.
type procedureCall struct {
	kind   invocationKind
	schema string
	name   string
	args   []any
}

func (p procedureCall) ToSql() (string, []any, error) {
	if p.name == "" {
		return "", nil, fmt.Errorf("%w: empty procedure name", ErrBuildingSQLQuery)
	}

	target := p.name
	if p.schema != "" {
		target = p.schema + "." + p.name
	}

	var verb string
	switch p.kind {
	case selectFrom:
		verb = "SELECT * FROM"
	case call:
		verb = "CALL"
	default:
		return "", nil, fmt.Errorf("%w: unknown invocation kind %d", ErrBuildingSQLQuery, p.kind)
	}

	return fmt.Sprintf("%s %s(%s)", verb, target, sq.Placeholders(len(p.args))), p.args, nil
}

// Procedures builds the trail procedure invocations for one schema.
type Procedures struct {
	schema string
}

// NewProcedures returns a catalogue for procedures living in schema.
func NewProcedures(schema string) *Procedures {
	return &Procedures{schema: schema}
}

func (p *Procedures) GetAllTrails() (Statement, error) {
	return p.build(selectFrom, procGetAllTrails)
}

func (p *Procedures) GetTrailByID(id int64) (Statement, error) {
	return p.build(selectFrom, procGetTrailByID, id)
}

// CreateTrail binds the eight create parameters in procedure order.
func (p *Procedures) CreateTrail(req models.TrailRequest) (Statement, error) {
	return p.build(call, procCreateTrail,
		valueOrNil(req.TrailName),
		valueOrNil(req.Length),
		valueOrNil(req.ElevationGain),
		valueOrNil(req.RouteType),
		valueOrNil(req.Difficulty),
		valueOrNil(req.Duration),
		valueOrNil(req.Description),
		valueOrNil(req.OwnerID),
	)
}

// UpdateTrail binds id followed by the seven mutable fields. OwnerID is
// not part of an update.
func (p *Procedures) UpdateTrail(id int64, req models.TrailRequest) (Statement, error) {
	return p.build(call, procUpdateTrail,
		id,
		valueOrNil(req.TrailName),
		valueOrNil(req.Length),
		valueOrNil(req.ElevationGain),
		valueOrNil(req.RouteType),
		valueOrNil(req.Difficulty),
		valueOrNil(req.Duration),
		valueOrNil(req.Description),
	)
}

func (p *Procedures) DeleteTrail(id int64) (Statement, error) {
	return p.build(call, procDeleteTrail, id)
}

func (p *Procedures) build(kind invocationKind, name string, args ...any) (Statement, error) {
	query, queryArgs, err := procedureCall{kind: kind, schema: p.schema, name: name, args: args}.ToSql()
	if err != nil {
		return Statement{}, err
	}

	query, err = sq.Dollar.ReplacePlaceholders(query)
	if err != nil {
		return Statement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return Statement{Name: name, SQL: query, Args: queryArgs}, nil
}

// valueOrNil dereferences p, turning a missing JSON field into SQL NULL.
func valueOrNil[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
