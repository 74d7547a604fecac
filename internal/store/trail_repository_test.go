// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (TrailRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestMock(t)
	calls := 0
	connector := newPerCallConnector("dsn", newMockOpen(db, &calls), logger.Nop())
	return NewTrailRepository(NewGateway(connector, nil, logger.Nop()), NewProcedures("cw2")), mock
}

func TestTrailRepository_CreateThenGet(t *testing.T) {
	db, mock := newTestMock(t)
	calls := 0
	connector := newPooledConnector("dsn", 1, newMockOpen(db, &calls), logger.Nop())
	repo := NewTrailRepository(NewGateway(connector, nil, logger.Nop()), NewProcedures("cw2"))
	ctx := context.Background()

	mock.ExpectExec("CALL cw2.sp_create_trail($1,$2,$3,$4,$5,$6,$7,$8)").
		WithArgs("Dartmoor Loop", 12.5, int64(300), "Loop", "Moderate", int64(240), nil, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Create(ctx, models.TrailRequest{
		TrailName:     ptr("Dartmoor Loop"),
		Length:        ptr(12.5),
		ElevationGain: ptr(int64(300)),
		RouteType:     ptr("Loop"),
		Difficulty:    ptr("Moderate"),
		Duration:      ptr(int64(240)),
		OwnerID:       ptr(int64(1)),
	})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT * FROM cw2.sp_get_trail_by_id($1)").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRowsWithColumnDefinition(
			sqlmock.NewColumn("TrailID").OfType("INT4", int64(0)),
			sqlmock.NewColumn("TrailName").OfType("VARCHAR", ""),
			sqlmock.NewColumn("Length").OfType("NUMERIC", ""),
		).AddRow(int64(1), "Dartmoor Loop", []byte("12.5")))
	mock.ExpectClose()

	rows, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.Row{"TrailID": int64(1), "TrailName": "Dartmoor Loop", "Length": 12.5}, rows[0])

	require.NoError(t, connector.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrailRepository_GetAll(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT * FROM cw2.sp_get_all_trails()").
		WillReturnRows(sqlmock.NewRowsWithColumnDefinition(
			sqlmock.NewColumn("TrailID").OfType("INT4", int64(0)),
		))
	mock.ExpectClose()

	rows, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Row{}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrailRepository_UpdateBindsIDFirst(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("CALL cw2.sp_update_trail($1,$2,$3,$4,$5,$6,$7,$8)").
		WithArgs(int64(5), "Renamed", nil, nil, nil, "Hard", nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectClose()

	err := repo.Update(context.Background(), 5, models.TrailRequest{
		TrailName:  ptr("Renamed"),
		Difficulty: ptr("Hard"),
		OwnerID:    ptr(int64(42)),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrailRepository_DeleteFailure(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("CALL cw2.sp_delete_trail($1)").
		WithArgs(int64(5)).
		WillReturnError(assert.AnError)
	mock.ExpectClose()

	err := repo.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrDatabaseFailure)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
