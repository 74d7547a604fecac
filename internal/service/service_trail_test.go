// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/mock"
	"github.com/MKhiriev/go-trail-service/internal/store"
	"github.com/MKhiriev/go-trail-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTrailSvc(t *testing.T, ctrl *gomock.Controller) (TrailService, *mock.MockTrailRepository) {
	t.Helper()
	repo := mock.NewMockTrailRepository(ctrl)
	svc, err := NewTrailService(repo, logger.Nop())
	require.NoError(t, err)
	return svc, repo
}

func ptr[T any](v T) *T { return &v }

func TestNewTrailService_NilRepository(t *testing.T) {
	svc, err := NewTrailService(nil, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrNilRepository)
}

func TestTrailService_ListTrails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTrailSvc(t, ctrl)
	ctx := context.Background()

	rows := []models.Row{{"TrailID": int64(1)}, {"TrailID": int64(2)}}
	repo.EXPECT().GetAll(ctx).Return(rows, nil)

	got, err := svc.ListTrails(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestTrailService_ListTrails_NilBecomesEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTrailSvc(t, ctrl)

	repo.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

	got, err := svc.ListTrails(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTrailService_ListTrails_DatabaseFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTrailSvc(t, ctrl)

	failure := &store.Failure{Detail: "connection refused"}
	repo.EXPECT().GetAll(gomock.Any()).Return(nil, failure)

	_, err := svc.ListTrails(context.Background())

	f, ok := store.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, "connection refused", f.Detail)
}

func TestTrailService_GetTrail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTrailSvc(t, ctrl)

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return([]models.Row{
			{"TrailID": int64(1), "TrailName": "Dartmoor Loop"},
			{"TrailID": int64(1), "TrailName": "duplicate"},
		}, nil),
		repo.EXPECT().GetByID(gomock.Any(), int64(9999)).Return([]models.Row{}, nil),
	)

	got, err := svc.GetTrail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Dartmoor Loop", got["TrailName"])

	_, err = svc.GetTrail(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrTrailNotFound)
}

func TestTrailService_GetTrail_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTrailSvc(t, ctrl)

	repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, &store.Failure{Detail: "boom"})

	_, err := svc.GetTrail(context.Background(), 3)
	assert.ErrorIs(t, err, store.ErrDatabaseFailure)
	assert.NotErrorIs(t, err, ErrTrailNotFound)
}

func TestTrailService_CreateTrail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTrailSvc(t, ctrl)

	req := models.TrailRequest{TrailName: ptr("Dartmoor Loop"), OwnerID: ptr(int64(1))}
	repo.EXPECT().Create(gomock.Any(), req).Return(nil)

	require.NoError(t, svc.CreateTrail(context.Background(), req))
}

func TestTrailService_CreateTrail_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTrailSvc(t, ctrl)

	repoErr := errors.New("not-null violation")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repoErr)

	err := svc.CreateTrail(context.Background(), models.TrailRequest{})
	assert.ErrorIs(t, err, repoErr)
}

func TestTrailService_UpdateTrail_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTrailSvc(t, ctrl)

	req := models.TrailRequest{Difficulty: ptr("Hard")}
	repo.EXPECT().Update(gomock.Any(), int64(404404), req).Return(nil)

	assert.NoError(t, svc.UpdateTrail(context.Background(), 404404, req))
}

func TestTrailService_DeleteTrail_Twice(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTrailSvc(t, ctrl)

	repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil).Times(2)

	assert.NoError(t, svc.DeleteTrail(context.Background(), 5))
	assert.NoError(t, svc.DeleteTrail(context.Background(), 5))
}

func TestTrailService_DeleteTrail_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestTrailSvc(t, ctrl)

	repo.EXPECT().Delete(gomock.Any(), int64(5)).Return(&store.Failure{Detail: "x"})

	err := svc.DeleteTrail(context.Background(), 5)
	assert.ErrorIs(t, err, store.ErrDatabaseFailure)
	assert.Contains(t, err.Error(), "delete trail 5")
}
