package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/smartcodecheck/backend/internal/model"
	"github.com/smartcodecheck/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryServiceCreateValidation(t *testing.T) {
	svc := NewHistoryService(&memHistoryRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, &CreateHistoryRequest{Type: "other", Data: json.RawMessage(`{}`)})
	assert.ErrorIs(t, err, ErrInvalidHistoryType)

	_, err = svc.Create(ctx, 1, &CreateHistoryRequest{Type: model.HistoryTypeDetection, Data: json.RawMessage(`[1,2]`)})
	assert.ErrorIs(t, err, ErrInvalidHistoryData)

	_, err = svc.Create(ctx, 1, &CreateHistoryRequest{Type: model.HistoryTypeDetection, Data: json.RawMessage(`null`)})
	assert.ErrorIs(t, err, ErrInvalidHistoryData)

	_, err = svc.List(ctx, 1, "other")
	assert.ErrorIs(t, err, ErrInvalidHistoryType)
}

func TestHistoryServiceRetention(t *testing.T) {
	repo := &memHistoryRepo{}
	svc := NewHistoryService(repo)
	ctx := context.Background()

	for i := 0; i < model.MaxHistoryPerType+2; i++ {
		_, err := svc.Create(ctx, 1, &CreateHistoryRequest{
			Type: model.HistoryTypeDetection,
			Data: json.RawMessage(fmt.Sprintf(`{"n":%d}`, i)),
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, 1, &CreateHistoryRequest{Type: model.HistoryTypeComparison, Data: json.RawMessage(`{}`)})
	require.NoError(t, err)

	assert.Equal(t, model.MaxHistoryPerType, repo.lastLimit)

	detections, err := svc.List(ctx, 1, model.HistoryTypeDetection)
	require.NoError(t, err)
	require.Len(t, detections, model.MaxHistoryPerType)
	assert.Equal(t, `{"n":11}`, detections[0].Data)
	assert.Equal(t, `{"n":2}`, detections[len(detections)-1].Data)

	all, err := svc.List(ctx, 1, "")
	require.NoError(t, err)
	assert.Len(t, all, model.MaxHistoryPerType+1)
}

func TestHistoryServiceDeleteOwnership(t *testing.T) {
	svc := NewHistoryService(&memHistoryRepo{})
	ctx := context.Background()

	record, err := svc.Create(ctx, 1, &CreateHistoryRequest{Type: model.HistoryTypeDetection, Data: json.RawMessage(`{"score":90}`)})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, 2, record.ID), repository.ErrHistoryNotFound)
	require.NoError(t, svc.Delete(ctx, 1, record.ID))
	assert.ErrorIs(t, svc.Delete(ctx, 1, record.ID), repository.ErrHistoryNotFound)
}
