package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smartcodecheck/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRetentionAndFilter(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "alice")

	for i := 0; i < model.MaxHistoryPerType+1; i++ {
		w := env.do(http.MethodPost, "/api/v1/history", gin.H{"type": "detection", "data": gin.H{"n": i}}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	w := env.do(http.MethodPost, "/api/v1/history", gin.H{"type": "comparison", "data": gin.H{"summary": "x"}}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/v1/history?type=detection", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]HistoryOut](t, w)
	require.Len(t, list, model.MaxHistoryPerType)
	assert.JSONEq(t, fmt.Sprintf(`{"n":%d}`, model.MaxHistoryPerType), string(list[0].Data))

	w = env.do(http.MethodGet, "/api/v1/history", nil, token)
	assert.Len(t, decode[[]HistoryOut](t, w), model.MaxHistoryPerType+1)
}

func TestHistoryValidationAndDelete(t *testing.T) {
	env := newTestEnv(t)
	alice := env.login(t, "alice")
	bob := env.login(t, "bob")

	w := env.do(http.MethodPost, "/api/v1/history", gin.H{"type": "other", "data": gin.H{}}, alice)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = env.do(http.MethodPost, "/api/v1/history", gin.H{"type": "detection", "data": gin.H{"score": 90}}, alice)
	require.Equal(t, http.StatusOK, w.Code)
	record := decode[HistoryOut](t, w)

	path := fmt.Sprintf("/api/v1/history/%d", record.ID)
	w = env.do(http.MethodDelete, path, nil, bob)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodDelete, path, nil, alice)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodDelete, "/api/v1/history/abc", nil, alice)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
