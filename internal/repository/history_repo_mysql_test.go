//go:build integration

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/smartcodecheck/backend/internal/model"
	"github.com/smartcodecheck/backend/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestHistoryRepository_MySQL 在真实 MySQL 上验证历史记录淘汰逻辑
func TestHistoryRepository_MySQL(t *testing.T) {
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8.0",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret",
			"MYSQL_DATABASE":      "codecheck",
		},
		WaitingFor: wait.ForLog("ready for connections").
			WithOccurrence(2).
			WithStartupTimeout(120 * time.Second),
	}

	mysqlContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer mysqlContainer.Terminate(ctx)

	host, err := mysqlContainer.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlContainer.MappedPort(ctx, "3306/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("root:secret@tcp(%s:%s)/codecheck?charset=utf8mb4&parseTime=True&loc=Local", host, port.Port())
	db, err := database.InitDB("mysql", dsn)
	require.NoError(t, err)

	repo := NewHistoryRepository(db)
	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	for i := 0; i <= model.MaxHistoryPerType; i++ {
		require.NoError(t, repo.CreateWithLimit(ctx, &model.AnalysisHistory{
			UserID:    7,
			Type:      model.HistoryTypeComparison,
			Data:      fmt.Sprintf(`{"n":%d}`, i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}, model.MaxHistoryPerType))
	}

	list, err := repo.List(ctx, 7, model.HistoryTypeComparison)
	require.NoError(t, err)
	require.Len(t, list, model.MaxHistoryPerType)
	assert.Equal(t, fmt.Sprintf(`{"n":%d}`, model.MaxHistoryPerType), list[0].Data)
	assert.Equal(t, `{"n":1}`, list[len(list)-1].Data)
}
