package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lokasync/cloudota/pkg/db"
	"github.com/lokasync/cloudota/pkg/logger"
	"github.com/lokasync/cloudota/pkg/models"
)

func testService(t *testing.T) (*Service, *db.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)

	return NewService(mockDB, logger.NewTestLogger()), mockDB
}

func makeLogs(n int) []*models.OTALog {
	logs := make([]*models.OTALog, n)
	for i := range logs {
		logs[i] = &models.OTALog{}
	}

	return logs
}

func TestListLogsPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		pageSize  int
		count     int64
		wantSkip  int
		wantPages int
	}{
		{name: "first page", page: 1, pageSize: 10, count: 23, wantSkip: 0, wantPages: 3},
		{name: "last partial page", page: 3, pageSize: 10, count: 23, wantSkip: 20, wantPages: 3},
		{name: "exact fit", page: 2, pageSize: 10, count: 20, wantSkip: 10, wantPages: 2},
		{name: "empty set still one page", page: 1, pageSize: 10, count: 0, wantSkip: 0, wantPages: 1},
		{name: "single record", page: 1, pageSize: 10, count: 1, wantSkip: 0, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockDB := testService(t)

			mockDB.EXPECT().CountLogs(gomock.Any(), nil).Return(tt.count, nil)
			mockDB.EXPECT().
				ListLogs(gomock.Any(), nil, tt.wantSkip, tt.pageSize).
				Return(makeLogs(0), nil)

			page, err := svc.ListLogs(context.Background(), nil, tt.page, tt.pageSize)
			require.NoError(t, err)

			assert.Equal(t, tt.page, page.Page)
			assert.Equal(t, tt.pageSize, page.PageSize)
			assert.Equal(t, tt.count, page.TotalCount)
			assert.Equal(t, tt.wantPages, page.TotalPages)
		})
	}
}

func TestListLogsInvalidPaging(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.ListLogs(context.Background(), nil, 0, 10)
	require.ErrorIs(t, err, ErrInvalidPage)

	_, err = svc.ListLogs(context.Background(), nil, 1, -1)
	require.ErrorIs(t, err, ErrInvalidPageSize)
}

func TestListLogsDefaultsPageSize(t *testing.T) {
	svc, mockDB := testService(t)

	mockDB.EXPECT().CountLogs(gomock.Any(), nil).Return(int64(3), nil)
	mockDB.EXPECT().
		ListLogs(gomock.Any(), nil, 0, DefaultPageSize).
		Return(makeLogs(3), nil)

	page, err := svc.ListLogs(context.Background(), nil, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, page.PageSize)
}

func TestListLogsRejectsUnknownStatus(t *testing.T) {
	svc, _ := testService(t)

	filter := &models.LogFilter{FlashStatus: "done"}

	_, err := svc.ListLogs(context.Background(), filter, 1, 10)
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.ListLatestPerNode(context.Background(), filter, 1, 10)
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListLogsCapsPageSize(t *testing.T) {
	svc, mockDB := testService(t)

	mockDB.EXPECT().CountLogs(gomock.Any(), nil).Return(int64(500), nil)
	mockDB.EXPECT().
		ListLogs(gomock.Any(), nil, 0, MaxPageSize).
		Return(makeLogs(MaxPageSize), nil)

	page, err := svc.ListLogs(context.Background(), nil, 1, 10000)
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, page.PageSize)
	assert.Equal(t, 5, page.TotalPages)
}

func TestListLogsPassesFilter(t *testing.T) {
	svc, mockDB := testService(t)

	filter := &models.LogFilter{NodeLocation: "Depok", FlashStatus: "success"}

	mockDB.EXPECT().CountLogs(gomock.Any(), filter).Return(int64(2), nil)
	mockDB.EXPECT().ListLogs(gomock.Any(), filter, 0, 10).Return(makeLogs(2), nil)

	page, err := svc.ListLogs(context.Background(), filter, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Logs, 2)
}

func TestListLatestPerNodePagination(t *testing.T) {
	svc, mockDB := testService(t)

	mockDB.EXPECT().CountDistinctNodes(gomock.Any(), nil).Return(int64(7), nil)
	mockDB.EXPECT().
		ListLatestPerNode(gomock.Any(), nil, 5, 5).
		Return(makeLogs(2), nil)

	page, err := svc.ListLatestPerNode(context.Background(), nil, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Logs, 2)
}

func TestGetBySessionIDNotFound(t *testing.T) {
	svc, mockDB := testService(t)

	mockDB.EXPECT().
		GetLogBySessionID(gomock.Any(), "missing").
		Return(nil, db.ErrNotFound)

	_, err := svc.GetBySessionID(context.Background(), "missing")
	require.ErrorIs(t, err, db.ErrNotFound)
}

func TestListVersions(t *testing.T) {
	svc, mockDB := testService(t)

	mockDB.EXPECT().NodeExists(gomock.Any(), "penyemaian-depok-1a").Return(true, nil)
	mockDB.EXPECT().
		ListVersions(gomock.Any(), "penyemaian-depok-1a").
		Return(makeLogs(3), nil)

	logs, err := svc.ListVersions(context.Background(), "penyemaian-depok-1a")
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}

func TestListVersionsUnknownNode(t *testing.T) {
	svc, mockDB := testService(t)

	mockDB.EXPECT().NodeExists(gomock.Any(), "ghost").Return(false, nil)

	_, err := svc.ListVersions(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNodeNotFound)
}

func TestDeleteLogsAllVersions(t *testing.T) {
	svc, mockDB := testService(t)

	mockDB.EXPECT().NodeExists(gomock.Any(), "penyemaian-depok-1a").Return(true, nil)
	mockDB.EXPECT().
		DeleteLogs(gomock.Any(), "penyemaian-depok-1a", "").
		Return(int64(4), nil)

	deleted, err := svc.DeleteLogs(context.Background(), "penyemaian-depok-1a", "")
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}

func TestDeleteLogsScopedToVersion(t *testing.T) {
	svc, mockDB := testService(t)

	mockDB.EXPECT().NodeExists(gomock.Any(), "penyemaian-depok-1a").Return(true, nil)
	mockDB.EXPECT().
		DeleteLogs(gomock.Any(), "penyemaian-depok-1a", "2.0.1").
		Return(int64(1), nil)

	deleted, err := svc.DeleteLogs(context.Background(), "penyemaian-depok-1a", "2.0.1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestDeleteLogsUnknownNode(t *testing.T) {
	svc, mockDB := testService(t)

	mockDB.EXPECT().NodeExists(gomock.Any(), "ghost").Return(false, nil)

	_, err := svc.DeleteLogs(context.Background(), "ghost", "")
	require.ErrorIs(t, err, ErrNodeNotFound)
}

func TestDeleteLogsUnknownVersion(t *testing.T) {
	svc, mockDB := testService(t)

	mockDB.EXPECT().NodeExists(gomock.Any(), "penyemaian-depok-1a").Return(true, nil)
	mockDB.EXPECT().
		DeleteLogs(gomock.Any(), "penyemaian-depok-1a", "9.9.9").
		Return(int64(0), nil)

	_, err := svc.DeleteLogs(context.Background(), "penyemaian-depok-1a", "9.9.9")
	require.ErrorIs(t, err, ErrFirmwareNotFound)
}

func TestGetFilterOptions(t *testing.T) {
	svc, mockDB := testService(t)

	want := &models.LogFilterOptions{
		NodeLocations: []string{"Cibubur", "Depok"},
		NodeTypes:     []string{"Penyemaian"},
		FlashStatuses: []string{"in-progress", "success"},
	}

	mockDB.EXPECT().GetFilterOptions(gomock.Any()).Return(want, nil)

	got, err := svc.GetFilterOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
