package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/mocks"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var testUser = dtos.Identity{UserID: 1, Email: "test@example.com"}

func remoteJob() *dtos.RemoteJob {
	return &dtos.RemoteJob{
		ID:          1,
		Title:       testutil.Ptr("Software Engineer"),
		Description: testutil.Ptr("Develop awesome software"),
		Company:     testutil.Ptr("TechCorp"),
		Location:    testutil.Ptr("San Francisco"),
		Salary:      testutil.Ptr(100000.0),
	}
}

func newApplicationService(t *testing.T, foldUnavailable bool) (*ApplicationService, *mocks.MockJobFetcher, *gorm.DB) {
	t.Helper()
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockJobFetcher(ctrl)
	db := testutil.NewSQLiteDB(t, models.ApplyModels()...)
	svc, err := NewApplicationService(ApplicationServiceOptions{
		DB:                    db,
		Fetcher:               fetcher,
		UnavailableAsNotFound: foldUnavailable,
	})
	require.NoError(t, err)
	return svc, fetcher, db
}

func countApplications(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.JobApplication{}).Count(&n).Error)
	return n
}

func TestNewApplicationService_RequiresDeps(t *testing.T) {
	_, err := NewApplicationService(ApplicationServiceOptions{})
	assert.Error(t, err)

	db := testutil.NewSQLiteDB(t, models.ApplyModels()...)
	_, err = NewApplicationService(ApplicationServiceOptions{DB: db})
	assert.Error(t, err)
}

func TestApplyJob_Success(t *testing.T) {
	svc, fetcher, db := newApplicationService(t, true)
	fetcher.EXPECT().FetchJob(gomock.Any(), uint(1)).Return(remoteJob(), nil)

	app, err := svc.ApplyJob(context.Background(), 1, testUser)
	require.NoError(t, err)

	assert.NotZero(t, app.ID)
	assert.False(t, app.AppliedAt.IsZero())
	assert.Equal(t, uint(1), app.JobID)
	assert.Equal(t, int64(1), app.UserID)
	assert.Equal(t, "test@example.com", app.UserEmail)
	assert.Equal(t, "Software Engineer", app.Title)
	assert.Equal(t, "TechCorp", app.Company)
	assert.Equal(t, "Develop awesome software", *app.Description)
	assert.Equal(t, "San Francisco", *app.Location)
	assert.InDelta(t, 100000.0, *app.Salary, 0.001)
	assert.Equal(t, int64(1), countApplications(t, db))
}

func TestApplyJob_MissingRemoteFieldsStayNull(t *testing.T) {
	svc, fetcher, _ := newApplicationService(t, true)
	fetcher.EXPECT().FetchJob(gomock.Any(), uint(5)).Return(&dtos.RemoteJob{
		ID:      5,
		Title:   testutil.Ptr("Intern"),
		Company: testutil.Ptr("Startup"),
	}, nil)

	app, err := svc.ApplyJob(context.Background(), 5, testUser)
	require.NoError(t, err)
	assert.Nil(t, app.Description)
	assert.Nil(t, app.Location)
	assert.Nil(t, app.Salary)
}

func TestApplyJob_DuplicateSkipsFetch(t *testing.T) {
	svc, fetcher, db := newApplicationService(t, true)
	fetcher.EXPECT().FetchJob(gomock.Any(), uint(1)).Return(remoteJob(), nil).Times(1)

	_, err := svc.ApplyJob(context.Background(), 1, testUser)
	require.NoError(t, err)

	_, err = svc.ApplyJob(context.Background(), 1, testUser)
	assert.ErrorIs(t, err, ErrDuplicateApplication)
	assert.Equal(t, int64(1), countApplications(t, db))
}

func TestApplyJob_SameJobDifferentUsers(t *testing.T) {
	svc, fetcher, db := newApplicationService(t, true)
	fetcher.EXPECT().FetchJob(gomock.Any(), uint(1)).Return(remoteJob(), nil).Times(2)

	_, err := svc.ApplyJob(context.Background(), 1, testUser)
	require.NoError(t, err)
	_, err = svc.ApplyJob(context.Background(), 1, dtos.Identity{UserID: 2, Email: "other@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), countApplications(t, db))
}

func TestApplyJob_RaceCaughtByUniqueIndex(t *testing.T) {
	svc, fetcher, db := newApplicationService(t, true)

	// another request commits between the duplicate check and the insert
	fetcher.EXPECT().FetchJob(gomock.Any(), uint(1)).DoAndReturn(
		func(ctx context.Context, jobID uint) (*dtos.RemoteJob, error) {
			err := db.Create(&models.JobApplication{
				JobID: jobID, UserID: testUser.UserID, UserEmail: testUser.Email, Title: "t", Company: "c",
			}).Error
			require.NoError(t, err)
			return remoteJob(), nil
		})

	_, err := svc.ApplyJob(context.Background(), 1, testUser)
	assert.ErrorIs(t, err, ErrDuplicateApplication)
	assert.Equal(t, int64(1), countApplications(t, db))
}

func TestApplyJob_RemoteNotFound(t *testing.T) {
	svc, fetcher, db := newApplicationService(t, false)
	fetcher.EXPECT().FetchJob(gomock.Any(), uint(999)).Return(nil, ErrRemoteJobNotFound)

	_, err := svc.ApplyJob(context.Background(), 999, testUser)
	assert.ErrorIs(t, err, ErrJobNotFound)
	assert.Equal(t, int64(0), countApplications(t, db))
}

func TestApplyJob_UpstreamUnavailable(t *testing.T) {
	transport := fmt.Errorf("%w: dial tcp: connection refused", ErrUpstreamUnavailable)

	t.Run("folded into not found", func(t *testing.T) {
		svc, fetcher, db := newApplicationService(t, true)
		fetcher.EXPECT().FetchJob(gomock.Any(), uint(1)).Return(nil, transport)

		_, err := svc.ApplyJob(context.Background(), 1, testUser)
		assert.ErrorIs(t, err, ErrJobNotFound)
		assert.Equal(t, int64(0), countApplications(t, db))
	})

	t.Run("surfaced", func(t *testing.T) {
		svc, fetcher, db := newApplicationService(t, false)
		fetcher.EXPECT().FetchJob(gomock.Any(), uint(1)).Return(nil, errors.New("unexpected"))

		_, err := svc.ApplyJob(context.Background(), 1, testUser)
		assert.ErrorIs(t, err, ErrUpstreamUnavailable)
		assert.False(t, errors.Is(err, ErrJobNotFound))
		assert.Equal(t, int64(0), countApplications(t, db))
	})
}

func TestApplyJob_StorageFault(t *testing.T) {
	svc, fetcher, db := newApplicationService(t, true)
	fetcher.EXPECT().FetchJob(gomock.Any(), gomock.Any()).Times(0)
	require.NoError(t, db.Migrator().DropTable(&models.JobApplication{}))

	_, err := svc.ApplyJob(context.Background(), 1, testUser)
	assert.ErrorIs(t, err, ErrOperationFailed)
}

func TestDeleteAppliedJob(t *testing.T) {
	svc, fetcher, db := newApplicationService(t, true)
	fetcher.EXPECT().FetchJob(gomock.Any(), uint(1)).Return(remoteJob(), nil)
	ctx := context.Background()

	app, err := svc.ApplyJob(ctx, 1, testUser)
	require.NoError(t, err)

	deleted, err := svc.DeleteAppliedJob(ctx, app.ID, 2)
	require.NoError(t, err)
	assert.False(t, deleted, "other users must not delete the application")
	assert.Equal(t, int64(1), countApplications(t, db))

	deleted, err = svc.DeleteAppliedJob(ctx, app.ID, testUser.UserID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, int64(0), countApplications(t, db))

	deleted, err = svc.DeleteAppliedJob(ctx, app.ID, testUser.UserID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetAndListAppliedJobs(t *testing.T) {
	svc, fetcher, _ := newApplicationService(t, true)
	fetcher.EXPECT().FetchJob(gomock.Any(), gomock.Any()).Return(remoteJob(), nil).Times(3)
	ctx := context.Background()

	first, err := svc.ApplyJob(ctx, 1, testUser)
	require.NoError(t, err)
	second, err := svc.ApplyJob(ctx, 2, testUser)
	require.NoError(t, err)
	_, err = svc.ApplyJob(ctx, 1, dtos.Identity{UserID: 2, Email: "other@example.com"})
	require.NoError(t, err)

	got, err := svc.GetAppliedJob(ctx, first.ID, testUser.UserID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = svc.GetAppliedJob(ctx, first.ID, 2)
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	apps, err := svc.ListAppliedJobs(ctx, testUser.UserID)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	ids := []uint{apps[0].ID, apps[1].ID}
	assert.ElementsMatch(t, []uint{first.ID, second.ID}, ids)
}
