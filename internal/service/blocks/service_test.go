package blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeevlv/barber-booking-service/internal/domain"
	blockRepo "github.com/avdeevlv/barber-booking-service/internal/infra/storage/block"
	"github.com/avdeevlv/barber-booking-service/internal/integrations/identity"
	"github.com/avdeevlv/barber-booking-service/internal/service/blocks/models"
	"github.com/avdeevlv/barber-booking-service/pkg/ptr"
)

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

type fakeRepo struct {
	created   *domain.AdHocBlock
	byDate    []*domain.AdHocBlock
	byPeriod  []*domain.AdHocBlock
	deleteErr error
	deletedID int64
}

func (r *fakeRepo) Create(_ context.Context, block *domain.AdHocBlock) (*domain.AdHocBlock, error) {
	saved := *block
	saved.ID = 5
	r.created = &saved
	return &saved, nil
}

func (r *fakeRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.AdHocBlock, error) {
	return r.byDate, nil
}

func (r *fakeRepo) GetByPeriod(_ context.Context, _, _ time.Time) ([]*domain.AdHocBlock, error) {
	return r.byPeriod, nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deletedID = id
	return nil
}

type fakeIdentity struct {
	users map[int64]*identity.User
}

func (c *fakeIdentity) GetUser(_ context.Context, userID int64) (*identity.User, error) {
	user, ok := c.users[userID]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	return user, nil
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRepo) *Service {
	users := map[int64]*identity.User{
		1:  {ID: 1, Name: "Barber", Role: identity.RoleAdmin},
		10: {ID: 10, Name: "Carlos", Role: identity.RoleClient},
	}
	return NewService(repo, &fakeIdentity{users: users}, &nopLogger{})
}

func TestCreate_FullDay(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), &models.CreateBlockRequest{
		UserID: 1,
		Date:   testDate,
		Reason: ptr.Ptr("отпуск"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.BlockFullDay), resp.Kind)
	assert.Nil(t, resp.StartTime)
	assert.Equal(t, int64(1), repo.created.CreatedBy)
}

func TestCreate_Range(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), &models.CreateBlockRequest{
		UserID:    1,
		Date:      testDate,
		StartTime: ptr.Ptr("10:00"),
		EndTime:   ptr.Ptr("12:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.BlockRange), resp.Kind)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, "10:00", *resp.StartTime)
	require.NotNil(t, resp.EndTime)
	assert.Equal(t, "12:00", *resp.EndTime)
}

func TestCreate_NonAdminDenied(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.Create(context.Background(), &models.CreateBlockRequest{UserID: 10, Date: testDate})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	tests := []struct {
		name string
		req  *models.CreateBlockRequest
	}{
		{"zero date", &models.CreateBlockRequest{UserID: 1}},
		{"only start time", &models.CreateBlockRequest{UserID: 1, Date: testDate, StartTime: ptr.Ptr("10:00")}},
		{"only end time", &models.CreateBlockRequest{UserID: 1, Date: testDate, EndTime: ptr.Ptr("12:00")}},
		{"start equals end", &models.CreateBlockRequest{UserID: 1, Date: testDate, StartTime: ptr.Ptr("10:00"), EndTime: ptr.Ptr("10:00")}},
		{"start after end", &models.CreateBlockRequest{UserID: 1, Date: testDate, StartTime: ptr.Ptr("12:00"), EndTime: ptr.Ptr("10:00")}},
		{"bad start format", &models.CreateBlockRequest{UserID: 1, Date: testDate, StartTime: ptr.Ptr("10am"), EndTime: ptr.Ptr("12:00")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestList_ByDate(t *testing.T) {
	repo := &fakeRepo{byDate: []*domain.AdHocBlock{{ID: 1, Date: testDate, Kind: domain.BlockFullDay}}}
	svc := newTestService(repo)

	resp, err := svc.List(context.Background(), &models.ListBlocksRequest{UserID: 1, Date: &testDate})
	require.NoError(t, err)
	assert.Len(t, resp.Blocks, 1)
}

func TestList_ByPeriod(t *testing.T) {
	repo := &fakeRepo{byPeriod: []*domain.AdHocBlock{{ID: 1, Date: testDate, Kind: domain.BlockFullDay}}}
	svc := newTestService(repo)

	end := testDate.AddDate(0, 0, 7)
	resp, err := svc.List(context.Background(), &models.ListBlocksRequest{
		UserID:    1,
		StartDate: &testDate,
		EndDate:   &end,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Blocks, 1)
}

func TestList_InvalidPeriod(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	before := testDate.AddDate(0, 0, -7)
	_, err := svc.List(context.Background(), &models.ListBlocksRequest{
		UserID:    1,
		StartDate: &testDate,
		EndDate:   &before,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Ни даты, ни периода
	_, err = svc.List(context.Background(), &models.ListBlocksRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 5, &models.DeleteBlockRequest{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(5), repo.deletedID)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeRepo{deleteErr: blockRepo.ErrBlockNotFound}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 99, &models.DeleteBlockRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestDelete_NonAdminDenied(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	err := svc.Delete(context.Background(), 5, &models.DeleteBlockRequest{UserID: 10})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
