package campaign

import (
	"context"
	"testing"
	"time"

	"academy/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestService(t *testing.T, start time.Time) (*Service, *fakeClock) {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db, &Campaign{}))

	clock := &fakeClock{now: start}
	return NewService(NewRepository(db)).WithClock(clock.Now), clock
}

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestCreate_Defaults(t *testing.T) {
	ctx := context.Background()
	svc, clock := newTestService(t, time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC))

	c, err := svc.Create(ctx, &CreateCampaignRequest{
		Text:      "Enrol now",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	}, "alice")
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, DefaultPriority, c.Priority)
	assert.True(t, c.IsActive)
	assert.Equal(t, DefaultBackgroundColor, c.BackgroundColor)
	assert.Equal(t, DefaultTextColor, c.TextColor)
	assert.Equal(t, "alice", c.CreatedBy)
	assert.True(t, clock.now.Equal(c.CreatedAt))
	assert.True(t, c.CreatedAt.Equal(c.UpdatedAt))
	assert.True(t, c.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, c.EndDate.Day())
	assert.Equal(t, 23, c.EndDate.Hour())
}

func TestCreate_ExplicitInactiveIsKept(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC))

	c, err := svc.Create(ctx, &CreateCampaignRequest{
		Text:      "Hidden",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		IsActive:  boolPtr(false),
		Priority:  intPtr(0),
	}, "alice")
	require.NoError(t, err)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, c.ID, all[0].ID)
	assert.False(t, all[0].IsActive)
	assert.Equal(t, 0, all[0].Priority)
}

func TestCreate_RejectsSameDayAndInvertedRanges(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC))

	cases := []struct{ start, end string }{
		{"2024-01-01", "2024-01-01"},
		{"2024-01-01T08:00:00Z", "2024-01-01T20:00:00Z"},
		{"2024-01-10", "2024-01-01"},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, &CreateCampaignRequest{Text: "x", StartDate: tc.start, EndDate: tc.end}, "alice")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "%s..%s", tc.start, tc.end)
		assert.Equal(t, "endDate", verr.Field)
	}

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreate_RejectsUnparseableDate(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	_, err := svc.Create(context.Background(), &CreateCampaignRequest{
		Text: "x", StartDate: "next tuesday", EndDate: "2024-01-31",
	}, "alice")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "startDate", verr.Field)
}

func TestUpdate_PriorityRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, clock := newTestService(t, time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC))

	created, err := svc.Create(ctx, &CreateCampaignRequest{
		Text: "Enrol now", StartDate: "2024-01-01", EndDate: "2024-01-31",
	}, "alice")
	require.NoError(t, err)

	clock.Advance(time.Minute)
	updated, err := svc.Update(ctx, created.ID, &UpdateCampaignRequest{Priority: intPtr(7)})
	require.NoError(t, err)

	assert.Equal(t, 7, updated.Priority)
	assert.Equal(t, created.Text, updated.Text)
	assert.True(t, created.StartDate.Equal(updated.StartDate))
	assert.True(t, created.EndDate.Equal(updated.EndDate))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 7, all[0].Priority)
	assert.True(t, all[0].UpdatedAt.After(created.UpdatedAt))
}

func TestUpdate_UpdatedAtAdvancesWithFrozenClock(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC))

	created, err := svc.Create(ctx, &CreateCampaignRequest{
		Text: "Enrol now", StartDate: "2024-01-01", EndDate: "2024-01-31",
	}, "alice")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &UpdateCampaignRequest{Text: strPtr("Enrol today")})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdate_ValidatesMergedWindow(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC))

	created, err := svc.Create(ctx, &CreateCampaignRequest{
		Text: "Enrol now", StartDate: "2024-01-01", EndDate: "2024-01-31",
	}, "alice")
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, &UpdateCampaignRequest{StartDate: strPtr("2024-01-31")})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	stored, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.True(t, stored[0].StartDate.Equal(created.StartDate), "rejected update must not be persisted")
}

func TestUpdate_NotFoundAndEmpty(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	_, err := svc.Update(context.Background(), "3f1f9a36-5a47-4a7b-9c55-8e9d2f3c1a10", &UpdateCampaignRequest{Priority: intPtr(2)})
	assert.ErrorIs(t, err, ErrCampaignNotFound)

	_, err = svc.Update(context.Background(), "3f1f9a36-5a47-4a7b-9c55-8e9d2f3c1a10", &UpdateCampaignRequest{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC))

	created, err := svc.Create(ctx, &CreateCampaignRequest{
		Text: "Enrol now", StartDate: "2024-01-01", EndDate: "2024-01-31",
	}, "alice")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrCampaignNotFound)
}

func TestGetActive(t *testing.T) {
	ctx := context.Background()
	svc, clock := newTestService(t, time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC))

	create := func(text string, priority int, start, end string) *Campaign {
		t.Helper()
		c, err := svc.Create(ctx, &CreateCampaignRequest{
			Text: text, Priority: intPtr(priority), StartDate: start, EndDate: end,
		}, "alice")
		require.NoError(t, err)
		clock.Advance(time.Second)
		return c
	}

	active, err := svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	create("old-high", 5, "2024-01-01", "2024-01-31")
	newHigh := create("new-high", 5, "2024-01-01", "2024-01-31")
	create("low", 1, "2024-01-01", "2024-01-31")
	create("future", 99, "2024-02-01", "2024-02-10")

	active, err = svc.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, newHigh.ID, active.ID)

	_, err = svc.Update(ctx, newHigh.ID, &UpdateCampaignRequest{IsActive: boolPtr(false)})
	require.NoError(t, err)

	active, err = svc.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "old-high", active.Text)

	clock.now = time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	active, err = svc.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "future", active.Text)

	clock.now = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	active, err = svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestCreate_CalendarDaysCompareInUTC(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC))

	// different local days, but both fall on 2024-01-02 in UTC
	_, err := svc.Create(ctx, &CreateCampaignRequest{
		Text: "x", StartDate: "2024-01-01T20:00:00-05:00", EndDate: "2024-01-02T10:00:00-05:00",
	}, "alice")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "endDate", verr.Field)

	c, err := svc.Create(ctx, &CreateCampaignRequest{
		Text: "x", StartDate: "2024-01-01T10:00:00-05:00", EndDate: "2024-01-02T10:00:00-05:00",
	}, "alice")
	require.NoError(t, err)
	assert.True(t, c.StartDate.Equal(time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, c.StartDate.Location())
}
