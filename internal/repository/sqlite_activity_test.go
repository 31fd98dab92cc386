package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	act := testutil.NewTestActivity("Course à pied", testutil.WithWeeklyMinutes(90))
	require.NoError(t, repo.Create(ctx, act))

	fetched, err := repo.GetByID(ctx, act.ID)
	require.NoError(t, err)
	assert.Equal(t, act.ID, fetched.ID)
	assert.Equal(t, "Course à pied", fetched.Name)
	assert.Equal(t, 90, fetched.WeeklyMinutes)
	assert.Equal(t, "Sport", fetched.Category)
	assert.Equal(t, act.CreatedAt.Format(time.RFC3339), fetched.CreatedAt.Format(time.RFC3339))
}

func TestActivityRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestActivityRepo_List_OrderedByCreation(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	first := testutil.NewTestActivity("Lecture", testutil.WithCategory("Culture"))
	second := testutil.NewTestActivity("Piano", testutil.WithCategory("Musique"))
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	second.UpdatedAt = second.CreatedAt
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Lecture", list[0].Name)
	assert.Equal(t, "Piano", list[1].Name)
}

func TestActivityRepo_List_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestActivityRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	act := testutil.NewTestActivity("Natation")
	require.NoError(t, repo.Create(ctx, act))

	act.Name = "Natation en mer"
	act.WeeklyMinutes = 120
	act.UpdatedAt = act.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, act))

	fetched, err := repo.GetByID(ctx, act.ID)
	require.NoError(t, err)
	assert.Equal(t, "Natation en mer", fetched.Name)
	assert.Equal(t, 120, fetched.WeeklyMinutes)
}

func TestActivityRepo_Update_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)

	ghost := testutil.NewTestActivity("Fantôme")
	err := repo.Update(context.Background(), ghost)
	assert.True(t, errors.Is(err, domain.ErrActivityNotFound))
}

func TestActivityRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	act := testutil.NewTestActivity("Yoga")
	require.NoError(t, repo.Create(ctx, act))
	require.NoError(t, repo.Delete(ctx, act.ID))

	_, err := repo.GetByID(ctx, act.ID)
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, act.ID), domain.ErrActivityNotFound)
}
