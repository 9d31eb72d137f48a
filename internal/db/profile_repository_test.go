package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/hostile/internal/db"
	"github.com/udisondev/hostile/internal/model"
	"github.com/udisondev/hostile/internal/testutil"
)

func TestProfileRepository_UpsertAndLoad(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewProfileRepository(pool)
	ctx := context.Background()

	drone := model.DefaultHostileTemplate()
	drone.Assets.FireSound = "laser_fire"
	require.NoError(t, repo.UpsertTemplate(ctx, drone))

	got, err := repo.LoadTemplate(ctx, drone.Name)
	require.NoError(t, err)
	assert.Equal(t, drone, got)

	drone.FireCooldown = 3 * time.Second
	drone.AttackRange = 9
	require.NoError(t, repo.UpsertTemplate(ctx, drone))

	got, err = repo.LoadTemplate(ctx, drone.Name)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, got.FireCooldown)
	assert.InDelta(t, 9.0, got.AttackRange, 1e-9)
}

func TestProfileRepository_LoadAllTemplates(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewProfileRepository(pool)
	ctx := context.Background()

	grunt := model.DefaultHostileTemplate()
	grunt.Name = "grunt"
	grunt.Variant = model.VariantMelee
	require.NoError(t, repo.UpsertTemplate(ctx, grunt))
	require.NoError(t, repo.UpsertTemplate(ctx, model.DefaultHostileTemplate()))

	all, err := repo.LoadAllTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "grunt", all[0].Name)
	assert.Equal(t, model.VariantMelee, all[0].Variant)
	assert.Equal(t, "laser_drone", all[1].Name)
}

func TestProfileRepository_NotFound(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewProfileRepository(pool)

	_, err := repo.LoadTemplate(context.Background(), "missing")
	require.ErrorIs(t, err, db.ErrProfileNotFound)
}
