package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/hostile/internal/model"
)

// ErrProfileNotFound is returned when no hostile profile has the requested name.
var ErrProfileNotFound = errors.New("hostile profile not found")

const profileColumns = `
	name, variant, max_health, chase_range, stop_distance, attack_range,
	fire_cooldown_ms, aim_delay_ms, post_cue_delay_ms, laser_duration_ms, laser_grow_speed,
	turn_speed, fire_offset_x, fire_offset_y, fire_offset_z,
	blood_lifetime_ms, impact_lifetime_ms, target_tag,
	blood_effect, hit_effect, hurt_sound, death_sound, fire_sound`

// ProfileRepository loads hostile tuning templates (read-only).
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// LoadTemplate loads one profile by name
func (r *ProfileRepository) LoadTemplate(ctx context.Context, name string) (model.HostileTemplate, error) {
	query := `SELECT ` + profileColumns + ` FROM hostile_profiles WHERE name = $1`

	tmpl, err := scanTemplate(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.HostileTemplate{}, fmt.Errorf("loading hostile profile %q: %w", name, ErrProfileNotFound)
		}
		return model.HostileTemplate{}, fmt.Errorf("loading hostile profile %q: %w", name, err)
	}
	return tmpl, nil
}

// LoadAllTemplates loads every profile ordered by name
func (r *ProfileRepository) LoadAllTemplates(ctx context.Context) ([]model.HostileTemplate, error) {
	query := `SELECT ` + profileColumns + ` FROM hostile_profiles ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading all hostile profiles: %w", err)
	}
	defer rows.Close()

	var templates []model.HostileTemplate
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning hostile profile row: %w", err)
		}
		templates = append(templates, tmpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hostile profiles: %w", err)
	}

	return templates, nil
}

func scanTemplate(row pgx.Row) (model.HostileTemplate, error) {
	var (
		t        model.HostileTemplate
		variant  string
		cooldown int64
		aim      int64
		postCue  int64
		laser    int64
		blood    int64
		impact   int64
	)

	err := row.Scan(
		&t.Name, &variant, &t.MaxHealth, &t.ChaseRange, &t.StopDistance, &t.AttackRange,
		&cooldown, &aim, &postCue, &laser, &t.LaserGrowSpeed,
		&t.TurnSpeed, &t.FireOffset.X, &t.FireOffset.Y, &t.FireOffset.Z,
		&blood, &impact, &t.TargetTag,
		&t.Assets.BloodEffect, &t.Assets.HitEffect, &t.Assets.HurtSound, &t.Assets.DeathSound, &t.Assets.FireSound,
	)
	if err != nil {
		return model.HostileTemplate{}, err
	}

	v, ok := model.ParseVariant(variant)
	if !ok {
		return model.HostileTemplate{}, fmt.Errorf("profile %q: unknown variant %q", t.Name, variant)
	}
	t.Variant = v
	t.FireCooldown = time.Duration(cooldown) * time.Millisecond
	t.AimDelay = time.Duration(aim) * time.Millisecond
	t.PostCueDelay = time.Duration(postCue) * time.Millisecond
	t.LaserDuration = time.Duration(laser) * time.Millisecond
	t.BloodLifetime = time.Duration(blood) * time.Millisecond
	t.ImpactLifetime = time.Duration(impact) * time.Millisecond

	return t, nil
}

// UpsertTemplate inserts or replaces a profile keyed by name.
func (r *ProfileRepository) UpsertTemplate(ctx context.Context, t model.HostileTemplate) error {
	query := `INSERT INTO hostile_profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (name) DO UPDATE SET
			variant = EXCLUDED.variant,
			max_health = EXCLUDED.max_health,
			chase_range = EXCLUDED.chase_range,
			stop_distance = EXCLUDED.stop_distance,
			attack_range = EXCLUDED.attack_range,
			fire_cooldown_ms = EXCLUDED.fire_cooldown_ms,
			aim_delay_ms = EXCLUDED.aim_delay_ms,
			post_cue_delay_ms = EXCLUDED.post_cue_delay_ms,
			laser_duration_ms = EXCLUDED.laser_duration_ms,
			laser_grow_speed = EXCLUDED.laser_grow_speed,
			turn_speed = EXCLUDED.turn_speed,
			fire_offset_x = EXCLUDED.fire_offset_x,
			fire_offset_y = EXCLUDED.fire_offset_y,
			fire_offset_z = EXCLUDED.fire_offset_z,
			blood_lifetime_ms = EXCLUDED.blood_lifetime_ms,
			impact_lifetime_ms = EXCLUDED.impact_lifetime_ms,
			target_tag = EXCLUDED.target_tag,
			blood_effect = EXCLUDED.blood_effect,
			hit_effect = EXCLUDED.hit_effect,
			hurt_sound = EXCLUDED.hurt_sound,
			death_sound = EXCLUDED.death_sound,
			fire_sound = EXCLUDED.fire_sound`

	_, err := r.pool.Exec(ctx, query,
		t.Name, t.Variant.String(), t.MaxHealth, t.ChaseRange, t.StopDistance, t.AttackRange,
		t.FireCooldown.Milliseconds(), t.AimDelay.Milliseconds(), t.PostCueDelay.Milliseconds(),
		t.LaserDuration.Milliseconds(), t.LaserGrowSpeed,
		t.TurnSpeed, t.FireOffset.X, t.FireOffset.Y, t.FireOffset.Z,
		t.BloodLifetime.Milliseconds(), t.ImpactLifetime.Milliseconds(), t.TargetTag,
		t.Assets.BloodEffect, t.Assets.HitEffect, t.Assets.HurtSound, t.Assets.DeathSound, t.Assets.FireSound,
	)
	if err != nil {
		return fmt.Errorf("upserting hostile profile %q: %w", t.Name, err)
	}
	return nil
}
