//go:build integration

package postgres

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"kwai-ads/internal/config/configs"
	"kwai-ads/internal/core/domain"
	"kwai-ads/internal/db"
)

func setupPostgres(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "kwai_ads",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	addr, err := url.Parse(fmt.Sprintf("postgres://postgres:password@%s:%s/kwai_ads?sslmode=disable", host, port.Port()))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr.String()))

	pool, err := db.NewPostgresPool(ctx, configs.Postgres{Addr: *addr})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func newStoredRule(t *testing.T, repo *AutomationRepository, userID uuid.UUID, accountID int64) domain.AutomationRule {
	rule := domain.AutomationRule{
		Title:      "pause expensive sets",
		UserID:     userID,
		AccountID:  accountID,
		CampaignID: 77,
		Event:      domain.EventCPA,
		Condition:  domain.ConditionGreaterThan,
		Threshold:  20,
		Action:     domain.Action{Kind: domain.ActionPause},
	}
	require.NoError(t, repo.Create(context.Background(), &rule))
	return rule
}

func dueIDs(t *testing.T, repo *AutomationRepository, now time.Time) []uuid.UUID {
	rules, err := repo.ListDue(context.Background(), now)
	require.NoError(t, err)
	ids := make([]uuid.UUID, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestSchedulingLifecycle(t *testing.T) {
	pool := setupPostgres(t)
	repo := NewAutomationRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	rule := newStoredRule(t, repo, uuid.New(), 1001)
	assert.Contains(t, dueIDs(t, repo, now), rule.ID, "new rules are due immediately")

	next := now.Add(5 * time.Minute)
	require.NoError(t, repo.Reschedule(ctx, rule.ID, next, now))
	assert.NotContains(t, dueIDs(t, repo, now), rule.ID)

	stored, err := repo.Get(ctx, rule.ID, rule.UserID)
	require.NoError(t, err)
	assert.True(t, stored.HasRun)
	require.NotNil(t, stored.NextRunAt)
	assert.True(t, next.Equal(*stored.NextRunAt))

	// before the window elapses nothing is re-armed
	n, err := repo.RearmElapsed(ctx, now.Add(4*time.Minute))
	require.NoError(t, err)
	assert.Zero(t, n)

	later := now.Add(5 * time.Minute)
	n, err = repo.RearmElapsed(ctx, later)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Contains(t, dueIDs(t, repo, later), rule.ID)
}

func TestMarkFailedKeepsRuleDue(t *testing.T) {
	pool := setupPostgres(t)
	repo := NewAutomationRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC()

	rule := newStoredRule(t, repo, uuid.New(), 1001)
	require.NoError(t, repo.MarkFailed(ctx, rule.ID, "kwai query units: status 400", now))

	assert.Contains(t, dueIDs(t, repo, now), rule.ID)
	stored, err := repo.Get(ctx, rule.ID, rule.UserID)
	require.NoError(t, err)
	assert.Equal(t, "kwai query units: status 400", stored.LastError)
}

func TestOwnershipScoping(t *testing.T) {
	pool := setupPostgres(t)
	repo := NewAutomationRepository(pool)
	accounts := NewAccountRepository(pool)
	ctx := context.Background()

	owner, stranger := uuid.New(), uuid.New()
	require.NoError(t, accounts.LinkAccount(ctx, owner, 1001))
	linked, err := accounts.LinkedAccounts(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, []int64{1001}, linked)

	kept := newStoredRule(t, repo, owner, 1001)
	newStoredRule(t, repo, owner, 2002)

	rules, err := repo.ListByUser(ctx, owner, linked)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, kept.ID, rules[0].ID)

	_, err = repo.Get(ctx, kept.ID, stranger)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, kept.ID, stranger), domain.ErrNotFound)
	require.NoError(t, repo.Delete(ctx, kept.ID, owner))
}

func TestExecutionLog(t *testing.T) {
	pool := setupPostgres(t)
	repo := NewAutomationRepository(pool)
	ctx := context.Background()

	rule := newStoredRule(t, repo, uuid.New(), 1001)
	value := 31.5
	for unit := int64(1); unit <= 3; unit++ {
		exec := &domain.Execution{AutomationID: rule.ID, UnitID: unit, Event: rule.Event, Value: &value, Satisfied: true, Action: domain.ActionPause}
		require.NoError(t, repo.RecordExecution(ctx, exec))
		assert.NotZero(t, exec.ID)
	}

	execs, err := repo.ListExecutions(ctx, rule.ID, rule.UserID, 2)
	require.NoError(t, err)
	assert.Len(t, execs, 2)

	execs, err = repo.ListExecutions(ctx, rule.ID, uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, execs)
}
