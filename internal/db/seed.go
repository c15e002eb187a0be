package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"kwai-ads/internal/core/domain"
)

// DemoUserID owns the seeded accounts and rules.
var DemoUserID = uuid.MustParse("00000000-0000-4000-8000-000000000001")

// Seed inserts a demo user with linked accounts and one rule per action
// kind. It is idempotent.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	accounts := []int64{1001, 1002}
	for _, acc := range accounts {
		_, err := db.Exec(ctx, `INSERT INTO user_accounts (user_id, account_id)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, DemoUserID, acc)
		if err != nil {
			return err
		}
	}

	rules := []struct {
		event     domain.Event
		condition domain.Condition
		threshold float64
		action    domain.Action
	}{
		{domain.EventCPA, domain.ConditionGreaterThan, 25, domain.Action{Kind: domain.ActionDecreaseBid, Magnitude: 10}},
		{domain.EventPurchase, domain.ConditionGreaterThan, 20, domain.Action{Kind: domain.ActionIncreaseBid, Magnitude: 15}},
		{domain.EventCPA, domain.ConditionGreaterThan, 60, domain.Action{Kind: domain.ActionPause}},
		{domain.EventRegistration, domain.ConditionLessThan, 1, domain.Action{Kind: domain.ActionPauseAndDuplicate, Magnitude: 2}},
	}
	for i, r := range rules {
		// deterministic ids keep the seed idempotent
		id := uuid.NewSHA1(DemoUserID, []byte(fmt.Sprintf("rule-%d", i)))
		_, err := db.Exec(ctx, `INSERT INTO automations
    (id, user_id, title, account_id, campaign_id, event, comparator, threshold, action_kind, action_magnitude)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) ON CONFLICT DO NOTHING`,
			id, DemoUserID, fmt.Sprintf("Demo rule %d: %s %s", i+1, r.action.Kind, r.event),
			accounts[i%len(accounts)], int64(5000+i), r.event, r.condition, r.threshold, r.action.Kind, r.action.Magnitude)
		if err != nil {
			return err
		}
	}
	return nil
}
