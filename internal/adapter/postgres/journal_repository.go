package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"training-courses/internal/core/domain"
	"training-courses/internal/core/port"
)

// JournalRepository implements port.RunJournal using pgxpool for PostgreSQL.
type JournalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository returns a new repository instance.
func NewJournalRepository(pool *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{pool: pool}
}

// Record stores a run and its campaigns in one transaction.
func (r *JournalRepository) Record(ctx context.Context, run domain.TrainingRun) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	trainees := run.Trainees
	if trainees == nil {
		trainees = []string{}
	}
	_, err = tx.Exec(ctx, `INSERT INTO training_runs
    (id, scenario, campaign_label, organisation_unit_id, reference_date, trainees, requester, success, message, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		run.ID, run.Scenario, run.CampaignLabel, run.OrganisationUnitID, run.ReferenceDate,
		trainees, run.Requester, run.Success, run.Message, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	if len(run.Campaigns) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, c := range run.Campaigns {
		batch.Queue(`INSERT INTO training_run_campaigns (run_id, position, template_id, campaign_id, status)
VALUES ($1,$2,$3,$4,$5)`, run.ID, i, c.TemplateID, c.CampaignID, string(c.Status))
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert campaigns of run %s: %w", run.ID, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first, with their campaigns.
func (r *JournalRepository) ListRuns(ctx context.Context, limit int) ([]domain.TrainingRun, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, scenario, campaign_label, organisation_unit_id, reference_date,
               trainees, requester, success, message, created_at
        FROM training_runs
        ORDER BY created_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	runs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TrainingRun, error) {
		var run domain.TrainingRun
		err := row.Scan(
			&run.ID,
			&run.Scenario,
			&run.CampaignLabel,
			&run.OrganisationUnitID,
			&run.ReferenceDate,
			&run.Trainees,
			&run.Requester,
			&run.Success,
			&run.Message,
			&run.CreatedAt,
		)
		return run, err
	})
	if err != nil || len(runs) == 0 {
		return runs, err
	}

	ids := make([]string, len(runs))
	index := make(map[string]int, len(runs))
	for i, run := range runs {
		ids[i] = run.ID
		index[run.ID] = i
	}
	rows, err = r.pool.Query(ctx, `
        SELECT run_id, template_id, campaign_id, status
        FROM training_run_campaigns
        WHERE run_id = ANY($1::uuid[])
        ORDER BY run_id, position`, ids)
	if err != nil {
		return nil, err
	}
	type campaignRow struct {
		RunID string
		domain.RunCampaign
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (campaignRow, error) {
		var c campaignRow
		err := row.Scan(&c.RunID, &c.TemplateID, &c.CampaignID, &c.Status)
		return c, err
	})
	if err != nil {
		return nil, err
	}
	for _, c := range campaigns {
		i := index[c.RunID]
		runs[i].Campaigns = append(runs[i].Campaigns, c.RunCampaign)
	}
	return runs, nil
}

var _ port.RunJournal = (*JournalRepository)(nil)
