package decisions

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/arbiter/internal/prompts"
	"github.com/JaimeStill/arbiter/internal/workflow"
	"github.com/JaimeStill/arbiter/pkg/pagination"
	"github.com/JaimeStill/arbiter/pkg/query"
	"github.com/JaimeStill/arbiter/pkg/repository"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const decisionColumns = `id, created_at, ai_output, task_context, policy_mode,
		verdict, confidence, risk_flags, explanation, recommended_action,
		model_name, provider_name, human_action, human_notes`

type repo struct {
	db         *sql.DB
	rt         *workflow.Runtime
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a decision repository implementing the System interface.
// It internally constructs the workflow runtime from the provided dependencies.
func New(
	db *sql.DB,
	agent gaconfig.AgentConfig,
	logger *slog.Logger,
	pagination pagination.Config,
	prompts prompts.System,
) System {
	rt := &workflow.Runtime{
		Agent:   agent,
		Prompts: prompts,
		Logger:  logger.With("workflow", "evaluate"),
	}
	return &repo{
		db:         db,
		rt:         rt,
		logger:     logger.With("system", "decisions"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) Evaluate(ctx context.Context, cmd EvaluateCommand) (*Decision, error) {
	mode, err := normalizeCommand(&cmd)
	if err != nil {
		return nil, err
	}

	result, err := workflow.Execute(ctx, r.rt, workflow.Request{
		AIOutput:        cmd.AIOutput,
		TaskContext:     cmd.TaskContext,
		PolicyDirective: mode.Directive(),
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate output: %w", err)
	}

	flagsJSON, err := json.Marshal(result.Outcome.RiskFlags)
	if err != nil {
		return nil, fmt.Errorf("marshal risk_flags: %w", err)
	}

	insertQ := `
		INSERT INTO decisions(
			ai_output, task_context, policy_mode, verdict, confidence,
			risk_flags, explanation, recommended_action, model_name, provider_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + decisionColumns

	insertArgs := []any{
		cmd.AIOutput,
		cmd.TaskContext,
		mode,
		result.Outcome.Verdict,
		result.Outcome.Confidence,
		flagsJSON,
		result.Outcome.Explanation,
		result.Outcome.RecommendedAction,
		result.ModelName,
		result.ProviderName,
	}

	d, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Decision, error) {
		return repository.QueryOne(ctx, tx, insertQ, insertArgs, scanDecision)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("output evaluated",
		"id", d.ID,
		"policy_mode", d.PolicyMode,
		"verdict", d.Verdict,
		"confidence", d.Confidence,
		"fallback", result.Outcome.Fallback,
	)
	return &d, nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Decision], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "AIOutput", "TaskContext", "Explanation")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count decisions: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDecision)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int64) (*Decision, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDecision)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &d, nil
}

func (r *repo) Recent(ctx context.Context, limit int) ([]Decision, error) {
	if limit < 1 || limit > r.pagination.MaxPageSize {
		limit = r.pagination.DefaultPageSize
	}

	q, args := query.
		NewBuilder(projection, defaultSort).
		BuildPage(1, limit)

	items, err := repository.QueryMany(ctx, r.db, q, args, scanDecision)
	if err != nil {
		return nil, fmt.Errorf("query recent decisions: %w", err)
	}
	return items, nil
}

func (r *repo) Dispose(ctx context.Context, id int64, cmd DisposeCommand) (*Decision, error) {
	if _, err := ParseAction(string(cmd.Action)); err != nil {
		return nil, err
	}

	notes := cmd.Action.DefaultNotes()
	if cmd.Notes != nil && strings.TrimSpace(*cmd.Notes) != "" {
		notes = *cmd.Notes
	}

	updateQ := `
		UPDATE decisions
		SET human_action = $1, human_notes = $2
		WHERE id = $3
		RETURNING ` + decisionColumns

	d, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Decision, error) {
		dec, err := repository.QueryOne(ctx, tx, updateQ, []any{cmd.Action, notes, id}, scanDecision)
		if err != nil {
			return Decision{}, err
		}

		_, err = tx.ExecContext(
			ctx,
			"INSERT INTO dispositions(decision_id, action, notes) VALUES ($1, $2, $3)",
			id, cmd.Action, notes,
		)
		if err != nil {
			return Decision{}, fmt.Errorf("append disposition: %w", err)
		}

		return dec, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("decision disposed",
		"id", d.ID,
		"action", cmd.Action,
	)
	return &d, nil
}

func (r *repo) Dispositions(ctx context.Context, id int64) ([]Disposition, error) {
	if _, err := r.Find(ctx, id); err != nil {
		return nil, err
	}

	decisionID := id
	q, args := query.
		NewBuilder(dispositionProjection, dispositionSort).
		WhereEquals("DecisionID", &decisionID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanDisposition)
	if err != nil {
		return nil, fmt.Errorf("query dispositions: %w", err)
	}

	if items == nil {
		items = []Disposition{}
	}
	return items, nil
}

func normalizeCommand(cmd *EvaluateCommand) (Mode, error) {
	if strings.TrimSpace(cmd.AIOutput) == "" || strings.TrimSpace(cmd.TaskContext) == "" {
		return "", ErrEmptyInput
	}

	if cmd.PolicyMode == "" {
		cmd.PolicyMode = ModeBalanced
	}

	return ParseMode(string(cmd.PolicyMode))
}
