package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CatchCup_Go/internal/database/generated"
	"github.com/osse101/CatchCup_Go/internal/domain"
)

// TeamRepository implements repository.Team and repository.Setup for PostgreSQL
type TeamRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

func (r *TeamRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.q.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	teams := make([]domain.Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, *mapTeam(row))
	}
	return teams, nil
}

func (r *TeamRepository) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	return getTeam(ctx, r.q, id)
}

func (r *TeamRepository) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	row, err := r.q.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return mapMember(row), nil
}

func (r *TeamRepository) ListMembersByTeam(ctx context.Context, teamID int64) ([]domain.Member, error) {
	rows, err := r.q.ListMembersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	members := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, *mapMember(row))
	}
	return members, nil
}

// GetTeamStandings returns one row per team, already in scoreboard order
func (r *TeamRepository) GetTeamStandings(ctx context.Context) ([]domain.TeamStanding, error) {
	rows, err := r.q.GetTeamStandings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get team standings: %w", err)
	}
	standings := make([]domain.TeamStanding, 0, len(rows))
	for _, row := range rows {
		standings = append(standings, domain.TeamStanding{
			TeamID:            row.TeamID,
			TeamName:          row.Name,
			VotingWins:        row.VotingWins,
			TotalPoints:       row.TotalPoints,
			CatchCount:        row.CatchCount,
			BiggestCatchGrams: row.BiggestCatchGrams,
			Drinks:            row.Drinks,
		})
	}
	return standings, nil
}

func (r *TeamRepository) CreateDrinkEntry(ctx context.Context, d *domain.DrinkEntry) error {
	row, err := r.q.CreateDrinkEntry(ctx, generated.CreateDrinkEntryParams{
		MemberID:   d.MemberID,
		TeamID:     d.TeamID,
		DrinkCount: d.Count,
		DrinkDay:   dayToDate(d.Day),
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: unknown member or team", domain.ErrInvalidInput)
		}
		return fmt.Errorf("failed to create drink entry: %w", err)
	}
	d.ID = row.DrinkEntryID
	d.CreatedAt = row.CreatedAt.Time
	return nil
}

func (r *TeamRepository) ListDrinksByDay(ctx context.Context, day domain.VotingDay) ([]domain.DrinkEntry, error) {
	rows, err := r.q.ListDrinksByDay(ctx, dayToDate(day))
	if err != nil {
		return nil, fmt.Errorf("failed to list drinks: %w", err)
	}
	entries := make([]domain.DrinkEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.DrinkEntry{
			ID:        row.DrinkEntryID,
			MemberID:  row.MemberID,
			TeamID:    row.TeamID,
			Count:     row.DrinkCount,
			Day:       dateToDay(row.DrinkDay),
			CreatedAt: row.CreatedAt.Time,
		})
	}
	return entries, nil
}

// UpsertFishType inserts a species or updates its coefficient
func (r *TeamRepository) UpsertFishType(ctx context.Context, name string, coefficient float64) (*domain.FishType, error) {
	row, err := r.q.UpsertFishType(ctx, generated.UpsertFishTypeParams{Name: name, Coefficient: coefficient})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert fish type %q: %w", name, err)
	}
	return mapFishType(row), nil
}

// UpsertTeam returns the existing team with this name or creates it
func (r *TeamRepository) UpsertTeam(ctx context.Context, name string) (*domain.Team, error) {
	row, err := r.q.UpsertTeam(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert team %q: %w", name, err)
	}
	return mapTeam(row), nil
}

// UpsertMember creates the member or moves it to teamID
func (r *TeamRepository) UpsertMember(ctx context.Context, username string, teamID int64) (*domain.Member, error) {
	row, err := r.q.UpsertMember(ctx, generated.UpsertMemberParams{Username: username, TeamID: teamID})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert member %q: %w", username, err)
	}
	return mapMember(row), nil
}
