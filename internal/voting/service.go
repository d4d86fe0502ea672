package voting

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/event"
	"github.com/osse101/CatchCup_Go/internal/logger"
	"github.com/osse101/CatchCup_Go/internal/metrics"
	"github.com/osse101/CatchCup_Go/internal/repository"
)

// Service is the daily voting aggregator plus its vote ingestion path
type Service interface {
	// OpenDay is the day currently accepting votes
	OpenDay() domain.VotingDay

	TallyVotes(ctx context.Context, day domain.VotingDay) (domain.Tally, error)
	FinalizeDay(ctx context.Context, day domain.VotingDay) (*domain.VotingResult, error)
	FinalizePending(ctx context.Context) (*domain.FinalizeReport, error)

	CastVote(ctx context.Context, req CastVoteRequest) (*domain.Vote, error)
	GetVoteStatus(ctx context.Context, voterAddress string, day domain.VotingDay) (*VoteStatus, error)

	GetResult(ctx context.Context, day domain.VotingDay) (*domain.VotingResult, error)
	ListResults(ctx context.Context, limit int) ([]domain.VotingResult, error)
}

// Options configures the contest calendar
type Options struct {
	Location  *time.Location
	DayOffset int
	VoterSalt string
	Now       func() time.Time
}

// CastVoteRequest is a single ballot. A zero Day means the open day.
type CastVoteRequest struct {
	CatchID      int64
	VoterAddress string
	Day          domain.VotingDay
}

// VoteStatus tells a voter whether they already voted on Day
type VoteStatus struct {
	Day      domain.VotingDay `json:"day"`
	HasVoted bool             `json:"has_voted"`
	CatchID  *int64           `json:"catch_id,omitempty"`
}

type service struct {
	repo      repository.Voting
	bus       event.Bus
	loc       *time.Location
	dayOffset int
	salt      string
	now       func() time.Time
}

// NewService creates a new voting service. bus may be nil.
func NewService(repo repository.Voting, bus event.Bus, opts Options) Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DayOffset < 0 {
		opts.DayOffset = 0
	}
	return &service{
		repo:      repo,
		bus:       bus,
		loc:       opts.Location,
		dayOffset: opts.DayOffset,
		salt:      opts.VoterSalt,
		now:       opts.Now,
	}
}

// OpenDayAt returns today in loc minus offset days
func OpenDayAt(now time.Time, loc *time.Location, offset int) domain.VotingDay {
	return domain.VotingDayOf(now, loc).AddDays(-offset)
}

func (s *service) OpenDay() domain.VotingDay {
	return OpenDayAt(s.now(), s.loc, s.dayOffset)
}

func (s *service) TallyVotes(ctx context.Context, day domain.VotingDay) (domain.Tally, error) {
	if day.IsZero() {
		return nil, fmt.Errorf("%w: day is required", domain.ErrInvalidInput)
	}
	return s.repo.TallyVotes(ctx, day)
}

// FinalizeDay closes a voting day: it records the winning catch and adds one
// win to its team. Concurrent and repeated calls for the same day produce a
// single result; the losers get domain.ErrAlreadyProcessed.
func (s *service) FinalizeDay(ctx context.Context, day domain.VotingDay) (*domain.VotingResult, error) {
	ctx = logger.WithAttrs(ctx, "day", day.String())
	log := logger.FromContext(ctx)
	start := time.Now()

	result, teamName, total, err := s.finalize(ctx, day)
	metrics.VotingFinalizeDuration.Observe(time.Since(start).Seconds())
	metrics.VotingFinalizations.WithLabelValues(finalizeOutcome(err)).Inc()
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgDayFinalized,
		"catch_id", result.CatchID,
		"team_id", result.TeamID,
		"votes", result.VoteCount,
		"total_votes", total)

	s.publish(ctx, event.NewVotingDayFinalizedEvent(*result, teamName, total, SourceFromContext(ctx)))
	return result, nil
}

func (s *service) finalize(ctx context.Context, day domain.VotingDay) (*domain.VotingResult, string, int64, error) {
	if day.IsZero() {
		return nil, "", 0, fmt.Errorf("%w: day is required", domain.ErrInvalidInput)
	}
	if open := s.OpenDay(); !day.Before(open) {
		return nil, "", 0, fmt.Errorf("%w: %s (open day is %s)", domain.ErrDayStillOpen, day, open)
	}

	tx, err := s.repo.BeginFinalizeTx(ctx, day)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to begin finalize transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	exists, err := tx.ResultExists(ctx, day)
	if err != nil {
		return nil, "", 0, err
	}
	if exists {
		return nil, "", 0, fmt.Errorf("%w: %s", domain.ErrAlreadyProcessed, day)
	}

	tally, err := tx.TallyVotes(ctx, day)
	if err != nil {
		return nil, "", 0, err
	}
	catchID, count, ok := SelectWinner(tally)
	if !ok {
		return nil, "", 0, fmt.Errorf("%w: %s", domain.ErrNoVotes, day)
	}

	winner, err := tx.GetCatch(ctx, catchID)
	if err != nil {
		return nil, "", 0, err
	}
	if winner == nil {
		return nil, "", 0, fmt.Errorf("%w: winning catch %d", domain.ErrCatchNotFound, catchID)
	}

	result := &domain.VotingResult{
		CatchID:   catchID,
		TeamID:    winner.TeamID,
		VoteCount: count,
		Day:       day,
	}
	inserted, err := tx.InsertResultIfAbsent(ctx, result)
	if err != nil {
		return nil, "", 0, err
	}
	if !inserted {
		return nil, "", 0, fmt.Errorf("%w: %s", domain.ErrAlreadyProcessed, day)
	}

	if err := tx.IncrementTeamWins(ctx, winner.TeamID); err != nil {
		return nil, "", 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, "", 0, fmt.Errorf("failed to commit voting result: %w", err)
	}
	return result, winner.TeamName, tally.Total(), nil
}

// FinalizePending finalizes every elapsed day that has votes but no result,
// oldest first. Per-day failures are logged and recorded in the report; only
// a failure to list pending days or a cancelled context ends the sweep early.
func (s *service) FinalizePending(ctx context.Context) (*domain.FinalizeReport, error) {
	log := logger.FromContext(ctx)
	open := s.OpenDay()

	days, err := s.repo.ListPendingDays(ctx, open)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending voting days: %w", err)
	}
	slices.SortFunc(days, func(a, b domain.VotingDay) int {
		return a.Time().Compare(b.Time())
	})

	log.Info(LogMsgSweepStarted, "open_day", open.String(), "pending", len(days))

	report := &domain.FinalizeReport{
		Finalized:        []domain.VotingResult{},
		AlreadyProcessed: []domain.VotingDay{},
		NoVotes:          []domain.VotingDay{},
		Failed:           map[domain.VotingDay]string{},
	}

	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		dayCtx, cancel := context.WithTimeout(ctx, FinalizeTimeout)
		result, err := s.FinalizeDay(dayCtx, day)
		cancel()

		switch {
		case err == nil:
			report.Finalized = append(report.Finalized, *result)
		case errors.Is(err, domain.ErrAlreadyProcessed):
			log.Info(LogMsgDayAlreadyProcessed, "day", day.String())
			report.AlreadyProcessed = append(report.AlreadyProcessed, day)
		case errors.Is(err, domain.ErrNoVotes):
			log.Info(LogMsgDayNoVotes, "day", day.String())
			report.NoVotes = append(report.NoVotes, day)
		default:
			log.Error(LogMsgDayFinalizeFailed, "day", day.String(), "error", err)
			report.Failed[day] = err.Error()
		}
	}

	log.Info(LogMsgSweepComplete,
		"finalized", len(report.Finalized),
		"already_processed", len(report.AlreadyProcessed),
		"no_votes", len(report.NoVotes),
		"failed", len(report.Failed))
	return report, nil
}

// CastVote records one ballot. The day must be the open day and the catch
// must have been caught on it.
func (s *service) CastVote(ctx context.Context, req CastVoteRequest) (*domain.Vote, error) {
	vote, err := s.castVote(ctx, req)
	metrics.VotesCast.WithLabelValues(voteOutcome(err)).Inc()
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgVoteCast, "catch_id", vote.CatchID, "day", vote.Day.String())
	s.publish(ctx, event.NewVoteCastEvent(*vote))
	return vote, nil
}

func (s *service) castVote(ctx context.Context, req CastVoteRequest) (*domain.Vote, error) {
	if req.CatchID <= 0 {
		return nil, fmt.Errorf("%w: catch_id must be positive", domain.ErrInvalidInput)
	}
	address := strings.TrimSpace(req.VoterAddress)
	if address == "" {
		return nil, fmt.Errorf("%w: voter address is required", domain.ErrInvalidInput)
	}

	open := s.OpenDay()
	day := req.Day
	if day.IsZero() {
		day = open
	}
	if day.After(open) {
		return nil, fmt.Errorf("%w: %s (open day is %s)", domain.ErrDayNotOpen, day, open)
	}
	if day.Before(open) {
		return nil, fmt.Errorf("%w: voting for %s has ended", domain.ErrDayClosed, day)
	}

	c, err := s.repo.GetCatch(ctx, req.CatchID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrCatchNotFound, req.CatchID)
	}
	if caught := domain.VotingDayOf(c.CaughtAt, s.loc); caught != day {
		return nil, fmt.Errorf("%w: catch %d was caught on %s", domain.ErrCatchNotEligible, c.ID, caught)
	}

	tx, err := s.repo.BeginVoteTx(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to begin vote transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	closed, err := tx.ResultExists(ctx, day)
	if err != nil {
		return nil, err
	}
	if closed {
		return nil, fmt.Errorf("%w: %s", domain.ErrDayClosed, day)
	}

	vote := &domain.Vote{
		CatchID: c.ID,
		VoterID: VoterID(s.salt, address),
		Day:     day,
	}
	inserted, err := tx.InsertVoteIfAbsent(ctx, vote)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateVote, day)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit vote: %w", err)
	}
	return vote, nil
}

func (s *service) GetVoteStatus(ctx context.Context, voterAddress string, day domain.VotingDay) (*VoteStatus, error) {
	address := strings.TrimSpace(voterAddress)
	if address == "" {
		return nil, fmt.Errorf("%w: voter address is required", domain.ErrInvalidInput)
	}
	if day.IsZero() {
		day = s.OpenDay()
	}

	vote, err := s.repo.GetVote(ctx, VoterID(s.salt, address), day)
	if err != nil {
		return nil, err
	}
	status := &VoteStatus{Day: day}
	if vote != nil {
		status.HasVoted = true
		status.CatchID = &vote.CatchID
	}
	return status, nil
}

func (s *service) GetResult(ctx context.Context, day domain.VotingDay) (*domain.VotingResult, error) {
	if day.IsZero() {
		return nil, fmt.Errorf("%w: day is required", domain.ErrInvalidInput)
	}
	result, err := s.repo.GetResult(ctx, day)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrResultNotFound, day)
	}
	return result, nil
}

func (s *service) ListResults(ctx context.Context, limit int) ([]domain.VotingResult, error) {
	if limit <= 0 {
		limit = DefaultResultsLimit
	}
	return s.repo.ListResults(ctx, limit)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func finalizeOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeFinalized
	case errors.Is(err, domain.ErrAlreadyProcessed):
		return metrics.OutcomeAlreadyProcessed
	case errors.Is(err, domain.ErrNoVotes):
		return metrics.OutcomeNoVotes
	case errors.Is(err, domain.ErrDayStillOpen):
		return metrics.OutcomeStillOpen
	default:
		return metrics.OutcomeError
	}
}

func voteOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeAccepted
	case errors.Is(err, domain.ErrDuplicateVote):
		return metrics.OutcomeDuplicate
	case errors.Is(err, domain.ErrDayClosed):
		return metrics.OutcomeDayClosed
	case errors.Is(err, domain.ErrDayNotOpen):
		return metrics.OutcomeDayNotOpen
	case errors.Is(err, domain.ErrCatchNotEligible):
		return metrics.OutcomeNotEligible
	default:
		return metrics.OutcomeError
	}
}
