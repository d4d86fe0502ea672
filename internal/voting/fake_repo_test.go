package voting

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/repository"
)

// fakeRepo is an in-memory repository.Voting. Each day has a RWMutex that
// stands in for the database advisory lock: finalize transactions hold it
// exclusively, vote transactions share it.
type fakeRepo struct {
	mu      sync.Mutex
	dayLock map[domain.VotingDay]*sync.RWMutex

	catches map[int64]domain.CatchEntry
	teams   map[int64]*domain.Team
	votes   []domain.Vote
	results map[domain.VotingDay]domain.VotingResult
	nextID  int64

	// reserved holds ballots inserted by open vote transactions, standing in
	// for the unique index on (voter_id, day)
	reserved map[voterDay]struct{}

	failInsertResult error
	failBegin        error
	failCommit       error
}

type voterDay struct {
	voterID string
	day     domain.VotingDay
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		dayLock: make(map[domain.VotingDay]*sync.RWMutex),
		catches: make(map[int64]domain.CatchEntry),
		teams:   make(map[int64]*domain.Team),
		results:  make(map[domain.VotingDay]domain.VotingResult),
		reserved: make(map[voterDay]struct{}),
	}
}

func (r *fakeRepo) addTeam(id int64, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[id] = &domain.Team{ID: id, Name: name}
}

func (r *fakeRepo) addCatch(c domain.CatchEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catches[c.ID] = c
}

// addVotes seeds n ballots for catchID on day from distinct voters
func (r *fakeRepo) addVotes(day domain.VotingDay, catchID int64, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for range n {
		r.nextID++
		r.votes = append(r.votes, domain.Vote{
			ID:      r.nextID,
			CatchID: catchID,
			VoterID: fmt.Sprintf("seed-%d", r.nextID),
			Day:     day,
		})
	}
}

func (r *fakeRepo) wins(teamID int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.teams[teamID]; ok {
		return t.VotingWins
	}
	return 0
}

func (r *fakeRepo) resultCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

func (r *fakeRepo) votesFor(day domain.VotingDay) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, v := range r.votes {
		if v.Day == day {
			n++
		}
	}
	return n
}

func (r *fakeRepo) lockFor(day domain.VotingDay) *sync.RWMutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.dayLock[day]
	if !ok {
		l = &sync.RWMutex{}
		r.dayLock[day] = l
	}
	return l
}

func (r *fakeRepo) tallyLocked(day domain.VotingDay) domain.Tally {
	tally := domain.Tally{}
	for _, v := range r.votes {
		if v.Day == day {
			tally[v.CatchID]++
		}
	}
	return tally
}

func (r *fakeRepo) TallyVotes(_ context.Context, day domain.VotingDay) (domain.Tally, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tallyLocked(day), nil
}

func (r *fakeRepo) GetResult(_ context.Context, day domain.VotingDay) (*domain.VotingResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.results[day]; ok {
		return &res, nil
	}
	return nil, nil
}

func (r *fakeRepo) ListResults(_ context.Context, limit int) ([]domain.VotingResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.VotingResult, 0, len(r.results))
	for _, res := range r.results {
		out = append(out, res)
	}
	slices.SortFunc(out, func(a, b domain.VotingResult) int { return b.Day.Time().Compare(a.Day.Time()) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeRepo) ListPendingDays(_ context.Context, before domain.VotingDay) ([]domain.VotingDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[domain.VotingDay]bool{}
	var days []domain.VotingDay
	for _, v := range r.votes {
		if _, done := r.results[v.Day]; done || !v.Day.Before(before) || seen[v.Day] {
			continue
		}
		seen[v.Day] = true
		days = append(days, v.Day)
	}
	// newest first; the service has to order them itself
	slices.SortFunc(days, func(a, b domain.VotingDay) int { return b.Time().Compare(a.Time()) })
	return days, nil
}

func (r *fakeRepo) GetVote(_ context.Context, voterID string, day domain.VotingDay) (*domain.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.votes {
		if v.VoterID == voterID && v.Day == day {
			vote := v
			return &vote, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetCatch(_ context.Context, id int64) (*domain.CatchEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.catches[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *fakeRepo) GetTeam(_ context.Context, id int64) (*domain.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.teams[id]; ok {
		team := *t
		return &team, nil
	}
	return nil, nil
}

func (r *fakeRepo) BeginFinalizeTx(_ context.Context, day domain.VotingDay) (repository.FinalizeTx, error) {
	if r.failBegin != nil {
		return nil, r.failBegin
	}
	l := r.lockFor(day)
	l.Lock()
	return &fakeFinalizeTx{fakeTx{repo: r, release: l.Unlock}}, nil
}

func (r *fakeRepo) BeginVoteTx(_ context.Context, day domain.VotingDay) (repository.VoteTx, error) {
	if r.failBegin != nil {
		return nil, r.failBegin
	}
	l := r.lockFor(day)
	l.RLock()
	return &fakeVoteTx{fakeTx{repo: r, release: l.RUnlock}}, nil
}

var errTxDone = errors.New("tx is closed")

// fakeTx buffers writes and applies them on Commit. undo runs when the
// transaction ends without committing.
type fakeTx struct {
	repo    *fakeRepo
	release func()
	done    bool
	apply   []func()
	undo    []func()
}

func (t *fakeTx) Commit(_ context.Context) error {
	if t.done {
		return errTxDone
	}
	t.done = true
	t.repo.mu.Lock()
	fns := t.apply
	err := t.repo.failCommit
	if err != nil {
		fns = t.undo
	}
	for _, fn := range fns {
		fn()
	}
	t.repo.mu.Unlock()
	t.release()
	return err
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.done {
		return errTxDone
	}
	t.done = true
	t.repo.mu.Lock()
	for _, fn := range t.undo {
		fn()
	}
	t.repo.mu.Unlock()
	t.release()
	return nil
}

func (t *fakeTx) ResultExists(_ context.Context, day domain.VotingDay) (bool, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	_, ok := t.repo.results[day]
	return ok, nil
}

type fakeFinalizeTx struct {
	fakeTx
}

func (t *fakeFinalizeTx) TallyVotes(ctx context.Context, day domain.VotingDay) (domain.Tally, error) {
	return t.repo.TallyVotes(ctx, day)
}

func (t *fakeFinalizeTx) GetCatch(ctx context.Context, id int64) (*domain.CatchEntry, error) {
	return t.repo.GetCatch(ctx, id)
}

func (t *fakeFinalizeTx) InsertResultIfAbsent(_ context.Context, res *domain.VotingResult) (bool, error) {
	if t.repo.failInsertResult != nil {
		return false, t.repo.failInsertResult
	}
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if _, ok := t.repo.results[res.Day]; ok {
		return false, nil
	}
	t.repo.nextID++
	res.ID = t.repo.nextID
	res.Processed = true
	stored := *res
	t.apply = append(t.apply, func() { t.repo.results[stored.Day] = stored })
	return true, nil
}

func (t *fakeFinalizeTx) IncrementTeamWins(_ context.Context, teamID int64) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	if _, ok := t.repo.teams[teamID]; !ok {
		return domain.ErrTeamNotFound
	}
	t.apply = append(t.apply, func() { t.repo.teams[teamID].VotingWins++ })
	return nil
}

type fakeVoteTx struct {
	fakeTx
}

func (t *fakeVoteTx) InsertVoteIfAbsent(_ context.Context, v *domain.Vote) (bool, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()
	key := voterDay{voterID: v.VoterID, day: v.Day}
	if _, taken := t.repo.reserved[key]; taken {
		return false, nil
	}
	for _, existing := range t.repo.votes {
		if existing.VoterID == v.VoterID && existing.Day == v.Day {
			return false, nil
		}
	}
	t.repo.nextID++
	v.ID = t.repo.nextID
	stored := *v

	t.repo.reserved[key] = struct{}{}
	t.apply = append(t.apply, func() {
		delete(t.repo.reserved, key)
		t.repo.votes = append(t.repo.votes, stored)
	})
	t.undo = append(t.undo, func() { delete(t.repo.reserved, key) })
	return true, nil
}
