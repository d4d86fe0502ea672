package catch_test

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CatchCup_Go/internal/catch"
	"github.com/osse101/CatchCup_Go/internal/domain"
	"github.com/osse101/CatchCup_Go/internal/event"
	"github.com/osse101/CatchCup_Go/mocks"
)

var (
	team = &domain.Team{ID: 1, Name: "Lils & Matt"}
	koi  = &domain.FishType{ID: 3, Name: "Carpe koi", Coefficient: 2}
)

func TestLogCatch(t *testing.T) {
	tests := []struct {
		name       string
		req        catch.LogCatchRequest
		setupMock  func(*mocks.MockRepositoryCatch)
		wantErr    error
		wantPoints int64
	}{
		{
			name: "Success",
			req:  catch.LogCatchRequest{TeamID: 1, FishTypeID: 3, WeightGrams: 8250, ImageURL: " https://img.example/koi.jpg "},
			setupMock: func(m *mocks.MockRepositoryCatch) {
				m.On("GetTeam", mock.Anything, int64(1)).Return(team, nil)
				m.On("GetFishType", mock.Anything, int64(3)).Return(koi, nil)
				m.On("CreateCatch", mock.Anything, mock.MatchedBy(func(c *domain.CatchEntry) bool {
					return c.Points == 16 && c.ImageURL == "https://img.example/koi.jpg" && !c.CaughtAt.IsZero()
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.CatchEntry).ID = 100
				}).Return(nil)
			},
			wantPoints: 16,
		},
		{
			name:      "Zero weight",
			req:       catch.LogCatchRequest{TeamID: 1, FishTypeID: 3},
			setupMock: func(m *mocks.MockRepositoryCatch) {},
			wantErr:   domain.ErrInvalidInput,
		},
		{
			name:      "Too heavy",
			req:       catch.LogCatchRequest{TeamID: 1, FishTypeID: 3, WeightGrams: domain.MaxCatchWeightGrams + 1},
			setupMock: func(m *mocks.MockRepositoryCatch) {},
			wantErr:   domain.ErrInvalidInput,
		},
		{
			name:      "Caught in the future",
			req:       catch.LogCatchRequest{TeamID: 1, FishTypeID: 3, WeightGrams: 1000, CaughtAt: time.Now().Add(time.Hour)},
			setupMock: func(m *mocks.MockRepositoryCatch) {},
			wantErr:   domain.ErrInvalidInput,
		},
		{
			name: "Unknown team",
			req:  catch.LogCatchRequest{TeamID: 9, FishTypeID: 3, WeightGrams: 1000},
			setupMock: func(m *mocks.MockRepositoryCatch) {
				m.On("GetTeam", mock.Anything, int64(9)).Return(nil, nil)
			},
			wantErr: domain.ErrTeamNotFound,
		},
		{
			name: "Unknown fish type",
			req:  catch.LogCatchRequest{TeamID: 1, FishTypeID: 8, WeightGrams: 1000},
			setupMock: func(m *mocks.MockRepositoryCatch) {
				m.On("GetTeam", mock.Anything, int64(1)).Return(team, nil)
				m.On("GetFishType", mock.Anything, int64(8)).Return(nil, nil)
			},
			wantErr: domain.ErrFishTypeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockRepositoryCatch(t)
			bus := event.NewMemoryBus()
			var published []event.Event
			bus.Subscribe(event.CatchLogged, func(_ context.Context, evt event.Event) error {
				published = append(published, evt)
				return nil
			})
			tt.setupMock(repo)

			svc := catch.NewService(repo, bus, time.UTC)
			c, err := svc.LogCatch(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				assert.Empty(t, published)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(100), c.ID)
			assert.Equal(t, tt.wantPoints, c.Points)
			assert.Equal(t, "Carpe koi", c.FishTypeName)
			require.Len(t, published, 1)
		})
	}
}

func TestLogCatch_RepositoryError(t *testing.T) {
	repo := mocks.NewMockRepositoryCatch(t)
	repo.On("GetTeam", mock.Anything, int64(1)).Return(team, nil)
	repo.On("GetFishType", mock.Anything, int64(3)).Return(koi, nil)
	repo.On("CreateCatch", mock.Anything, mock.Anything).Return(errors.New("db down"))

	bus := mocks.NewMockEventBus(t)
	svc := catch.NewService(repo, bus, time.UTC)

	_, err := svc.LogCatch(context.Background(), catch.LogCatchRequest{TeamID: 1, FishTypeID: 3, WeightGrams: 500})
	assert.EqualError(t, err, "db down")
	bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestLogCatch_PublishFailureDoesNotFail(t *testing.T) {
	repo := mocks.NewMockRepositoryCatch(t)
	repo.On("GetTeam", mock.Anything, int64(1)).Return(team, nil)
	repo.On("GetFishType", mock.Anything, int64(3)).Return(koi, nil)
	repo.On("CreateCatch", mock.Anything, mock.Anything).Return(nil)

	bus := mocks.NewMockEventBus(t)
	bus.On("Publish", mock.Anything, mock.MatchedBy(func(evt event.Event) bool {
		return evt.Type == event.CatchLogged
	})).Return(errors.New("handler failed"))

	svc := catch.NewService(repo, bus, time.UTC)
	c, err := svc.LogCatch(context.Background(), catch.LogCatchRequest{TeamID: 1, FishTypeID: 3, WeightGrams: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.Points)
}

func TestListCatchesByDay_UsesContestTimezone(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	repo := mocks.NewMockRepositoryCatch(t)
	day := domain.NewVotingDay(2025, time.June, 14)
	wantStart := time.Date(2025, time.June, 13, 22, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.June, 14, 22, 0, 0, 0, time.UTC)

	repo.On("ListCatchesBetween", mock.Anything,
		mock.MatchedBy(func(ts time.Time) bool { return ts.Equal(wantStart) }),
		mock.MatchedBy(func(ts time.Time) bool { return ts.Equal(wantEnd) }),
	).Return([]domain.CatchEntry{{ID: 1}}, nil)

	svc := catch.NewService(repo, nil, paris)
	catches, err := svc.ListCatchesByDay(context.Background(), day)
	require.NoError(t, err)
	assert.Len(t, catches, 1)

	_, err = svc.ListCatchesByDay(context.Background(), domain.VotingDay{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetCatch_NotFound(t *testing.T) {
	repo := mocks.NewMockRepositoryCatch(t)
	repo.On("GetCatch", mock.Anything, int64(5)).Return(nil, nil)

	_, err := catch.NewService(repo, nil, nil).GetCatch(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrCatchNotFound)
}

func TestListCatchesByTeam(t *testing.T) {
	repo := mocks.NewMockRepositoryCatch(t)
	repo.On("GetTeam", mock.Anything, int64(1)).Return(team, nil)
	repo.On("GetTeam", mock.Anything, int64(2)).Return(nil, nil)
	repo.On("ListCatchesByTeam", mock.Anything, int64(1)).Return([]domain.CatchEntry{{ID: 1}, {ID: 2}}, nil)

	svc := catch.NewService(repo, nil, nil)
	catches, err := svc.ListCatchesByTeam(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, catches, 2)

	_, err = svc.ListCatchesByTeam(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}
