//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"promo-bonus-service/internal/domain/ledger"
	"promo-bonus-service/internal/infra"
	"promo-bonus-service/internal/infra/objstore"
	"promo-bonus-service/internal/infra/repository"
	"promo-bonus-service/internal/pkg/clock"
	"promo-bonus-service/internal/pkg/errs"
	"promo-bonus-service/internal/usecase/commands"
	commandsmock "promo-bonus-service/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const rawPhone = "+38 (050) 123-45-67"

type LedgerCommandsTestSuite struct {
	suite.Suite
	repo  *repository.LedgerRepository
	store *objstore.MemoryStore
	clock *clock.MockClock
	uc    commands.LedgerCommands
}

func (s *LedgerCommandsTestSuite) SetupTest() {
	s.store = objstore.NewMemoryStore()
	s.repo = repository.NewLedgerRepository(s.store, 50, testLogger)
	s.clock = clock.NewMockClock(time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC))
	s.uc = commands.NewLedgerCommands(s.repo, testRetry, s.clock, nil, testLogger)
}

func (s *LedgerCommandsTestSuite) fund(amount int) {
	_, err := s.uc.Accrue(context.Background(), commands.AccrueInput{OrderID: "seed", Phone: rawPhone, Amount: amount})
	s.Require().NoError(err)
}

func (s *LedgerCommandsTestSuite) TestReserveThenCancel() {
	ctx := context.Background()
	s.fund(200)

	res, err := s.uc.Reserve(ctx, commands.ReserveInput{OrderID: "order1", Phone: rawPhone, Amount: 150})
	s.Require().NoError(err)
	s.Equal(ledger.OutcomeApplied, res.Outcome)
	s.Equal(ledger.StatusReserved, res.Status)
	s.Equal(50, res.Active)
	s.Equal(150, res.Reserved)

	res, err = s.uc.Cancel(ctx, commands.CancelInput{OrderID: "order1", Phone: "0501234567"})
	s.Require().NoError(err)
	s.Equal(ledger.OutcomeApplied, res.Outcome)
	s.Equal(ledger.StatusCancelled, res.Status)
	s.Equal(200, res.Active)
	s.Equal(0, res.Reserved)
}

func (s *LedgerCommandsTestSuite) TestReserveThenCompleteTwice() {
	ctx := context.Background()
	s.fund(200)

	_, err := s.uc.Reserve(ctx, commands.ReserveInput{OrderID: "order1", Phone: rawPhone, Amount: 150})
	s.Require().NoError(err)

	res, err := s.uc.Complete(ctx, commands.CompleteInput{OrderID: "order1", Phone: rawPhone, Accrual: 20})
	s.Require().NoError(err)
	s.Equal(ledger.OutcomeApplied, res.Outcome)
	s.Equal(ledger.StatusCompleted, res.Status)
	s.Equal(70, res.Active)
	s.Equal(0, res.Reserved)

	before, err := s.store.Read(ctx, repository.LedgerKey("380501234567"))
	s.Require().NoError(err)

	res, err = s.uc.Complete(ctx, commands.CompleteInput{OrderID: "order1", Phone: rawPhone, Accrual: 20})
	s.Require().NoError(err)
	s.Equal(ledger.OutcomeDuplicate, res.Outcome)
	s.Equal(70, res.Active)

	after, err := s.store.Read(ctx, repository.LedgerKey("380501234567"))
	s.Require().NoError(err)
	s.Equal(before.Version, after.Version, "duplicate must not write")
}

func (s *LedgerCommandsTestSuite) TestReserveInsufficientBalance() {
	ctx := context.Background()
	s.fund(50)

	_, err := s.uc.Reserve(ctx, commands.ReserveInput{OrderID: "order2", Phone: rawPhone, Amount: 9999})
	s.True(errs.Is(err, errs.ErrInsufficientBalance), "got %v", err)

	a, _, err := s.repo.Load(ctx, "380501234567")
	s.Require().NoError(err)
	s.Equal(50, a.Active())
	s.Equal(0, a.Reserved())
	_, ok := a.Order("order2")
	s.False(ok)
}

func (s *LedgerCommandsTestSuite) TestManualReserveTopsUpOnce() {
	ctx := context.Background()
	s.fund(500)

	_, err := s.uc.Reserve(ctx, commands.ReserveInput{OrderID: "order1", Phone: rawPhone, Amount: 100})
	s.Require().NoError(err)

	res, err := s.uc.ManualReserve(ctx, commands.ManualReserveInput{OrderID: "order1", Phone: rawPhone, Amount: 300})
	s.Require().NoError(err)
	s.Equal(ledger.OutcomeApplied, res.Outcome)
	s.Equal(ledger.StatusReserved, res.Status)
	s.Equal(300, res.ManualReserved)
	s.Equal(100, res.Active)
	s.Equal(400, res.Reserved)

	before, err := s.store.Read(ctx, repository.LedgerKey("380501234567"))
	s.Require().NoError(err)

	res, err = s.uc.ManualReserve(ctx, commands.ManualReserveInput{OrderID: "order1", Phone: rawPhone, Amount: 50})
	s.Require().NoError(err)
	s.Equal(ledger.OutcomeDuplicate, res.Outcome)
	s.Equal(300, res.ManualReserved)
	s.Equal(100, res.Active)

	after, err := s.store.Read(ctx, repository.LedgerKey("380501234567"))
	s.Require().NoError(err)
	s.Equal(before.Version, after.Version, "duplicate must not write")

	res, err = s.uc.Cancel(ctx, commands.CancelInput{OrderID: "order1", Phone: rawPhone})
	s.Require().NoError(err)
	s.Equal(500, res.Active)
	s.Equal(0, res.Reserved)
}

func (s *LedgerCommandsTestSuite) TestManualReserveOnEmptyBalanceIsNoop() {
	res, err := s.uc.ManualReserve(context.Background(), commands.ManualReserveInput{OrderID: "order1", Phone: rawPhone, Amount: 100})
	s.Require().NoError(err)
	s.Equal(ledger.OutcomeNoop, res.Outcome)
	s.Equal(0, res.ManualReserved)

	_, err = s.store.Read(context.Background(), repository.LedgerKey("380501234567"))
	s.True(infra.IsKind(err, infra.KindNotFound), "noop must not create the account")
}

func (s *LedgerCommandsTestSuite) TestInvalidTransitions() {
	ctx := context.Background()
	s.fund(100)

	_, err := s.uc.Reserve(ctx, commands.ReserveInput{OrderID: "o1", Phone: rawPhone, Amount: 10})
	s.Require().NoError(err)
	_, err = s.uc.Cancel(ctx, commands.CancelInput{OrderID: "o1", Phone: rawPhone})
	s.Require().NoError(err)

	_, err = s.uc.Complete(ctx, commands.CompleteInput{OrderID: "o1", Phone: rawPhone, Accrual: 5})
	s.True(errs.Is(err, errs.ErrInvalidTransition), "got %v", err)

	res, err := s.uc.Cancel(ctx, commands.CancelInput{OrderID: "o1", Phone: rawPhone})
	s.Require().NoError(err)
	s.Equal(ledger.OutcomeDuplicate, res.Outcome)
}

func (s *LedgerCommandsTestSuite) TestCancelUnknownOrderIsNoop() {
	res, err := s.uc.Cancel(context.Background(), commands.CancelInput{OrderID: "ghost", Phone: rawPhone})
	s.Require().NoError(err)
	s.Equal(ledger.OutcomeNoop, res.Outcome)

	_, err = s.store.Read(context.Background(), repository.LedgerKey("380501234567"))
	s.True(infra.IsKind(err, infra.KindNotFound), "noop must not create the account")
}

func (s *LedgerCommandsTestSuite) TestInvalidPayload() {
	ctx := context.Background()

	testCases := []struct {
		name string
		call func() error
	}{
		{
			name: "phone without digits",
			call: func() error {
				_, err := s.uc.Reserve(ctx, commands.ReserveInput{OrderID: "o1", Phone: "unknown", Amount: 10})
				return err
			},
		},
		{
			name: "blank order id",
			call: func() error {
				_, err := s.uc.Cancel(ctx, commands.CancelInput{OrderID: " ", Phone: rawPhone})
				return err
			},
		},
		{
			name: "zero reserve",
			call: func() error {
				_, err := s.uc.Reserve(ctx, commands.ReserveInput{OrderID: "o1", Phone: rawPhone, Amount: 0})
				return err
			},
		},
		{
			name: "negative accrual",
			call: func() error {
				_, err := s.uc.Complete(ctx, commands.CompleteInput{OrderID: "o1", Phone: rawPhone, Accrual: -1})
				return err
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.True(errs.Is(err, errs.ErrInvalidPayload), "got %v", err)
		})
	}
}

func (s *LedgerCommandsTestSuite) TestConcurrentReservesNeverOverspend() {
	ctx := context.Background()
	s.fund(100)
	uc := commands.NewLedgerCommands(s.repo, contendedRetry, s.clock, nil, testLogger)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := uc.Reserve(ctx, commands.ReserveInput{OrderID: fmt.Sprintf("o%d", i), Phone: rawPhone, Amount: 20})
			if err != nil {
				s.True(errs.Is(err, errs.ErrInsufficientBalance) || errs.Is(err, errs.ErrBusy), "got %v", err)
				return
			}
			mu.Lock()
			applied++
			mu.Unlock()
			s.Equal(ledger.OutcomeApplied, res.Outcome)
		}()
	}
	wg.Wait()

	a, _, err := s.repo.Load(ctx, "380501234567")
	s.Require().NoError(err)
	s.LessOrEqual(applied, 5)
	s.Equal(20*applied, a.Reserved())
	s.Equal(100, a.Active()+a.Reserved())
}

func TestLedgerCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerCommandsTestSuite))
}

func TestLedgerCommands_DuplicateSkipsWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	account := ledger.Reconstruct(ledger.Snapshot{Phone: "380501234567", Active: 100}, 50)
	_, err := account.Reserve("o1", 30, time.Now())
	require.NoError(t, err)

	ledgers := commandsmock.NewMockLedgerRepository(ctrl)
	ledgers.EXPECT().Load(gomock.Any(), ledger.Phone("380501234567")).Return(account, "9", nil).Times(1)
	ledgers.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	uc := commands.NewLedgerCommands(ledgers, testRetry, clock.NewRealClock(), nil, testLogger)
	res, err := uc.Reserve(context.Background(), commands.ReserveInput{OrderID: "o1", Phone: "380501234567", Amount: 30})

	require.NoError(t, err)
	assert.Equal(t, ledger.OutcomeDuplicate, res.Outcome)
	assert.Equal(t, 70, res.Active)
}

func TestLedgerCommands_ConflictIsRetriedFromFreshState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledgers := commandsmock.NewMockLedgerRepository(ctrl)
	gomock.InOrder(
		ledgers.EXPECT().Load(gomock.Any(), gomock.Any()).
			Return(ledger.Reconstruct(ledger.Snapshot{Phone: "380501234567", Active: 100}, 50), "1", nil),
		ledgers.EXPECT().Save(gomock.Any(), gomock.Any(), "1").
			Return("", infra.NewRepoErr(infra.KindConflict, "changed", nil)),
		ledgers.EXPECT().Load(gomock.Any(), gomock.Any()).
			Return(ledger.Reconstruct(ledger.Snapshot{Phone: "380501234567", Active: 40}, 50), "2", nil),
		ledgers.EXPECT().Save(gomock.Any(), gomock.Any(), "2").Return("3", nil),
	)

	uc := commands.NewLedgerCommands(ledgers, testRetry, clock.NewRealClock(), nil, testLogger)
	res, err := uc.Reserve(context.Background(), commands.ReserveInput{OrderID: "o1", Phone: "380501234567", Amount: 30})

	require.NoError(t, err)
	assert.Equal(t, 10, res.Active)
	assert.Equal(t, 30, res.Reserved)
}
