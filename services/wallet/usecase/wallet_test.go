package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/quizarena/internal/pkg/apperr"
	dbmocks "github.com/piresc/quizarena/internal/pkg/database/mocks"
	"github.com/piresc/quizarena/internal/pkg/models"
	"github.com/piresc/quizarena/services/wallet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type walletFixture struct {
	uc   *WalletUC
	repo *mocks.MockWalletRepo
	gw   *mocks.MockWalletGW
}

func newWalletFixture(t *testing.T) *walletFixture {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockWalletRepo(ctrl)
	gw := mocks.NewMockWalletGW(ctrl)
	tx := dbmocks.NewMockTransactor(ctrl)
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).
		AnyTimes()

	uc := NewWalletUC(repo, gw, tx)
	uc.now = func() time.Time { return time.Date(2024, 5, 20, 9, 30, 0, 0, time.Local) }

	return &walletFixture{uc: uc, repo: repo, gw: gw}
}

func TestAdjust_Success(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetUserByID(ctx, "user-1").Return(&models.User{ID: "user-1", Coins: 100}, nil)
	f.repo.EXPECT().ApplyDelta(ctx, "user-1", int64(-30)).Return(int64(70), true, nil)
	f.repo.EXPECT().InsertTransaction(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, txn *models.CoinTransaction) error {
		assert.NotEmpty(t, txn.ID)
		assert.Equal(t, int64(-30), txn.Amount)
		assert.Equal(t, int64(70), txn.BalanceAfter)
		assert.Equal(t, models.TransactionLifeline, txn.Type)
		assert.Equal(t, "session-1", txn.ReferenceID)
		return nil
	})
	f.gw.EXPECT().PublishTransactionCreated(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, event *models.CoinTransactionEvent) error {
		assert.Equal(t, int64(70), event.BalanceAfter)
		return nil
	})

	balance, err := f.uc.Adjust(ctx, models.AdjustRequest{
		UserID: "user-1", Amount: -30, Type: models.TransactionLifeline, ReferenceID: "session-1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(70), balance)
}

func TestAdjust_InsufficientFundsLeavesNoTrace(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetUserByID(ctx, "user-1").Return(&models.User{ID: "user-1", Coins: 10}, nil)
	f.repo.EXPECT().ApplyDelta(ctx, "user-1", int64(-30)).Return(int64(0), false, nil)

	_, err := f.uc.Adjust(ctx, models.AdjustRequest{UserID: "user-1", Amount: -30, Type: models.TransactionEntry})

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.InsufficientFunds, appErr.Kind)
	assert.Equal(t, apperr.FundsDetails{Balance: 10, Required: 30}, appErr.Details)
}

func TestAdjust_UserNotFound(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetUserByID(ctx, "ghost").Return(nil, apperr.New(apperr.NotFound, "User not found"))

	_, err := f.uc.Adjust(ctx, models.AdjustRequest{UserID: "ghost", Amount: 5, Type: models.TransactionBonus})
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestAdjust_PublishFailureIsNotFatal(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetUserByID(ctx, "user-1").Return(&models.User{ID: "user-1", Coins: 0}, nil)
	f.repo.EXPECT().ApplyDelta(ctx, "user-1", int64(25)).Return(int64(25), true, nil)
	f.repo.EXPECT().InsertTransaction(ctx, gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishTransactionCreated(ctx, gomock.Any()).Return(errors.New("nats: connection closed"))

	balance, err := f.uc.Adjust(ctx, models.AdjustRequest{UserID: "user-1", Amount: 25, Type: models.TransactionBonus})
	require.NoError(t, err)
	assert.Equal(t, int64(25), balance)
}

func TestAdjust_InsertFailure(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetUserByID(ctx, "user-1").Return(&models.User{ID: "user-1", Coins: 0}, nil)
	f.repo.EXPECT().ApplyDelta(ctx, "user-1", int64(25)).Return(int64(25), true, nil)
	f.repo.EXPECT().InsertTransaction(ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := f.uc.Adjust(ctx, models.AdjustRequest{UserID: "user-1", Amount: 25, Type: models.TransactionBonus})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record transaction")
}

func TestAwardAndDeduct_RequirePositiveAmount(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()

	for _, amount := range []int64{0, -5} {
		_, err := f.uc.Award(ctx, models.AdjustRequest{UserID: "user-1", Amount: amount})
		assert.True(t, apperr.Is(err, apperr.InvalidArgument))

		_, err = f.uc.Deduct(ctx, models.AdjustRequest{UserID: "user-1", Amount: amount})
		assert.True(t, apperr.Is(err, apperr.InvalidArgument))
	}
}

func TestDeduct_Negates(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().GetUserByID(ctx, "user-1").Return(&models.User{ID: "user-1", Coins: 250}, nil)
	f.repo.EXPECT().ApplyDelta(ctx, "user-1", int64(-50)).Return(int64(200), true, nil)
	f.repo.EXPECT().InsertTransaction(ctx, gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishTransactionCreated(ctx, gomock.Any()).Return(nil)

	balance, err := f.uc.Deduct(ctx, models.AdjustRequest{UserID: "user-1", Amount: 50, Type: models.TransactionEntry})
	require.NoError(t, err)
	assert.Equal(t, int64(200), balance)
}

func TestClaimDailyBonus(t *testing.T) {
	now := time.Date(2024, 5, 20, 9, 30, 0, 0, time.Local)
	at := func(days int, hour int) *time.Time {
		ts := time.Date(2024, 5, 20+days, hour, 0, 0, 0, time.Local)
		return &ts
	}

	tests := []struct {
		name       string
		lastClaim  *time.Time
		streak     int
		wantStreak int
	}{
		{"first claim", nil, 0, 1},
		{"claimed yesterday keeps the streak", at(-1, 23), 4, 5},
		{"claimed yesterday morning keeps the streak", at(-1, 0), 4, 5},
		{"missed a day resets the streak", at(-2, 22), 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWalletFixture(t)
			ctx := context.Background()

			f.repo.EXPECT().LockUser(ctx, "user-1").Return(&models.User{
				ID: "user-1", Coins: 100, DailyStreak: tt.streak, LastDailyBonusAt: tt.lastClaim,
			}, nil)
			f.repo.EXPECT().UpdateDailyBonus(ctx, "user-1", tt.wantStreak, now).Return(nil)
			f.repo.EXPECT().GetUserByID(ctx, "user-1").Return(&models.User{ID: "user-1", Coins: 100}, nil)
			f.repo.EXPECT().ApplyDelta(ctx, "user-1", int64(25)).Return(int64(125), true, nil)
			f.repo.EXPECT().InsertTransaction(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, txn *models.CoinTransaction) error {
				assert.Equal(t, models.TransactionBonus, txn.Type)
				assert.Equal(t, models.Metadata{"dailyStreak": tt.wantStreak}, txn.Metadata)
				return nil
			})
			f.gw.EXPECT().PublishTransactionCreated(ctx, gomock.Any()).Return(nil)

			result, err := f.uc.ClaimDailyBonus(ctx, "user-1")
			require.NoError(t, err)
			assert.Equal(t, &models.DailyBonusResult{Coins: 125, DailyStreak: tt.wantStreak, LastDailyBonusAt: now}, result)
		})
	}
}

func TestClaimDailyBonus_AlreadyClaimedToday(t *testing.T) {
	f := newWalletFixture(t)
	ctx := context.Background()
	earlier := time.Date(2024, 5, 20, 0, 5, 0, 0, time.Local)

	f.repo.EXPECT().LockUser(ctx, "user-1").Return(&models.User{ID: "user-1", DailyStreak: 2, LastDailyBonusAt: &earlier}, nil)

	_, err := f.uc.ClaimDailyBonus(ctx, "user-1")
	assert.True(t, apperr.Is(err, apperr.AlreadyClaimed))
}

func TestApplyReferralRewards(t *testing.T) {
	t.Run("empty code is a no-op", func(t *testing.T) {
		f := newWalletFixture(t)
		assert.NoError(t, f.uc.ApplyReferralRewards(context.Background(), "new-user", ""))
	})

	t.Run("unknown code is ignored", func(t *testing.T) {
		f := newWalletFixture(t)
		ctx := context.Background()
		f.repo.EXPECT().GetUserByReferralCode(ctx, "NOPE42").Return(nil, apperr.New(apperr.NotFound, "User not found"))
		assert.NoError(t, f.uc.ApplyReferralRewards(ctx, "new-user", "NOPE42"))
	})

	t.Run("own code is ignored", func(t *testing.T) {
		f := newWalletFixture(t)
		ctx := context.Background()
		f.repo.EXPECT().GetUserByReferralCode(ctx, "SELF22").Return(&models.User{ID: "new-user"}, nil)
		assert.NoError(t, f.uc.ApplyReferralRewards(ctx, "new-user", "SELF22"))
	})

	t.Run("rewards both sides", func(t *testing.T) {
		f := newWalletFixture(t)
		ctx := context.Background()

		f.repo.EXPECT().GetUserByReferralCode(ctx, "ABCD23").Return(&models.User{ID: "referrer"}, nil)
		f.repo.EXPECT().GetUserByID(ctx, "referrer").Return(&models.User{ID: "referrer", Coins: 400}, nil)
		f.repo.EXPECT().ApplyDelta(ctx, "referrer", int64(100)).Return(int64(500), true, nil)
		f.repo.EXPECT().GetUserByID(ctx, "new-user").Return(&models.User{ID: "new-user", Coins: 250}, nil)
		f.repo.EXPECT().ApplyDelta(ctx, "new-user", int64(50)).Return(int64(300), true, nil)

		var entries []*models.CoinTransaction
		f.repo.EXPECT().InsertTransaction(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, txn *models.CoinTransaction) error {
			entries = append(entries, txn)
			return nil
		}).Times(2)
		f.gw.EXPECT().PublishTransactionCreated(ctx, gomock.Any()).Return(nil).Times(2)

		require.NoError(t, f.uc.ApplyReferralRewards(ctx, "new-user", "ABCD23"))
		require.Len(t, entries, 2)
		assert.Equal(t, "new-user", entries[0].ReferenceID)
		assert.Equal(t, "referrer", entries[1].ReferenceID)
		for _, e := range entries {
			assert.Equal(t, models.TransactionReferral, e.Type)
		}
	})
}

func TestGetWalletSummary(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default", 0, 20},
		{"custom", 5, 5},
		{"capped", 500, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWalletFixture(t)
			ctx := context.Background()

			f.repo.EXPECT().GetUserByID(ctx, "user-1").Return(&models.User{ID: "user-1", Coins: 320, DailyStreak: 3}, nil)
			f.repo.EXPECT().ListTransactions(ctx, "user-1", tt.wantLimit).Return(nil, nil)

			summary, err := f.uc.GetWalletSummary(ctx, "user-1", tt.limit)
			require.NoError(t, err)
			assert.Equal(t, int64(320), summary.Coins)
			assert.Equal(t, 3, summary.DailyStreak)
			assert.NotNil(t, summary.Transactions)
		})
	}
}
