package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"landmarket/config"
	mockUC "landmarket/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestSweeper(t *testing.T, sweep *config.SweepConfig) (*EvidenceSweeper, *mockUC.MockSweepUsecase, error) {
	t.Helper()

	sweepUC := mockUC.NewMockSweepUsecase(t)
	lc := fxtest.NewLifecycle(t)
	d, err := NewEvidenceSweeper(SweeperParams{
		Lc:      lc,
		Cfg:     &config.Config{Sweep: sweep},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		SweepUC: sweepUC,
	})
	if err != nil {
		return nil, sweepUC, err
	}

	return d.(*EvidenceSweeper), sweepUC, nil
}

func TestNewEvidenceSweeper_DefaultsToDaily(t *testing.T) {
	s, _, err := newTestSweeper(t, nil)
	require.NoError(t, err)

	assert.Equal(t, "@daily", s.schedule)
	assert.False(t, s.enabled)
}

func TestNewEvidenceSweeper_RejectsBadSchedule(t *testing.T) {
	_, _, err := newTestSweeper(t, &config.SweepConfig{Enabled: true, Schedule: "every tuesday"})

	assert.Error(t, err)
}

func TestEvidenceSweeper_Serve_RegistersJob(t *testing.T) {
	s, _, err := newTestSweeper(t, &config.SweepConfig{Enabled: true, Schedule: "0 3 * * *"})
	require.NoError(t, err)

	require.NoError(t, s.Serve(context.Background()))
	defer s.cron.Stop()

	assert.Len(t, s.cron.Entries(), 1)
}

func TestEvidenceSweeper_Serve_Disabled(t *testing.T) {
	s, _, err := newTestSweeper(t, &config.SweepConfig{Enabled: false})
	require.NoError(t, err)

	require.NoError(t, s.Serve(context.Background()))

	assert.Empty(t, s.cron.Entries())
}

func TestEvidenceSweeper_RunOnce(t *testing.T) {
	s, sweepUC, err := newTestSweeper(t, nil)
	require.NoError(t, err)

	sweepUC.EXPECT().SweepOrphanedEvidence(mock.Anything).Return(3, nil).Once()
	s.RunOnce(context.Background())

	sweepUC.EXPECT().SweepOrphanedEvidence(mock.Anything).Return(1, errors.New("firestore unavailable")).Once()
	s.RunOnce(context.Background())
}
