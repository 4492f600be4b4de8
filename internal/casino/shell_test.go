package casino

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/chipstack/internal/bets"
	"github.com/lox/chipstack/internal/chips"
	"github.com/lox/chipstack/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestShell(t *testing.T) (*Shell, *bets.ChipBets) {
	t.Helper()
	provider, err := bets.NewChipBets(chips.DefaultTable(), 144, bets.WithLogger(quietLogger()))
	require.NoError(t, err)

	shell, err := NewShell(provider, quietLogger(),
		game.NewSampleGame("sample-game-1", "Sample Game #1", []string{"left", "right"}, quietLogger()),
		game.NewSampleGame("sample-game-2", "Sample Game #2", nil, quietLogger()),
	)
	require.NoError(t, err)
	return shell, provider
}

func TestShellGames(t *testing.T) {
	t.Parallel()

	shell, _ := newTestShell(t)
	assert.Equal(t, []GameInfo{
		{Name: "sample-game-1", Label: "Sample Game #1"},
		{Name: "sample-game-2", Label: "Sample Game #2"},
	}, shell.Games())

	_, err := NewShell(bets.NewFormBets(1), nil,
		game.NewSampleGame("dup", "A", nil, nil),
		game.NewSampleGame("dup", "B", nil, nil),
	)
	assert.ErrorIs(t, err, ErrDuplicateGame)
}

func TestShellFullRound(t *testing.T) {
	t.Parallel()

	shell, provider := newTestShell(t)

	require.ErrorIs(t, shell.StartRound(), ErrNoGame)
	require.ErrorIs(t, shell.Select("poker"), ErrUnknownGame)
	require.NoError(t, shell.Select("sample-game-1"))
	require.ErrorIs(t, shell.Select("sample-game-2"), ErrGameRunning)

	require.NoError(t, shell.StartRound())
	require.NoError(t, shell.Move(bets.WinningsPile, "left", 25, 1))
	moved, err := shell.Drag(bets.WinningsPile, "right", 5, 9)
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	snap := shell.Snapshot()
	require.NotNil(t, snap.Current)
	assert.Equal(t, game.Betting, snap.Current.Phase)
	assert.Equal(t, 35, snap.Bets.Pending)
	require.Len(t, snap.Bets.Piles, 3)
	assert.Equal(t, []string{bets.WinningsPile, "left", "right"},
		[]string{snap.Bets.Piles[0].Name, snap.Bets.Piles[1].Name, snap.Bets.Piles[2].Name})

	require.NoError(t, shell.Finish())
	assert.Equal(t, game.Playing, shell.Snapshot().Current.Phase)

	require.NoError(t, shell.EndRound(true))
	assert.Equal(t, 144+35, provider.Winnings())
	assert.Empty(t, shell.Snapshot().Error)
}

func TestShellRecordsErrors(t *testing.T) {
	t.Parallel()

	shell, _ := newTestShell(t)
	require.NoError(t, shell.Select("sample-game-2"))
	require.NoError(t, shell.StartRound())

	require.ErrorIs(t, shell.Finish(), bets.ErrEmptyBet)
	assert.Equal(t, "You must select some chips to bet!", shell.Snapshot().Error)

	require.ErrorIs(t, shell.SetAmount(5), ErrUnsupported)

	require.NoError(t, shell.Move(bets.WinningsPile, bets.DefaultSpot, 1, 1))
	assert.Empty(t, shell.Snapshot().Error)
}

func TestShellLeaveAbortsPendingBet(t *testing.T) {
	t.Parallel()

	shell, provider := newTestShell(t)
	require.NoError(t, shell.Select("sample-game-1"))
	require.NoError(t, shell.StartRound())
	require.NoError(t, shell.Move(bets.WinningsPile, "left", 5, 3))
	require.NoError(t, shell.Move(bets.WinningsPile, "right", 1, 4))

	require.NoError(t, shell.Leave())

	assert.Nil(t, shell.Current())
	assert.Equal(t, bets.Idle, provider.State())
	snap := shell.Snapshot()
	assert.Nil(t, snap.Current)
	require.Len(t, snap.Bets.Piles, 1)
	assert.Equal(t, 144, snap.Bets.Piles[0].Total)

	require.ErrorIs(t, shell.Leave(), ErrNoGame)
}

func TestShellAbortRestartsGame(t *testing.T) {
	t.Parallel()

	shell, provider := newTestShell(t)
	require.NoError(t, shell.Select("sample-game-1"))
	require.NoError(t, shell.StartRound())
	require.NoError(t, shell.Move(bets.WinningsPile, "left", 100, 1))

	shell.Abort()

	assert.Equal(t, bets.Idle, provider.State())
	assert.Equal(t, 144, provider.Winnings())
	assert.Equal(t, game.Ready, shell.Snapshot().Current.Phase)
	require.NoError(t, shell.StartRound())
}

func TestShellWithFormBets(t *testing.T) {
	t.Parallel()

	provider := bets.NewFormBets(20)
	shell, err := NewShell(provider, nil, game.NewSampleGame("g", "G", nil, nil))
	require.NoError(t, err)

	require.NoError(t, shell.Select("g"))
	require.NoError(t, shell.StartRound())
	_, err = shell.Drag(bets.WinningsPile, bets.DefaultSpot, 1, 0)
	require.ErrorIs(t, err, ErrUnsupported)

	require.NoError(t, shell.SetAmount(25))
	require.ErrorIs(t, shell.Finish(), bets.ErrInsufficientFunds)
	require.NoError(t, shell.SetAmount(20))
	require.NoError(t, shell.Finish())
	require.NoError(t, shell.EndRound(false))

	snap := shell.Snapshot()
	assert.Equal(t, 0, snap.Bets.Winnings)
	assert.Equal(t, game.Bust, snap.Current.Phase)
}
