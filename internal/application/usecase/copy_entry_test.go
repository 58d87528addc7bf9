package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/pastor/internal/application/port/mocks"
	"github.com/bnema/pastor/internal/application/usecase"
)

func TestCopyEntryUseCase_Copy_WritesContent(t *testing.T) {
	ctx := testContext()
	manager, _ := newEmptyManager(t, 10)
	require.NoError(t, manager.Observe(ctx, "older"))
	require.NoError(t, manager.Observe(ctx, "newer"))

	board := portmocks.NewMockPasteboard(t)
	board.EXPECT().WriteText(mock.Anything, "older").Return(nil).Once()

	uc := usecase.NewCopyEntryUseCase(board, manager)
	require.NoError(t, uc.Copy(ctx, 1, false))
	assert.Equal(t, []string{"newer", "older"}, contentsOf(manager.Entries()))
}

func TestCopyEntryUseCase_Copy_Promotes(t *testing.T) {
	ctx := testContext()
	manager, _ := newEmptyManager(t, 10)
	require.NoError(t, manager.Observe(ctx, "older"))
	require.NoError(t, manager.Observe(ctx, "newer"))

	board := portmocks.NewMockPasteboard(t)
	board.EXPECT().WriteText(mock.Anything, "older").Return(nil).Once()

	uc := usecase.NewCopyEntryUseCase(board, manager)
	require.NoError(t, uc.Copy(ctx, 1, true))

	head, _ := manager.Entry(0)
	assert.Equal(t, "older", head.Content)
	assert.Equal(t, 1, head.AccessCount)
}

func TestCopyEntryUseCase_Copy_OutOfRange(t *testing.T) {
	manager, _ := newEmptyManager(t, 10)
	board := portmocks.NewMockPasteboard(t)

	uc := usecase.NewCopyEntryUseCase(board, manager)
	err := uc.Copy(testContext(), 3, false)
	assert.ErrorIs(t, err, usecase.ErrNoSuchEntry)
}

func TestCopyEntryUseCase_Copy_WriteFailure(t *testing.T) {
	ctx := testContext()
	manager, _ := newEmptyManager(t, 10)
	require.NoError(t, manager.Observe(ctx, "text"))

	board := portmocks.NewMockPasteboard(t)
	board.EXPECT().WriteText(mock.Anything, "text").Return(errors.New("no clipboard tool")).Once()

	uc := usecase.NewCopyEntryUseCase(board, manager)
	err := uc.Copy(ctx, 0, true)
	require.Error(t, err)

	head, _ := manager.Entry(0)
	assert.Equal(t, 0, head.AccessCount, "failed copies are not counted")
}
