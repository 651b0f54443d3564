package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPurger_ScheduleDeletesAfterGrace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRequestRepository(ctrl)

	deleted := make(chan int64, 1)
	repo.EXPECT().Delete(gomock.Any(), int64(7)).DoAndReturn(
		func(_ context.Context, id int64) error {
			deleted <- id
			return nil
		})

	p := NewPurger(repo, 10*time.Millisecond, zerolog.Nop())
	p.Schedule(7)

	select {
	case id := <-deleted:
		assert.Equal(t, int64(7), id)
	case <-time.After(time.Second):
		t.Fatal("purge never fired")
	}
}

func TestPurger_CancelDisarms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRequestRepository(ctrl)
	// No Delete expected.

	p := NewPurger(repo, 10*time.Millisecond, zerolog.Nop())
	p.Schedule(7)
	p.Cancel(7)

	time.Sleep(50 * time.Millisecond)
}

func TestPurger_RescheduleResetsTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRequestRepository(ctrl)

	deleted := make(chan int64, 2)
	repo.EXPECT().Delete(gomock.Any(), int64(7)).DoAndReturn(
		func(_ context.Context, id int64) error {
			deleted <- id
			return nil
		}).Times(1)

	p := NewPurger(repo, 20*time.Millisecond, zerolog.Nop())
	p.Schedule(7)
	p.Schedule(7) // resets, must still fire exactly once

	select {
	case <-deleted:
	case <-time.After(time.Second):
		t.Fatal("purge never fired")
	}
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, deleted)
}

func TestPurger_StopDisarmsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockRequestRepository(ctrl)

	p := NewPurger(repo, 10*time.Millisecond, zerolog.Nop())
	p.Schedule(1)
	p.Schedule(2)
	p.Stop()

	time.Sleep(50 * time.Millisecond)
}

func TestSweeper_RunSweepsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	requestRepo := mocks.NewMockRequestRepository(ctrl)
	reminderRepo := mocks.NewMockReminderRepository(ctrl)

	requestRepo.EXPECT().DeleteTerminalOlderThan(gomock.Any(), gomock.Any()).Return(int64(2), nil).MinTimes(1)
	reminderRepo.EXPECT().ExpireOverdue(gomock.Any(), gomock.Any()).Return(int64(1), nil).MinTimes(1)

	s := NewSweeper(requestRepo, reminderRepo, 10*time.Second, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	s.Run(ctx)
}
