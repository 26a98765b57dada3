package distribution

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/plantops/shiftlog-backend/internal/domain"
)

var _ distributionRepo = &distributionRepoMock{}

type distributionRepoMock struct {
	CreateForLogFunc func(ctx context.Context, logID uuid.UUID, workCenters []string) error
	MarkReadFunc     func(ctx context.Context, key domain.DistributionKey, readAt time.Time) error
	MarkUnreadFunc   func(ctx context.Context, key domain.DistributionKey) error
	ListByLogFunc    func(ctx context.Context, logID uuid.UUID) ([]domain.Distribution, error)

	calls struct {
		CreateForLog []struct {
			LogID       uuid.UUID
			WorkCenters []string
		}
		MarkRead []struct {
			Key    domain.DistributionKey
			ReadAt time.Time
		}
		MarkUnread []struct {
			Key domain.DistributionKey
		}
		ListByLog []struct {
			LogID uuid.UUID
		}
	}
	lockCreateForLog sync.RWMutex
	lockMarkRead     sync.RWMutex
	lockMarkUnread   sync.RWMutex
	lockListByLog    sync.RWMutex
}

func (mock *distributionRepoMock) CreateForLog(ctx context.Context, logID uuid.UUID, workCenters []string) error {
	if mock.CreateForLogFunc == nil {
		panic("distributionRepoMock.CreateForLogFunc: method is nil but distributionRepo.CreateForLog was just called")
	}
	callInfo := struct {
		LogID       uuid.UUID
		WorkCenters []string
	}{LogID: logID, WorkCenters: workCenters}
	mock.lockCreateForLog.Lock()
	mock.calls.CreateForLog = append(mock.calls.CreateForLog, callInfo)
	mock.lockCreateForLog.Unlock()
	return mock.CreateForLogFunc(ctx, logID, workCenters)
}

func (mock *distributionRepoMock) CreateForLogCalls() []struct {
	LogID       uuid.UUID
	WorkCenters []string
} {
	mock.lockCreateForLog.RLock()
	calls := mock.calls.CreateForLog
	mock.lockCreateForLog.RUnlock()
	return calls
}

func (mock *distributionRepoMock) MarkRead(ctx context.Context, key domain.DistributionKey, readAt time.Time) error {
	if mock.MarkReadFunc == nil {
		panic("distributionRepoMock.MarkReadFunc: method is nil but distributionRepo.MarkRead was just called")
	}
	callInfo := struct {
		Key    domain.DistributionKey
		ReadAt time.Time
	}{Key: key, ReadAt: readAt}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, key, readAt)
}

func (mock *distributionRepoMock) MarkReadCalls() []struct {
	Key    domain.DistributionKey
	ReadAt time.Time
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}

func (mock *distributionRepoMock) MarkUnread(ctx context.Context, key domain.DistributionKey) error {
	if mock.MarkUnreadFunc == nil {
		panic("distributionRepoMock.MarkUnreadFunc: method is nil but distributionRepo.MarkUnread was just called")
	}
	callInfo := struct {
		Key domain.DistributionKey
	}{Key: key}
	mock.lockMarkUnread.Lock()
	mock.calls.MarkUnread = append(mock.calls.MarkUnread, callInfo)
	mock.lockMarkUnread.Unlock()
	return mock.MarkUnreadFunc(ctx, key)
}

func (mock *distributionRepoMock) MarkUnreadCalls() []struct {
	Key domain.DistributionKey
} {
	mock.lockMarkUnread.RLock()
	calls := mock.calls.MarkUnread
	mock.lockMarkUnread.RUnlock()
	return calls
}

func (mock *distributionRepoMock) ListByLog(ctx context.Context, logID uuid.UUID) ([]domain.Distribution, error) {
	if mock.ListByLogFunc == nil {
		panic("distributionRepoMock.ListByLogFunc: method is nil but distributionRepo.ListByLog was just called")
	}
	callInfo := struct {
		LogID uuid.UUID
	}{LogID: logID}
	mock.lockListByLog.Lock()
	mock.calls.ListByLog = append(mock.calls.ListByLog, callInfo)
	mock.lockListByLog.Unlock()
	return mock.ListByLogFunc(ctx, logID)
}

func (mock *distributionRepoMock) ListByLogCalls() []struct {
	LogID uuid.UUID
} {
	mock.lockListByLog.RLock()
	calls := mock.calls.ListByLog
	mock.lockListByLog.RUnlock()
	return calls
}
