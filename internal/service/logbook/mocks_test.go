package logbook

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/plantops/shiftlog-backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc  func(ctx context.Context, entry domain.LogEntry) (domain.LogEntry, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.LogEntry, error)
	ListFunc    func(ctx context.Context, filter domain.LogFilter) ([]domain.LogEntry, error)
	CountFunc   func(ctx context.Context, filter domain.LogFilter) (int, error)

	calls struct {
		Create []struct {
			Entry domain.LogEntry
		}
		GetByID []struct {
			ID uuid.UUID
		}
		List []struct {
			Filter domain.LogFilter
		}
		Count []struct {
			Filter domain.LogFilter
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCount   sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, entry domain.LogEntry) (domain.LogEntry, error) {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	callInfo := struct {
		Entry domain.LogEntry
	}{Entry: entry}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *logRepoMock) CreateCalls() []struct {
	Entry domain.LogEntry
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *logRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.LogEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("logRepoMock.GetByIDFunc: method is nil but logRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *logRepoMock) List(ctx context.Context, filter domain.LogFilter) ([]domain.LogEntry, error) {
	if mock.ListFunc == nil {
		panic("logRepoMock.ListFunc: method is nil but logRepo.List was just called")
	}
	callInfo := struct {
		Filter domain.LogFilter
	}{Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *logRepoMock) ListCalls() []struct {
	Filter domain.LogFilter
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *logRepoMock) Count(ctx context.Context, filter domain.LogFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("logRepoMock.CountFunc: method is nil but logRepo.Count was just called")
	}
	callInfo := struct {
		Filter domain.LogFilter
	}{Filter: filter}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

func (mock *logRepoMock) CountCalls() []struct {
	Filter domain.LogFilter
} {
	mock.lockCount.RLock()
	defer mock.lockCount.RUnlock()
	return mock.calls.Count
}

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (domain.Category, error)
	ListTargetsFunc func(ctx context.Context, categoryID uuid.UUID, plant string) ([]string, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		ListTargets []struct {
			CategoryID uuid.UUID
			Plant      string
		}
	}
	lockGetByID     sync.RWMutex
	lockListTargets sync.RWMutex
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *categoryRepoMock) ListTargets(ctx context.Context, categoryID uuid.UUID, plant string) ([]string, error) {
	if mock.ListTargetsFunc == nil {
		panic("categoryRepoMock.ListTargetsFunc: method is nil but categoryRepo.ListTargets was just called")
	}
	callInfo := struct {
		CategoryID uuid.UUID
		Plant      string
	}{CategoryID: categoryID, Plant: plant}
	mock.lockListTargets.Lock()
	mock.calls.ListTargets = append(mock.calls.ListTargets, callInfo)
	mock.lockListTargets.Unlock()
	return mock.ListTargetsFunc(ctx, categoryID, plant)
}

func (mock *categoryRepoMock) ListTargetsCalls() []struct {
	CategoryID uuid.UUID
	Plant      string
} {
	mock.lockListTargets.RLock()
	defer mock.lockListTargets.RUnlock()
	return mock.calls.ListTargets
}

var _ distributor = &distributorMock{}

type distributorMock struct {
	CreateDistributionsFunc func(ctx context.Context, logID uuid.UUID, workCenters []string) error

	calls struct {
		CreateDistributions []struct {
			LogID       uuid.UUID
			WorkCenters []string
		}
	}
	lockCreateDistributions sync.RWMutex
}

func (mock *distributorMock) CreateDistributions(ctx context.Context, logID uuid.UUID, workCenters []string) error {
	if mock.CreateDistributionsFunc == nil {
		panic("distributorMock.CreateDistributionsFunc: method is nil but distributor.CreateDistributions was just called")
	}
	callInfo := struct {
		LogID       uuid.UUID
		WorkCenters []string
	}{LogID: logID, WorkCenters: workCenters}
	mock.lockCreateDistributions.Lock()
	mock.calls.CreateDistributions = append(mock.calls.CreateDistributions, callInfo)
	mock.lockCreateDistributions.Unlock()
	return mock.CreateDistributionsFunc(ctx, logID, workCenters)
}

func (mock *distributorMock) CreateDistributionsCalls() []struct {
	LogID       uuid.UUID
	WorkCenters []string
} {
	mock.lockCreateDistributions.RLock()
	defer mock.lockCreateDistributions.RUnlock()
	return mock.calls.CreateDistributions
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, without a real transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

var _ Notifier = &notifierMock{}

type notifierMock struct {
	LogCreatedFunc func(ctx context.Context, entry domain.LogEntry, category domain.Category)

	calls struct {
		LogCreated []struct {
			Entry    domain.LogEntry
			Category domain.Category
		}
	}
	lockLogCreated sync.RWMutex
}

func (mock *notifierMock) LogCreated(ctx context.Context, entry domain.LogEntry, category domain.Category) {
	callInfo := struct {
		Entry    domain.LogEntry
		Category domain.Category
	}{Entry: entry, Category: category}
	mock.lockLogCreated.Lock()
	mock.calls.LogCreated = append(mock.calls.LogCreated, callInfo)
	mock.lockLogCreated.Unlock()
	if mock.LogCreatedFunc != nil {
		mock.LogCreatedFunc(ctx, entry, category)
	}
}

func (mock *notifierMock) LogCreatedCalls() []struct {
	Entry    domain.LogEntry
	Category domain.Category
} {
	mock.lockLogCreated.RLock()
	defer mock.lockLogCreated.RUnlock()
	return mock.calls.LogCreated
}
