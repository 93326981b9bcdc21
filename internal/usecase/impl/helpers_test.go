package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storerating/internal/domain/repository"
	mockRepo "storerating/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

// expectTransaction makes txManager run the callback against factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// txFixture is a repository factory handing out the given mocks inside a transaction.
type txFixture struct {
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	storeRepo *mockRepo.MockStoreRepository
}

func newTxFixture(t *testing.T) txFixture {
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)

	factory.EXPECT().NewUserRepository().Return(userRepo).Maybe()
	factory.EXPECT().NewStoreRepository().Return(storeRepo).Maybe()

	return txFixture{factory: factory, userRepo: userRepo, storeRepo: storeRepo}
}
