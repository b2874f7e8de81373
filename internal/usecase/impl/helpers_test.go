package impl

import (
	"context"
	"log/slog"

	"quorum/internal/domain/repository"
)

// stubRepoFactory hands out the repositories injected by the test, standing
// in for the transaction-bound factory.
type stubRepoFactory struct {
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	profileRepo repository.ProfileRepository
	voteRepo    repository.VoteRepository
	cityRepo    repository.CityRepository
}

func (f *stubRepoFactory) UserRepo() repository.UserRepository       { return f.userRepo }
func (f *stubRepoFactory) RoleRepo() repository.RoleRepository       { return f.roleRepo }
func (f *stubRepoFactory) ProfileRepo() repository.ProfileRepository { return f.profileRepo }
func (f *stubRepoFactory) VoteRepo() repository.VoteRepository       { return f.voteRepo }
func (f *stubRepoFactory) CityRepo() repository.CityRepository       { return f.cityRepo }

// stubTxManager runs the callback directly against the stub factory. The
// callback's error propagates unchanged, mirroring a rollback.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (tm *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
