//go:build integration

package store_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"posterati/internal/auth/models"
	"posterati/internal/auth/store"
	"posterati/pkg/domain"
	"posterati/pkg/platform/sentinel"
	"posterati/pkg/testutil/containers"
)

type PostgresUserStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
}

func TestPostgresUserStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresUserStoreSuite))
}

func (s *PostgresUserStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgres(s.postgres.DB, 5*time.Second)
}

func (s *PostgresUserStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "posters", "users"))
}

func newTestUser(username, email string) *models.User {
	return models.NewUser(username, email, "$2a$10$digest", time.Now().UTC())
}

func (s *PostgresUserStoreSuite) TestCreateAndFind() {
	ctx := context.Background()
	user := newTestUser("ada", "ada@example.com")
	s.Require().NoError(s.store.Create(ctx, user))

	found, err := s.store.FindByID(ctx, user.ID)
	s.Require().NoError(err)
	s.Equal("ada", found.Username)
	s.Equal("ada@example.com", found.Email)
	s.Equal(user.PasswordDigest, found.PasswordDigest)

	found, err = s.store.FindByEmail(ctx, "ADA@Example.COM")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.store.FindByID(ctx, domain.NewUserID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresUserStoreSuite) TestUniqueViolationsSurfaceAsConflict() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, newTestUser("ada", "ada@example.com")))

	err := s.store.Create(ctx, newTestUser("other", "ada@example.com"))
	s.ErrorIs(err, sentinel.ErrConflict)

	err = s.store.Create(ctx, newTestUser("ada", "other@example.com"))
	s.ErrorIs(err, sentinel.ErrConflict)
}

func (s *PostgresUserStoreSuite) TestFindByEmailOrUsernamePrefersEmail() {
	ctx := context.Background()
	ada := newTestUser("ada", "ada@example.com")
	grace := newTestUser("grace", "grace@example.com")
	s.Require().NoError(s.store.Create(ctx, ada))
	s.Require().NoError(s.store.Create(ctx, grace))

	found, err := s.store.FindByEmailOrUsername(ctx, "ada@example.com", "grace")
	s.Require().NoError(err)
	s.Equal(ada.ID, found.ID, "email match must win when both identifiers collide")

	found, err = s.store.FindByEmailOrUsername(ctx, "nobody@example.com", "grace")
	s.Require().NoError(err)
	s.Equal(grace.ID, found.ID)

	_, err = s.store.FindByEmailOrUsername(ctx, "nobody@example.com", "nobody")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

// TestConcurrentSignupRace verifies that concurrent inserts of the same
// email produce exactly one success and conflicts for the rest.
func (s *PostgresUserStoreSuite) TestConcurrentSignupRace() {
	ctx := context.Background()
	const goroutines = 20

	var wg sync.WaitGroup
	var successCount, conflictCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.store.Create(ctx, newTestUser("racer", "racer@example.com"))
			switch {
			case err == nil:
				successCount.Add(1)
			default:
				s.ErrorIs(err, sentinel.ErrConflict)
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load())
	s.Equal(int32(goroutines-1), conflictCount.Load())
}

func (s *PostgresUserStoreSuite) TestList() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, newTestUser("ada", "ada@example.com")))
	s.Require().NoError(s.store.Create(ctx, newTestUser("grace", "grace@example.com")))

	users, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Len(users, 2)
}
