package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"go.uber.org/mock/gomock"

	"posterati/internal/auth/handler/mocks"
	"posterati/internal/auth/models"
	"posterati/internal/auth/service"
	"posterati/internal/transport/http/shared"
	"posterati/pkg/domain"
	dErrors "posterati/pkg/domain-errors"
	"posterati/pkg/requestcontext"
)

type fixture struct {
	svc    *mocks.MockService
	router *chi.Mux
	userID domain.UserID
}

// newFixture wires the handler into a router with a stand-in auth
// middleware that injects a fixed authenticated user.
func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	logger := slog.New(slog.DiscardHandler)
	responder := shared.NewResponder(logger, false)

	f := &fixture{svc: svc, userID: domain.NewUserID()}

	fakeAuth := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := requestcontext.WithUserID(r.Context(), f.userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	r := chi.NewRouter()
	New(svc, logger, responder).Register(r, fakeAuth)
	f.router = r
	return f
}

func testUser(username, email string) *models.User {
	return models.NewUser(username, email, "$2a$10$digest",
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func TestSignup(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture(t)
		user := testUser("ada", "ada@example.com")
		f.svc.EXPECT().
			Signup(gomock.Any(), "ada", "ada@example.com", "hunter2hunter2").
			Return(&service.AuthResult{User: user, Token: "signed.token"}, nil)

		apitest.New().
			Handler(f.router).
			Post("/users/signup").
			JSON(`{"username":"ada","email":"ada@example.com","password":"hunter2hunter2"}`).
			Expect(t).
			Status(http.StatusCreated).
			Assert(jsonpath.Equal(`$.status`, "success")).
			Assert(jsonpath.Equal(`$.message`, "User registered successfully")).
			Assert(jsonpath.Equal(`$.data.user.username`, "ada")).
			Assert(jsonpath.Equal(`$.data.token`, "signed.token")).
			Assert(jsonpath.NotPresent(`$.data.user.password`)).
			Assert(jsonpath.NotPresent(`$.data.user.passwordDigest`)).
			End()
	})

	t.Run("short password is 422", func(t *testing.T) {
		f := newFixture(t)

		apitest.New().
			Handler(f.router).
			Post("/users/signup").
			JSON(`{"username":"ada","email":"ada@example.com","password":"short"}`).
			Expect(t).
			Status(http.StatusUnprocessableEntity).
			Assert(jsonpath.Equal(`$.status`, "fail")).
			Assert(jsonpath.Equal(`$.message`, "Password must be at least 8 characters long.")).
			End()
	})

	t.Run("bad username charset is 422", func(t *testing.T) {
		f := newFixture(t)

		apitest.New().
			Handler(f.router).
			Post("/users/signup").
			JSON(`{"username":"ada lovelace","email":"ada@example.com","password":"hunter2hunter2"}`).
			Expect(t).
			Status(http.StatusUnprocessableEntity).
			Assert(jsonpath.Equal(`$.message`, "Username can only contain letters, numbers, and underscores.")).
			End()
	})

	t.Run("duplicate email is 409", func(t *testing.T) {
		f := newFixture(t)
		f.svc.EXPECT().
			Signup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeConflict, "Email address is already in use."))

		apitest.New().
			Handler(f.router).
			Post("/users/signup").
			JSON(`{"username":"ada","email":"ada@example.com","password":"hunter2hunter2"}`).
			Expect(t).
			Status(http.StatusConflict).
			Assert(jsonpath.Equal(`$.status`, "fail")).
			Assert(jsonpath.Equal(`$.message`, "Email address is already in use.")).
			End()
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		f := newFixture(t)

		apitest.New().
			Handler(f.router).
			Post("/users/signup").
			Body(`{not json`).
			Expect(t).
			Status(http.StatusBadRequest).
			Assert(jsonpath.Equal(`$.status`, "fail")).
			End()
	})
}

func TestLogin(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		f := newFixture(t)
		user := testUser("ada", "ada@example.com")
		f.svc.EXPECT().
			Login(gomock.Any(), "ada@example.com", "hunter2hunter2").
			Return(&service.AuthResult{User: user, Token: "signed.token"}, nil)

		apitest.New().
			Handler(f.router).
			Post("/users/login").
			JSON(`{"email":"ada@example.com","password":"hunter2hunter2"}`).
			Expect(t).
			Status(http.StatusOK).
			Assert(jsonpath.Equal(`$.message`, "Login successful")).
			Assert(jsonpath.Equal(`$.data.token`, "signed.token")).
			End()
	})

	t.Run("bad credentials are 401", func(t *testing.T) {
		f := newFixture(t)
		f.svc.EXPECT().
			Login(gomock.Any(), "ada@example.com", "wrong-password").
			Return(nil, dErrors.New(dErrors.CodeUnauthorized, "Invalid email or password."))

		apitest.New().
			Handler(f.router).
			Post("/users/login").
			JSON(`{"email":"ada@example.com","password":"wrong-password"}`).
			Expect(t).
			Status(http.StatusUnauthorized).
			Assert(jsonpath.Equal(`$.message`, "Invalid email or password.")).
			End()
	})

	t.Run("missing password is 422", func(t *testing.T) {
		f := newFixture(t)

		apitest.New().
			Handler(f.router).
			Post("/users/login").
			JSON(`{"email":"ada@example.com","password":""}`).
			Expect(t).
			Status(http.StatusUnprocessableEntity).
			Assert(jsonpath.Equal(`$.message`, "Password is required.")).
			End()
	})
}

func TestListUsers(t *testing.T) {
	f := newFixture(t)
	f.svc.EXPECT().ListUsers(gomock.Any()).Return([]*models.User{
		testUser("ada", "ada@example.com"),
		testUser("grace", "grace@example.com"),
	}, nil)

	apitest.New().
		Handler(f.router).
		Get("/users/").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.message`, "Users retrieved successfully")).
		Assert(jsonpath.Len(`$.data`, 2)).
		End()
}

func TestCurrentUser(t *testing.T) {
	f := newFixture(t)
	user := testUser("ada", "ada@example.com")
	f.svc.EXPECT().
		GetUserByID(gomock.Any(), f.userID).
		Return(user, nil)

	apitest.New().
		Handler(f.router).
		Get("/users/me").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.message`, "User profile retrieved")).
		Assert(jsonpath.Equal(`$.data.username`, "ada")).
		End()
}
