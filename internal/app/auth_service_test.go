package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"nutrilog/internal/domain"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	createFn     func(ctx context.Context, name, email, passwordHash string) (*domain.User, error)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, name, email, passwordHash string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name, email, passwordHash)
	}
	return &domain.User{ID: 1, Name: name, Email: email, PasswordHash: passwordHash}, nil
}

const testSecret = "test-secret-0123456789"

func newTestAuth(users domain.UserRepository) *AuthService {
	svc := NewAuthService(users, NewTokenIssuer(testSecret, time.Hour), zap.NewNop())
	svc.cost = bcrypt.MinCost
	return svc
}

func TestAuthService_Signup_Success(t *testing.T) {
	ctx := context.Background()
	var storedHash string
	users := &mockUserRepo{
		createFn: func(_ context.Context, name, email, hash string) (*domain.User, error) {
			if email != "ann@example.com" {
				t.Errorf("expected normalized email, got %q", email)
			}
			storedHash = hash
			return &domain.User{ID: 7, Name: name, Email: email, PasswordHash: hash}, nil
		},
	}
	core, logs := observer.New(zap.InfoLevel)
	svc := NewAuthService(users, NewTokenIssuer(testSecret, time.Hour), zap.New(core))
	svc.cost = bcrypt.MinCost

	sess, err := svc.Signup(ctx, SignupInput{Name: " Ann ", Email: " Ann@Example.com ", Password: "pw"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sess.Token == "" || sess.User.ID != 7 || sess.User.Name != "Ann" {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("pw")) != nil {
		t.Error("stored hash does not match password")
	}
	if logs.FilterMessage("user signed up").Len() != 1 {
		t.Error("expected signup log entry")
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc := newTestAuth(&mockUserRepo{})
	tests := []struct {
		name  string
		in    SignupInput
		field string
	}{
		{"missing name", SignupInput{Email: "a@b.co", Password: "x"}, "name"},
		{"missing email", SignupInput{Name: "A", Password: "x"}, "email"},
		{"bad email", SignupInput{Name: "A", Email: "nope", Password: "x"}, "email"},
		{"missing password", SignupInput{Name: "A", Email: "a@b.co"}, "password"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tc.in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Fields[0].Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, ve.Fields[0].Field)
			}
		})
	}
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	tests := []struct {
		name  string
		users *mockUserRepo
	}{
		{
			name: "existing user",
			users: &mockUserRepo{getByEmailFn: func(context.Context, string) (*domain.User, error) {
				return &domain.User{ID: 1}, nil
			}},
		},
		{
			name: "unique violation on insert",
			users: &mockUserRepo{createFn: func(context.Context, string, string, string) (*domain.User, error) {
				return nil, domain.ErrConflict
			}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newTestAuth(tc.users).Signup(context.Background(), SignupInput{Name: "A", Email: "a@b.co", Password: "x"})
			if !errors.Is(err, ErrEmailTaken) {
				t.Fatalf("expected ErrEmailTaken, got %v", err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correctpass"), bcrypt.MinCost)
	stored := &domain.User{ID: 3, Email: "bob@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name     string
		user     *domain.User
		password string
		wantErr  error
	}{
		{"success", stored, "correctpass", nil},
		{"wrong password", stored, "wrongpass", ErrInvalidCredentials},
		{"unknown user", nil, "correctpass", ErrInvalidCredentials},
		{"sso-only account", &domain.User{ID: 4, Email: "bob@example.com"}, "", ErrInvalidCredentials},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := &mockUserRepo{getByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
				if email != "bob@example.com" {
					t.Errorf("unexpected email %q", email)
				}
				return tc.user, nil
			}}
			password := tc.password
			if password == "" {
				password = "anything"
			}
			sess, err := newTestAuth(users).Login(context.Background(), LoginInput{Email: "BOB@example.com", Password: password})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if sess.Token == "" || sess.User.ID != 3 {
				t.Fatalf("unexpected session: %+v", sess)
			}
		})
	}
}

func TestAuthService_Login_RepoError(t *testing.T) {
	users := &mockUserRepo{getByEmailFn: func(context.Context, string) (*domain.User, error) {
		return nil, errors.New("db down")
	}}
	_, err := newTestAuth(users).Login(context.Background(), LoginInput{Email: "a@b.co", Password: "x"})
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	user := &domain.User{ID: 9, Email: "c@d.co"}
	users := &mockUserRepo{getByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
		if id == 9 {
			return user, nil
		}
		return nil, nil
	}}
	svc := newTestAuth(users)

	token, err := svc.tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	got, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.ID != 9 {
		t.Errorf("expected user 9, got %d", got.ID)
	}

	orphan, _ := svc.tokens.Issue(&domain.User{ID: 10})
	if _, err := svc.Authenticate(context.Background(), orphan); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for deleted user, got %v", err)
	}
}

func TestTokenIssuer_Parse(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	good, _ := issuer.Issue(&domain.User{ID: 1, Email: "a@b.co"})

	expired := NewTokenIssuer(testSecret, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _ := expired.Issue(&domain.User{ID: 1})

	other, _ := NewTokenIssuer("another-secret-abcdef", time.Hour).Issue(&domain.User{ID: 1})

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid", good, false},
		{"expired", old, true},
		{"wrong secret", other, true},
		{"garbage", "not.a.jwt", true},
		{"empty", "", true},
		{"bad signature", good[:strings.LastIndex(good, ".")+1] + "c2lnbmF0dXJl", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := issuer.Parse(tc.token)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidToken) {
					t.Fatalf("expected ErrInvalidToken, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if claims.UserID != 1 || claims.Email != "a@b.co" {
				t.Errorf("unexpected claims: %+v", claims)
			}
		})
	}
}

func TestAuthService_LoginWithUser(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		users := &mockUserRepo{
			getByEmailFn: func(context.Context, string) (*domain.User, error) {
				return &domain.User{ID: 5, Email: "sso@example.com"}, nil
			},
			createFn: func(context.Context, string, string, string) (*domain.User, error) {
				t.Fatal("create should not be called")
				return nil, nil
			},
		}
		sess, err := newTestAuth(users).LoginWithUser(context.Background(), "SSO@example.com", "")
		if err != nil || sess.User.ID != 5 {
			t.Fatalf("unexpected result: %+v, %v", sess, err)
		}
	})

	t.Run("provisions new user", func(t *testing.T) {
		var gotName, gotHash string
		users := &mockUserRepo{createFn: func(_ context.Context, name, email, hash string) (*domain.User, error) {
			gotName, gotHash = name, hash
			return &domain.User{ID: 6, Name: name, Email: email}, nil
		}}
		sess, err := newTestAuth(users).LoginWithUser(context.Background(), "new.person@example.com", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.User.ID != 6 || gotName != "new.person" || gotHash != "" {
			t.Errorf("unexpected provisioning: name=%q hash=%q user=%+v", gotName, gotHash, sess.User)
		}
	})

	t.Run("concurrent provisioning", func(t *testing.T) {
		calls := 0
		users := &mockUserRepo{
			getByEmailFn: func(context.Context, string) (*domain.User, error) {
				calls++
				if calls == 1 {
					return nil, nil
				}
				return &domain.User{ID: 8}, nil
			},
			createFn: func(context.Context, string, string, string) (*domain.User, error) {
				return nil, domain.ErrConflict
			},
		}
		sess, err := newTestAuth(users).LoginWithUser(context.Background(), "race@example.com", "Race")
		if err != nil || sess.User.ID != 8 {
			t.Fatalf("unexpected result: %+v, %v", sess, err)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := newTestAuth(&mockUserRepo{}).LoginWithUser(context.Background(), "  ", "x")
		var ve *ValidationError
		if !errors.As(err, &ve) || !strings.Contains(err.Error(), "email") {
			t.Fatalf("expected email validation error, got %v", err)
		}
	})
}
