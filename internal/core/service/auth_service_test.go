package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nefroclinica/clinic-system/internal/core/domain"
	"github.com/nefroclinica/clinic-system/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	for email, u := range r.users {
		if u.ID == user.ID {
			delete(r.users, email)
			r.users[user.Email] = cloneUser(user)
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubNotifier struct {
	welcomes   []string
	qrMailings [][]string
	fail       bool
}

func (n *stubNotifier) SendPatientQR(_ context.Context, _ string, recipients []string, _ []byte) error {
	if n.fail {
		return context.DeadlineExceeded
	}
	n.qrMailings = append(n.qrMailings, recipients)
	return nil
}

func (n *stubNotifier) SendWelcome(_ context.Context, user *domain.User) error {
	if n.fail {
		return context.DeadlineExceeded
	}
	n.welcomes = append(n.welcomes, user.Email)
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *stubUserRepo, *stubNotifier) {
	t.Helper()
	repo := newStubUserRepo()
	notifier := &stubNotifier{}
	svc := NewAuthService(repo, newTestCodec(t, time.Hour), notifier, zerolog.Nop())
	return svc, repo, notifier
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, notifier := newTestAuthService(t)

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Nombre:   "Ana",
		Apellido: "García",
		Email:    "ana@clinica.com",
		Password: "s3cret!",
		Rol:      domain.RoleMedico,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "s3cret!" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret!")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(notifier.welcomes) != 1 || notifier.welcomes[0] != "ana@clinica.com" {
		t.Fatalf("expected welcome mail, got %v", notifier.welcomes)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)

	cases := []ports.RegisterInput{
		{Email: "", Password: "pass", Rol: domain.RoleAdmin},
		{Email: "x@clinica.com", Password: "", Rol: domain.RoleAdmin},
		{Email: "x@clinica.com", Password: "pass", Rol: ""},
		{Email: "x@clinica.com", Password: "pass", Rol: "SUPERVISOR"},
	}
	for _, in := range cases {
		if _, _, err := svc.Register(context.Background(), in); err != domain.ErrMissingFields {
			t.Fatalf("input %+v: expected ErrMissingFields, got %v", in, err)
		}
	}
	if len(repo.users) != 0 {
		t.Fatalf("nothing should be persisted on validation failure")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	in := ports.RegisterInput{Email: "dup@clinica.com", Password: "pass", Rol: domain.RoleTecnico}
	if _, _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), in); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_MailFailureDoesNotBlock(t *testing.T) {
	svc, _, notifier := newTestAuthService(t)
	notifier.fail = true

	token, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "ana@clinica.com", Password: "pass", Rol: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("register must succeed despite mail outage: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token despite mail outage")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "carla@clinica.com", Password: "buenpass", Rol: domain.RoleEnfermero,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carla@clinica.com", "buenpass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user == nil || user.Rol != domain.RoleEnfermero {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, _, _ = svc.Register(context.Background(), ports.RegisterInput{
		Email: "david@clinica.com", Password: "correcto", Rol: domain.RoleMedico,
	})
	if _, _, err := svc.Login(context.Background(), "david@clinica.com", "incorrecto"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	// Unknown accounts answer exactly like bad passwords.
	if _, _, err := svc.Login(context.Background(), "fantasma@clinica.com", "da-igual"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
