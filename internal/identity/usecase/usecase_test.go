package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/healthmate/healthmate/internal/identity/entity"
	"github.com/healthmate/healthmate/internal/pkg/config"
	"github.com/healthmate/healthmate/internal/pkg/goerror"
	"github.com/healthmate/healthmate/internal/pkg/hash"
	"github.com/healthmate/healthmate/internal/pkg/idempotency"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/jwt"
	"github.com/healthmate/healthmate/internal/pkg/otp"
	"github.com/healthmate/healthmate/internal/pkg/validator"
)

var testNow = time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type fakeOID struct{ n int }

func (f *fakeOID) Generate() string {
	f.n++
	return fmt.Sprintf("oid-%03d", f.n)
}

type fakeJWT struct{}

func (fakeJWT) Generate(uid, email string) (string, error) { return "token-" + uid, nil }

func (fakeJWT) Verify(tokenStr string) (jwt.Claims, error) { return jwt.Claims{}, nil }

type fakeRepo struct {
	users map[string]*entity.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]*entity.User{}}
}

func (f *fakeRepo) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := f.GetUserByUsername(ctx, username)
	return err == nil, nil
}

func (f *fakeRepo) CreateUser(_ context.Context, user entity.User) error {
	if _, ok := f.users[user.ID]; ok {
		return goerror.ErrConflict
	}
	f.users[user.ID] = &user
	return nil
}

func (f *fakeRepo) UpdateUserStatus(_ context.Context, id string, status entity.UserStatus) error {
	u, ok := f.users[id]
	if !ok {
		return goerror.ErrNotFound
	}
	u.Status = status
	return nil
}

func (f *fakeRepo) UpdateUserPassword(_ context.Context, email, passwordHash string) error {
	for _, u := range f.users {
		if u.Email == email {
			u.Password = passwordHash
			return nil
		}
	}
	return goerror.ErrNotFound
}

func (f *fakeRepo) UpdateUserUsername(_ context.Context, email, username string) error {
	for _, u := range f.users {
		if u.Email == email {
			u.Username = username
			return nil
		}
	}
	return goerror.ErrNotFound
}

func (f *fakeRepo) UpdateUserMetrics(_ context.Context, id string, m entity.UserMetrics) error {
	u, ok := f.users[id]
	if !ok {
		return goerror.ErrNotFound
	}
	u.Weight, u.Height, u.Age = m.Weight, m.Height, m.Age
	u.ActivityLevel, u.HealthGoal = m.ActivityLevel, m.HealthGoal
	return nil
}

func (f *fakeRepo) UpdateUserAvatar(_ context.Context, id string, avatarURL string) error {
	u, ok := f.users[id]
	if !ok {
		return goerror.ErrNotFound
	}
	u.AvatarURL = avatarURL
	return nil
}

type fakeMessaging struct {
	otps    []OtpRequestedEvent
	metrics []UserMetricsUpdatedEvent
}

func (f *fakeMessaging) PublishOtpRequested(_ context.Context, msg OtpRequestedEvent) error {
	f.otps = append(f.otps, msg)
	return nil
}

func (f *fakeMessaging) PublishUserMetricsUpdated(_ context.Context, msg UserMetricsUpdatedEvent) error {
	f.metrics = append(f.metrics, msg)
	return nil
}

type fakeIdemp struct {
	blocked bool
	execs   int
}

func (f *fakeIdemp) Acquire(context.Context, string, time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}

func (f *fakeIdemp) MarkCompleted(context.Context, string, time.Duration) error { return nil }

func (f *fakeIdemp) MarkFailed(context.Context, string, time.Duration) error { return nil }

func (f *fakeIdemp) Exec(ctx context.Context, _ string, fn func(context.Context) error, _ ...idempotency.Option) error {
	if f.blocked {
		return idempotency.ErrAlreadyInProgress
	}
	f.execs++
	return fn(ctx)
}

type testEnv struct {
	uc    *Usecase
	repo  *fakeRepo
	msg   *fakeMessaging
	idemp *fakeIdemp
	clk   *fakeClock
	otp   otp.Registry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
modules:
  identity:
    otp_resend_guard_seconds: 60
`))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	clk := &fakeClock{now: testNow}
	env := &testEnv{
		repo:  newFakeRepo(),
		msg:   &fakeMessaging{},
		idemp: &fakeIdemp{},
		clk:   clk,
		otp:   otp.NewMemory(5*time.Minute, clk),
	}
	env.uc = New(Dependency{
		RepoDB:        env.repo,
		RepoMessaging: env.msg,
		Idempotency:   env.idemp,
		Validator:     v,
		Config:        cfg,
		HMAC:          hash.NewHMACSHA256("test-secret"),
		Bcrypt:        hash.NewBcrypt(4, ""),
		UUID:          &fakeOID{},
		OID:           &fakeOID{},
		Otp:           env.otp,
		Clock:         clk,
		JWT:           fakeJWT{},
		Instrument:    instrument.NewNoop(),
	})
	return env
}

func (e *testEnv) seedActiveUser(t *testing.T, username, email, password string) *entity.User {
	t.Helper()

	hashed, err := hash.NewBcrypt(4, "").Hash(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &entity.User{
		ID:            "user-" + username,
		Username:      username,
		Email:         email,
		Password:      string(hashed),
		Age:           30,
		Height:        175,
		Weight:        70,
		ActivityLevel: "sedentary",
		HealthGoal:    "maintain",
		Status:        entity.UserStatusActive,
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
	}
	e.repo.users[user.ID] = user
	return user
}

func registerInput() RegisterInput {
	return RegisterInput{
		Username:      "newuser",
		Email:         "New.User@Example.com",
		Password:      "s3cretPass",
		Age:           25,
		Height:        180,
		Weight:        75,
		ActivityLevel: "medium",
		HealthGoal:    "muscle gain",
	}
}

func assertCode(t *testing.T, err error, want goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %v", err)
	}
	if gerr.Code() != want {
		t.Fatalf("expected code %v, got %v", want, gerr.Code())
	}
}

func TestRegister(t *testing.T) {
	t.Run("CreatesUnverifiedUserAndSendsOtp", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)

		// Act
		err := env.uc.Register(context.Background(), registerInput())

		// Assert
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		user, err := env.repo.GetUserByEmail(context.Background(), "new.user@example.com")
		if err != nil {
			t.Fatalf("user not stored under lowercased email: %v", err)
		}
		if user.Status != entity.UserStatusUnverified {
			t.Fatalf("expected unverified status, got %v", user.Status)
		}
		if user.Password == "s3cretPass" {
			t.Fatal("password stored in plaintext")
		}
		if len(env.msg.otps) != 1 {
			t.Fatalf("expected 1 otp event, got %d", len(env.msg.otps))
		}
		evt := env.msg.otps[0]
		if evt.Purpose != entity.OtpPurposeEmailVerification || len(evt.Code) != 6 {
			t.Fatalf("unexpected otp event: %+v", evt)
		}
	})

	t.Run("UsernameTaken", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.seedActiveUser(t, "newuser", "other@example.com", "whatever1")

		// Act
		err := env.uc.Register(context.Background(), registerInput())

		// Assert
		assertCode(t, err, goerror.CodeConflict)
	})

	t.Run("EmailInUse", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.seedActiveUser(t, "someone", "new.user@example.com", "whatever1")

		// Act
		err := env.uc.Register(context.Background(), registerInput())

		// Assert
		assertCode(t, err, goerror.CodeConflict)
	})

	t.Run("RejectsShortPassword", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		in := registerInput()
		in.Password = "short"

		// Act
		err := env.uc.Register(context.Background(), in)

		// Assert
		assertCode(t, err, goerror.CodeInvalidInput)
	})
}

func TestRegisterVerify(t *testing.T) {
	t.Run("ActivatesUserAndConsumesCode", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		if err := env.uc.Register(context.Background(), registerInput()); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		code := env.msg.otps[0].Code

		// Act
		err := env.uc.RegisterVerify(context.Background(), RegisterVerifyInput{
			Email: "new.user@example.com",
			Code:  code,
		})

		// Assert
		if err != nil {
			t.Fatalf("RegisterVerify failed: %v", err)
		}
		user, _ := env.repo.GetUserByEmail(context.Background(), "new.user@example.com")
		if user.Status != entity.UserStatusActive {
			t.Fatalf("expected active status, got %v", user.Status)
		}

		// the code is single-use
		err = env.uc.RegisterVerify(context.Background(), RegisterVerifyInput{
			Email: "new.user@example.com",
			Code:  code,
		})
		assertCode(t, err, goerror.CodeInvalidInput)
	})

	t.Run("WrongCodeRejected", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		if err := env.uc.Register(context.Background(), registerInput()); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		// Act
		err := env.uc.RegisterVerify(context.Background(), RegisterVerifyInput{
			Email: "new.user@example.com",
			Code:  "000000",
		})

		// Assert
		assertCode(t, err, goerror.CodeInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	t.Run("ReturnsTokenForActiveUser", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		user := env.seedActiveUser(t, "johndoe", "john@example.com", "s3cretPass")

		// Act
		out, err := env.uc.Login(context.Background(), LoginInput{
			Username: "johndoe",
			Password: "s3cretPass",
		})

		// Assert
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if out.AccessToken != "token-"+user.ID {
			t.Fatalf("unexpected token: %s", out.AccessToken)
		}
		if out.UserID != user.ID || out.Email != user.Email {
			t.Fatalf("unexpected output: %+v", out)
		}
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)

		// Act
		_, err := env.uc.Login(context.Background(), LoginInput{
			Username: "ghost",
			Password: "whatever1",
		})

		// Assert
		assertCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.seedActiveUser(t, "johndoe", "john@example.com", "s3cretPass")

		// Act
		_, err := env.uc.Login(context.Background(), LoginInput{
			Username: "johndoe",
			Password: "wrongPass1",
		})

		// Assert
		assertCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("UnverifiedUserForbidden", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		user := env.seedActiveUser(t, "johndoe", "john@example.com", "s3cretPass")
		user.Status = entity.UserStatusUnverified

		// Act
		_, err := env.uc.Login(context.Background(), LoginInput{
			Username: "johndoe",
			Password: "s3cretPass",
		})

		// Assert
		assertCode(t, err, goerror.CodeForbidden)
	})
}

func TestOtpSend(t *testing.T) {
	t.Run("PasswordResetForRegisteredEmail", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.seedActiveUser(t, "johndoe", "john@example.com", "s3cretPass")

		// Act
		err := env.uc.OtpSend(context.Background(), OtpSendInput{
			Email:   "John@Example.com",
			Purpose: "password_reset",
		})

		// Assert
		if err != nil {
			t.Fatalf("OtpSend failed: %v", err)
		}
		if len(env.msg.otps) != 1 || env.msg.otps[0].Purpose != entity.OtpPurposePasswordReset {
			t.Fatalf("unexpected otp events: %+v", env.msg.otps)
		}
		if env.msg.otps[0].Email != "john@example.com" {
			t.Fatalf("email not normalized: %s", env.msg.otps[0].Email)
		}
	})

	t.Run("EmailVerificationForRegisteredEmailConflicts", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.seedActiveUser(t, "johndoe", "john@example.com", "s3cretPass")

		// Act
		err := env.uc.OtpSend(context.Background(), OtpSendInput{
			Email:   "john@example.com",
			Purpose: "email_verification",
		})

		// Assert
		assertCode(t, err, goerror.CodeConflict)
	})

	t.Run("PasswordResetForUnknownEmail", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)

		// Act
		err := env.uc.OtpSend(context.Background(), OtpSendInput{
			Email:   "ghost@example.com",
			Purpose: "password_reset",
		})

		// Assert
		assertCode(t, err, goerror.CodeNotFound)
	})

	t.Run("ResendGuardRejectsRapidRetry", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.seedActiveUser(t, "johndoe", "john@example.com", "s3cretPass")
		env.idemp.blocked = true

		// Act
		err := env.uc.OtpSend(context.Background(), OtpSendInput{
			Email:   "john@example.com",
			Purpose: "password_reset",
		})

		// Assert
		assertCode(t, err, goerror.CodeTooManyRequest)
		if env.idemp.execs != 0 {
			t.Fatalf("expected no executions, got %d", env.idemp.execs)
		}
	})

	t.Run("UnknownPurposeRejected", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)

		// Act
		err := env.uc.OtpSend(context.Background(), OtpSendInput{
			Email:   "john@example.com",
			Purpose: "magic_link",
		})

		// Assert
		assertCode(t, err, goerror.CodeInvalidInput)
	})
}

func TestOtpVerify(t *testing.T) {
	t.Run("ValidCodeStaysUsable", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.seedActiveUser(t, "johndoe", "john@example.com", "s3cretPass")
		code := env.otp.Generate("john@example.com")
		in := OtpVerifyInput{Email: "john@example.com", Code: code}

		// Act
		first := env.uc.OtpVerify(context.Background(), in)
		second := env.uc.OtpVerify(context.Background(), in)

		// Assert
		if first != nil || second != nil {
			t.Fatalf("expected both checks to pass, got %v, %v", first, second)
		}
	})

	t.Run("WrongCodeRejected", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.otp.Generate("john@example.com")

		// Act
		err := env.uc.OtpVerify(context.Background(), OtpVerifyInput{
			Email: "john@example.com",
			Code:  "000000",
		})

		// Assert
		assertCode(t, err, goerror.CodeInvalidInput)
	})
}

func TestPasswordReset(t *testing.T) {
	t.Run("UpdatesPasswordAndConsumesCode", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.seedActiveUser(t, "johndoe", "john@example.com", "oldPassword1")
		code := env.otp.Generate("john@example.com")

		// Act
		err := env.uc.PasswordReset(context.Background(), PasswordResetInput{
			Email:       "john@example.com",
			Code:        code,
			NewPassword: "newPassword1",
		})

		// Assert
		if err != nil {
			t.Fatalf("PasswordReset failed: %v", err)
		}
		if _, err := env.uc.Login(context.Background(), LoginInput{
			Username: "johndoe",
			Password: "newPassword1",
		}); err != nil {
			t.Fatalf("login with new password failed: %v", err)
		}

		// the code is burned after a successful reset
		err = env.uc.PasswordReset(context.Background(), PasswordResetInput{
			Email:       "john@example.com",
			Code:        code,
			NewPassword: "anotherPass1",
		})
		assertCode(t, err, goerror.CodeInvalidInput)
	})

	t.Run("ExpiredCodeRejected", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.seedActiveUser(t, "johndoe", "john@example.com", "oldPassword1")
		code := env.otp.Generate("john@example.com")
		env.clk.now = env.clk.now.Add(6 * time.Minute)

		// Act
		err := env.uc.PasswordReset(context.Background(), PasswordResetInput{
			Email:       "john@example.com",
			Code:        code,
			NewPassword: "newPassword1",
		})

		// Assert
		assertCode(t, err, goerror.CodeInvalidInput)
	})
}

func TestUsernameReset(t *testing.T) {
	t.Run("UpdatesUsername", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.seedActiveUser(t, "johndoe", "john@example.com", "s3cretPass")
		code := env.otp.Generate("john@example.com")

		// Act
		err := env.uc.UsernameReset(context.Background(), UsernameResetInput{
			Email:       "john@example.com",
			Code:        code,
			NewUsername: "johnny",
		})

		// Assert
		if err != nil {
			t.Fatalf("UsernameReset failed: %v", err)
		}
		if _, err := env.repo.GetUserByUsername(context.Background(), "johnny"); err != nil {
			t.Fatalf("new username not stored: %v", err)
		}
	})

	t.Run("NewUsernameTaken", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		env.seedActiveUser(t, "johndoe", "john@example.com", "s3cretPass")
		env.seedActiveUser(t, "johnny", "johnny@example.com", "s3cretPass")
		code := env.otp.Generate("john@example.com")

		// Act
		err := env.uc.UsernameReset(context.Background(), UsernameResetInput{
			Email:       "john@example.com",
			Code:        code,
			NewUsername: "johnny",
		})

		// Assert
		assertCode(t, err, goerror.CodeConflict)
	})
}

func TestAvailability(t *testing.T) {
	env := newTestEnv(t)
	env.seedActiveUser(t, "johndoe", "john@example.com", "s3cretPass")

	t.Run("TakenUsername", func(t *testing.T) {
		out, err := env.uc.CheckUsername(context.Background(), CheckUsernameInput{Username: "johndoe"})
		if err != nil {
			t.Fatalf("CheckUsername failed: %v", err)
		}
		if out.Available {
			t.Fatal("expected username to be taken")
		}
	})

	t.Run("FreeUsername", func(t *testing.T) {
		out, err := env.uc.CheckUsername(context.Background(), CheckUsernameInput{Username: "freename"})
		if err != nil {
			t.Fatalf("CheckUsername failed: %v", err)
		}
		if !out.Available {
			t.Fatal("expected username to be available")
		}
	})

	t.Run("UsedEmail", func(t *testing.T) {
		out, err := env.uc.CheckEmail(context.Background(), CheckEmailInput{Email: "John@Example.com"})
		if err != nil {
			t.Fatalf("CheckEmail failed: %v", err)
		}
		if out.Available {
			t.Fatal("expected email to be in use")
		}
	})
}

func TestMetricsUpdate(t *testing.T) {
	t.Run("UpdatesAndPublishes", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		user := env.seedActiveUser(t, "johndoe", "john@example.com", "s3cretPass")
		ctx := jwt.SetAuth(context.Background(), jwt.Claims{UserID: user.ID})

		// Act
		err := env.uc.MetricsUpdate(ctx, MetricsUpdateInput{
			Weight:        82.5,
			Height:        178,
			Age:           31,
			ActivityLevel: "active",
			HealthGoal:    "weight loss",
		})

		// Assert
		if err != nil {
			t.Fatalf("MetricsUpdate failed: %v", err)
		}
		stored, _ := env.repo.GetUserByID(context.Background(), user.ID)
		if stored.Weight != 82.5 || stored.HealthGoal != "weight loss" {
			t.Fatalf("metrics not stored: %+v", stored)
		}
		if len(env.msg.metrics) != 1 || env.msg.metrics[0].UserID != user.ID {
			t.Fatalf("unexpected metrics events: %+v", env.msg.metrics)
		}
	})

	t.Run("RequiresAuthentication", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)

		// Act
		err := env.uc.MetricsUpdate(context.Background(), MetricsUpdateInput{
			Weight:        82.5,
			Height:        178,
			Age:           31,
			ActivityLevel: "active",
			HealthGoal:    "weight loss",
		})

		// Assert
		assertCode(t, err, goerror.CodeUnauthorized)
	})
}

func TestProfile(t *testing.T) {
	t.Run("ReturnsAccountWithoutPassword", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)
		user := env.seedActiveUser(t, "johndoe", "john@example.com", "s3cretPass")
		ctx := jwt.SetAuth(context.Background(), jwt.Claims{UserID: user.ID})

		// Act
		out, err := env.uc.Profile(ctx)

		// Assert
		if err != nil {
			t.Fatalf("Profile failed: %v", err)
		}
		if out.ID != user.ID || out.Username != "johndoe" || out.Email != "john@example.com" {
			t.Fatalf("unexpected profile: %+v", out)
		}
	})

	t.Run("RequiresAuthentication", func(t *testing.T) {
		// Arrange
		env := newTestEnv(t)

		// Act
		_, err := env.uc.Profile(context.Background())

		// Assert
		assertCode(t, err, goerror.CodeUnauthorized)
	})
}
