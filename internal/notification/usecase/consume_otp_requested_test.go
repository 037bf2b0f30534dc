package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/healthmate/healthmate/internal/notification/entity"
	"github.com/healthmate/healthmate/internal/pkg/instrument"
	"github.com/healthmate/healthmate/internal/pkg/mail"
	"github.com/healthmate/healthmate/internal/pkg/validator"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeOID struct {
	n int
}

func (f *fakeOID) Generate() string {
	f.n++
	return fmt.Sprintf("oid-%03d", f.n)
}

type fakeRepo struct {
	logs map[string]entity.EmailLog
}

func (f *fakeRepo) CreateEmailLog(ctx context.Context, log entity.EmailLog) error {
	f.logs[log.ID] = log
	return nil
}

func (f *fakeRepo) UpdateEmailLogStatus(ctx context.Context, id string, status entity.DeliveryStatus, sendErr string) error {
	log := f.logs[id]
	log.Status = status
	log.Error = sendErr
	f.logs[id] = log
	return nil
}

type fakeMail struct {
	failures int
	sent     []mail.Message
}

func (f *fakeMail) Send(ctx context.Context, msg mail.Message) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("smtp connection refused")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestUsecase(t *testing.T, sender *fakeMail) (*Usecase, *fakeRepo) {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	repo := &fakeRepo{logs: map[string]entity.EmailLog{}}
	uc := New(Dependency{
		RepoDB:     repo,
		RepoMail:   sender,
		Validator:  v,
		OID:        &fakeOID{},
		Clock:      &fakeClock{now: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)},
		Instrument: instrument.NewNoop(),
	})

	return uc, repo
}

func TestConsumeOtpRequested(t *testing.T) {

	t.Run("SendsAndMarksLogSent", func(t *testing.T) {

		// Arrange
		sender := &fakeMail{}
		uc, repo := newTestUsecase(t, sender)

		// Act
		err := uc.ConsumeOtpRequested(context.Background(), ConsumeOtpRequestedInput{
			Email:   "a@b.com",
			Code:    "123456",
			Purpose: "email_verification",
		})

		// Assert
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sender.sent) != 1 {
			t.Fatalf("expected one email sent, got %d", len(sender.sent))
		}
		msg := sender.sent[0]
		if msg.Subject != "Verify Your Email - HealthMate" {
			t.Fatalf("unexpected subject %q", msg.Subject)
		}
		if !strings.Contains(msg.HTMLBody, "123456") {
			t.Fatalf("expected the code in the email body")
		}
		if !strings.Contains(msg.HTMLBody, "expires in <strong>1 minute</strong>") {
			t.Fatalf("expected the expiry copy in the email body")
		}
		if len(repo.logs) != 1 {
			t.Fatalf("expected one email log, got %d", len(repo.logs))
		}
		for _, log := range repo.logs {
			if log.Status != entity.DeliveryStatusSent {
				t.Fatalf("expected status sent, got %q", log.Status)
			}
		}
	})

	t.Run("SubjectPerPurpose", func(t *testing.T) {

		// Arrange
		cases := map[string]string{
			"password_reset":     "Password Reset OTP - HealthMate",
			"username_recovery":  "Username Recovery OTP - HealthMate",
			"email_verification": "Verify Your Email - HealthMate",
		}

		for purpose, want := range cases {
			// Act & Assert
			if got := otpSubject(purpose); got != want {
				t.Fatalf("purpose %q: expected %q, got %q", purpose, want, got)
			}
		}
		if got := otpSubject("something_else"); got != "HealthMate OTP" {
			t.Fatalf("expected the default subject, got %q", got)
		}
	})

	t.Run("RetriesTransientFailures", func(t *testing.T) {

		// Arrange
		sender := &fakeMail{failures: 2}
		uc, repo := newTestUsecase(t, sender)

		// Act
		err := uc.ConsumeOtpRequested(context.Background(), ConsumeOtpRequestedInput{
			Email:   "a@b.com",
			Code:    "654321",
			Purpose: "password_reset",
		})

		// Assert
		if err != nil {
			t.Fatalf("expected the retry to recover, got %v", err)
		}
		if len(sender.sent) != 1 {
			t.Fatalf("expected one successful send, got %d", len(sender.sent))
		}
		for _, log := range repo.logs {
			if log.Status != entity.DeliveryStatusSent {
				t.Fatalf("expected status sent after retry, got %q", log.Status)
			}
		}
	})

	t.Run("MarksLogFailedWhenRetriesExhausted", func(t *testing.T) {

		// Arrange
		sender := &fakeMail{failures: 10}
		uc, repo := newTestUsecase(t, sender)

		// Act
		err := uc.ConsumeOtpRequested(context.Background(), ConsumeOtpRequestedInput{
			Email:   "a@b.com",
			Code:    "111111",
			Purpose: "username_recovery",
		})

		// Assert
		if err == nil {
			t.Fatalf("expected an error after exhausting retries")
		}
		for _, log := range repo.logs {
			if log.Status != entity.DeliveryStatusFailed {
				t.Fatalf("expected status failed, got %q", log.Status)
			}
			if log.Error == "" {
				t.Fatalf("expected the send error recorded on the log")
			}
		}
	})

	t.Run("InvalidPayloadDropped", func(t *testing.T) {

		// Arrange
		sender := &fakeMail{}
		uc, repo := newTestUsecase(t, sender)

		// Act
		err := uc.ConsumeOtpRequested(context.Background(), ConsumeOtpRequestedInput{
			Email:   "not-an-email",
			Code:    "12",
			Purpose: "",
		})

		// Assert
		if err != nil {
			t.Fatalf("expected invalid payloads dropped without error, got %v", err)
		}
		if len(sender.sent) != 0 || len(repo.logs) != 0 {
			t.Fatalf("expected no send and no log for invalid payloads")
		}
	})
}
