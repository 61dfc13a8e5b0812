//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tavola-api/internal/domain/reservation"
	"tavola-api/internal/infra/memstore"
	"tavola-api/internal/pkg/clock"
	"tavola-api/internal/usecase"
	"tavola-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type sentMail struct {
	to      string
	toName  string
	subject string
	plain   string
	html    string
}

// fakeMailer records every send and fails on demand.
type fakeMailer struct {
	sent    []sentMail
	failErr error
}

func (m *fakeMailer) Send(_ context.Context, to, toName, subject, plainBody, htmlBody string) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.sent = append(m.sent, sentMail{to: to, toName: toName, subject: subject, plain: plainBody, html: htmlBody})
	return nil
}

// failingRepository injects a backend failure into every call.
type failingRepository struct {
	err error
}

func (r *failingRepository) Create(context.Context, *reservation.Reservation) (*readmodel.ReservationRM, error) {
	return nil, r.err
}

func (r *failingRepository) FindByID(context.Context, uuid.UUID) (*readmodel.ReservationRM, error) {
	return nil, r.err
}

func (r *failingRepository) FindAll(context.Context) ([]*readmodel.ReservationRM, error) {
	return nil, r.err
}

func (r *failingRepository) RespondIfPending(context.Context, uuid.UUID, reservation.Status, time.Time) (*readmodel.ReservationRM, error) {
	return nil, r.err
}

type ReservationUseCaseTestSuite struct {
	suite.Suite
	store  *memstore.ReservationStore
	mailer *fakeMailer
	clock  *clock.MockClock
	uc     usecase.ReservationUseCase
}

func TestReservationUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ReservationUseCaseTestSuite))
}

func (s *ReservationUseCaseTestSuite) SetupTest() {
	s.store = memstore.NewReservationStore()
	s.mailer = &fakeMailer{}
	s.clock = clock.NewMockClock(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))
	s.uc = usecase.NewReservationUseCase(s.store, s.mailer, s.clock)
}

func (s *ReservationUseCaseTestSuite) validParams() usecase.SubmitReservationParams {
	return usecase.SubmitReservationParams{
		Name:            "Mario Rossi",
		Email:           "mario@example.com",
		Phone:           "+39 055 123456",
		Date:            "2026-09-12",
		Time:            "19:30",
		Guests:          "4",
		SpecialRequests: "window table",
	}
}

func (s *ReservationUseCaseTestSuite) submit() *usecase.IntakeResult {
	result, err := s.uc.SubmitReservation(s.T().Context(), s.validParams())
	s.Require().NoError(err)
	return result
}

func (s *ReservationUseCaseTestSuite) TestSubmitReservation() {
	s.Run("returns only id and creation time", func() {
		result := s.submit()

		s.NotEqual(uuid.Nil, result.ID)
		s.Equal(s.clock.Now(), result.CreatedAt)
	})

	s.Run("stores the full record as pending", func() {
		result := s.submit()

		rm, err := s.uc.GetReservation(s.T().Context(), result.ID)
		s.Require().NoError(err)
		s.Equal("pending", rm.Status)
		s.Equal("Mario Rossi", rm.Name)
		s.Nil(rm.RespondedAt)
	})

	s.Run("sends no email on intake", func() {
		s.submit()

		s.Empty(s.mailer.sent)
	})

	s.Run("rejects a submission with a missing field", func() {
		for _, mutate := range []func(*usecase.SubmitReservationParams){
			func(p *usecase.SubmitReservationParams) { p.Name = "" },
			func(p *usecase.SubmitReservationParams) { p.Email = "" },
			func(p *usecase.SubmitReservationParams) { p.Phone = "" },
			func(p *usecase.SubmitReservationParams) { p.Date = "" },
			func(p *usecase.SubmitReservationParams) { p.Time = " " },
			func(p *usecase.SubmitReservationParams) { p.Guests = "" },
		} {
			params := s.validParams()
			mutate(&params)

			_, err := s.uc.SubmitReservation(s.T().Context(), params)
			s.ErrorIs(err, usecase.ErrMissingFields)
		}
	})

	s.Run("reports a backend failure", func() {
		uc := usecase.NewReservationUseCase(&failingRepository{err: errors.New("connection refused")}, s.mailer, s.clock)

		_, err := uc.SubmitReservation(s.T().Context(), s.validParams())
		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
	})
}

func (s *ReservationUseCaseTestSuite) TestListReservations() {
	s.Run("newest first", func() {
		first := s.submit()
		s.clock.Advance(time.Minute)
		second := s.submit()
		s.clock.Advance(time.Minute)
		third := s.submit()

		list, err := s.uc.ListReservations(s.T().Context())
		s.Require().NoError(err)
		s.Require().Len(list, 3)
		s.Equal(third.ID, list[0].ID)
		s.Equal(second.ID, list[1].ID)
		s.Equal(first.ID, list[2].ID)
	})

	s.Run("empty store lists nothing", func() {
		list, err := s.uc.ListReservations(s.T().Context())
		s.Require().NoError(err)
		s.Empty(list)
	})
}

func (s *ReservationUseCaseTestSuite) TestRespondToReservation() {
	s.Run("accept transitions and notifies the guest", func() {
		created := s.submit()
		s.clock.Advance(time.Hour)

		result, err := s.uc.RespondToReservation(s.T().Context(), created.ID, "accepted")
		s.Require().NoError(err)

		s.Equal("accepted", result.Reservation.Status)
		s.Require().NotNil(result.Reservation.RespondedAt)
		s.Equal(s.clock.Now(), *result.Reservation.RespondedAt)
		s.True(result.EmailSent)
		s.Empty(result.EmailError)

		s.Require().Len(s.mailer.sent, 1)
		s.Equal("mario@example.com", s.mailer.sent[0].to)
		s.Contains(s.mailer.sent[0].plain, "2026-09-12")
		s.Contains(s.mailer.sent[0].plain, "19:30")
	})

	s.Run("reject transitions and notifies the guest", func() {
		created := s.submit()

		result, err := s.uc.RespondToReservation(s.T().Context(), created.ID, "rejected")
		s.Require().NoError(err)

		s.Equal("rejected", result.Reservation.Status)
		s.True(result.EmailSent)
		s.Require().Len(s.mailer.sent, 1)
	})

	s.Run("invalid status values are rejected before any write", func() {
		created := s.submit()

		for _, raw := range []string{"pending", "", "maybe", "ACCEPTED"} {
			_, err := s.uc.RespondToReservation(s.T().Context(), created.ID, raw)
			s.ErrorIs(err, usecase.ErrInvalidResponseStatus)
		}

		rm, err := s.uc.GetReservation(s.T().Context(), created.ID)
		s.Require().NoError(err)
		s.Equal("pending", rm.Status)
		s.Empty(s.mailer.sent)
	})

	s.Run("unknown reservation is not found", func() {
		_, err := s.uc.RespondToReservation(s.T().Context(), uuid.New(), "accepted")
		s.ErrorIs(err, usecase.ErrReservationNotFound)
	})

	s.Run("second response conflicts and keeps the first outcome", func() {
		created := s.submit()

		_, err := s.uc.RespondToReservation(s.T().Context(), created.ID, "accepted")
		s.Require().NoError(err)

		_, err = s.uc.RespondToReservation(s.T().Context(), created.ID, "rejected")
		s.ErrorIs(err, usecase.ErrAlreadyResponded)

		rm, err := s.uc.GetReservation(s.T().Context(), created.ID)
		s.Require().NoError(err)
		s.Equal("accepted", rm.Status)
		s.Require().Len(s.mailer.sent, 1)
	})

	s.Run("email failure does not undo the transition", func() {
		created := s.submit()
		s.mailer.failErr = errors.New("sendgrid: 503 service unavailable")

		result, err := s.uc.RespondToReservation(s.T().Context(), created.ID, "accepted")
		s.Require().NoError(err)

		s.False(result.EmailSent)
		s.Contains(result.EmailError, "503")
		s.Equal("accepted", result.Reservation.Status)

		rm, err := s.uc.GetReservation(s.T().Context(), created.ID)
		s.Require().NoError(err)
		s.Equal("accepted", rm.Status)
	})
}
