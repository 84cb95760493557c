package admission

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/huntlabs/treasurehunt/internal/common/clock/mocks"
	uuidMocks "github.com/huntlabs/treasurehunt/internal/common/uuid/mocks"
	"github.com/huntlabs/treasurehunt/internal/eventbus"
	busMocks "github.com/huntlabs/treasurehunt/internal/eventbus/mocks"
	"github.com/huntlabs/treasurehunt/internal/models"
	clickRepo "github.com/huntlabs/treasurehunt/internal/repositories/clicklog"
	clickMocks "github.com/huntlabs/treasurehunt/internal/repositories/clicklog/mocks"
	participantRepo "github.com/huntlabs/treasurehunt/internal/repositories/participant"
	participantMocks "github.com/huntlabs/treasurehunt/internal/repositories/participant/mocks"
	roundRepo "github.com/huntlabs/treasurehunt/internal/repositories/round"
	roundMocks "github.com/huntlabs/treasurehunt/internal/repositories/round/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdmissionServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockParticipantRepo *participantMocks.MockRepository
	mockRoundRepo       *roundMocks.MockRepository
	mockClickRepo       *clickMocks.MockRepository
	mockClock           *clockMocks.MockClock
	mockUUID            *uuidMocks.MockUUID
	mockBus             *busMocks.MockBus
	admissionService    Service
	ctx                 context.Context

	// Test data
	testTime          time.Time
	testParticipantID string
	testDisplayName   string
	testClickID       string
	testDestination   string

	// Reusable test fixtures
	roundOneSettings     *models.RoundSettings
	roundOffSettings     *models.RoundSettings
	playingParticipant   *models.Participant
	qualifiedParticipant *models.Participant
}

func (s *AdmissionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockParticipantRepo = participantMocks.NewMockRepository(s.mockCtrl)
	s.mockRoundRepo = roundMocks.NewMockRepository(s.mockCtrl)
	s.mockClickRepo = clickMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockBus = busMocks.NewMockBus(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
	s.testParticipantID = "abc-123"
	s.testDisplayName = "Test Player"
	s.testClickID = "test-click-id"
	s.testDestination = "/roundtwo-a1b2c3d4e5f6789"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	// Initialize reusable test fixtures
	s.roundOneSettings = &models.RoundSettings{
		ActiveRound: models.RoundOne,
		LastUpdated: s.testTime,
	}
	s.roundOffSettings = &models.RoundSettings{
		ActiveRound: models.RoundInactive,
		LastUpdated: s.testTime,
	}
	s.playingParticipant = &models.Participant{
		ID:           s.testParticipantID,
		DisplayName:  s.testDisplayName,
		Status:       models.ParticipantStatusPlaying,
		RegisteredAt: s.testTime,
	}
	s.qualifiedParticipant = &models.Participant{
		ID:                  s.testParticipantID,
		DisplayName:         s.testDisplayName,
		Status:              models.ParticipantStatusQualified,
		ElapsedMs:           42000,
		QualificationMethod: models.QualificationMethodTimed,
		RegisteredAt:        s.testTime,
	}

	svc, err := New(&Config{
		ParticipantRepo: s.mockParticipantRepo,
		RoundRepo:       s.mockRoundRepo,
		ClickLogRepo:    s.mockClickRepo,
		Clock:           s.mockClock,
		UUIDGenerator:   s.mockUUID,
		EventBus:        s.mockBus,
	})
	s.Require().NoError(err)
	s.admissionService = svc
}

func (s *AdmissionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdmissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdmissionServiceTestSuite))
}

func (s *AdmissionServiceTestSuite) expectClickAppend(linkID string, wasGenuine bool) {
	s.mockUUID.EXPECT().NewUUID().Return(s.testClickID)
	s.mockClickRepo.EXPECT().AddClick(gomock.Any(), &clickRepo.AddClickInput{
		Record: &models.ClickRecord{
			ID:            s.testClickID,
			ParticipantID: s.testParticipantID,
			LinkID:        linkID,
			WasGenuine:    wasGenuine,
			Timestamp:     s.testTime,
		},
	}).Return(nil)
}

func (s *AdmissionServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilParticipantRepo, err)

	_, err = New(&Config{
		ParticipantRepo: s.mockParticipantRepo,
	})
	s.Equal(ErrNilRoundRepo, err)
}

func (s *AdmissionServiceTestSuite) TestRegisterCreatesNewParticipant() {
	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), &participantRepo.GetParticipantInput{
			ParticipantID: s.testParticipantID,
		}).
		Return(nil, participantRepo.ErrParticipantNotFound)

	s.mockParticipantRepo.EXPECT().
		SaveParticipant(gomock.Any(), &participantRepo.SaveParticipantInput{
			Participant: s.playingParticipant,
		}).
		Return(nil)

	s.mockBus.EXPECT().Publish(eventbus.RoomAdmin, eventbus.Event{
		Type: eventbus.EventTypePlayerUpdate,
		Payload: eventbus.PlayerUpdatePayload{
			UpdateType:  eventbus.UpdateTypeRegistration,
			Participant: s.playingParticipant,
		},
	})

	output, err := s.admissionService.Register(s.ctx, &RegisterInput{
		ParticipantID: s.testParticipantID,
		DisplayName:   s.testDisplayName,
	})
	s.Require().NoError(err)
	s.False(output.AlreadyRegistered)
	s.Equal(models.ParticipantStatusPlaying, output.Participant.Status)
}

func (s *AdmissionServiceTestSuite) TestRegisterIsIdempotent() {
	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(s.playingParticipant, nil)

	output, err := s.admissionService.Register(s.ctx, &RegisterInput{
		ParticipantID: s.testParticipantID,
		DisplayName:   s.testDisplayName,
	})
	s.Require().NoError(err)
	s.True(output.AlreadyRegistered)
}

func (s *AdmissionServiceTestSuite) TestRegisterRenamesExistingParticipant() {
	existing := &models.Participant{
		ID:           s.testParticipantID,
		DisplayName:  "Old Name",
		Status:       models.ParticipantStatusPlaying,
		RegisteredAt: s.testTime,
	}

	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(existing, nil)

	s.mockParticipantRepo.EXPECT().
		SaveParticipant(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockBus.EXPECT().Publish(eventbus.RoomAdmin, gomock.Any())

	output, err := s.admissionService.Register(s.ctx, &RegisterInput{
		ParticipantID: s.testParticipantID,
		DisplayName:   "New Name",
	})
	s.Require().NoError(err)
	s.True(output.AlreadyRegistered)
	s.Equal("New Name", output.Participant.DisplayName)
}

func (s *AdmissionServiceTestSuite) TestRegisterValidatesInput() {
	_, err := s.admissionService.Register(s.ctx, nil)
	s.Equal(ErrMissingParticipantID, err)

	_, err = s.admissionService.Register(s.ctx, &RegisterInput{
		ParticipantID: s.testParticipantID,
	})
	s.Equal(ErrMissingDisplayName, err)
}

func (s *AdmissionServiceTestSuite) TestAttemptQualifyFailsWhenRoundNotActive() {
	for _, settings := range []*models.RoundSettings{
		s.roundOffSettings,
		{ActiveRound: models.RoundTwo, LastUpdated: s.testTime},
		{ActiveRound: models.RoundThree, LastUpdated: s.testTime},
	} {
		s.mockRoundRepo.EXPECT().
			GetSettings(gomock.Any(), gomock.Any()).
			Return(settings, nil)

		_, err := s.admissionService.AttemptQualify(s.ctx, &AttemptQualifyInput{
			ParticipantID:      s.testParticipantID,
			ClaimedDestination: s.testDestination,
			ElapsedMs:          42000,
		})
		s.Equal(ErrRoundNotActive, err)
	}
}

func (s *AdmissionServiceTestSuite) TestAttemptQualifyUnknownParticipantWithoutName() {
	s.mockRoundRepo.EXPECT().
		GetSettings(gomock.Any(), gomock.Any()).
		Return(s.roundOneSettings, nil)

	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(nil, participantRepo.ErrParticipantNotFound)

	_, err := s.admissionService.AttemptQualify(s.ctx, &AttemptQualifyInput{
		ParticipantID:      s.testParticipantID,
		ClaimedDestination: s.testDestination,
		ElapsedMs:          42000,
	})
	s.Equal(ErrParticipantNotFound, err)
}

func (s *AdmissionServiceTestSuite) TestAttemptQualifyRejectsInvalidDestination() {
	s.mockRoundRepo.EXPECT().
		GetSettings(gomock.Any(), gomock.Any()).
		Return(s.roundOneSettings, nil)

	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(s.playingParticipant, nil)

	// The bogus submission still lands in the audit log
	s.expectClickAppend("/decoy/page1", false)

	_, err := s.admissionService.AttemptQualify(s.ctx, &AttemptQualifyInput{
		ParticipantID:      s.testParticipantID,
		ClaimedDestination: "/decoy/page1",
		ElapsedMs:          42000,
	})
	s.Equal(ErrInvalidDestination, err)
}

func (s *AdmissionServiceTestSuite) TestAttemptQualifySucceeds() {
	s.mockRoundRepo.EXPECT().
		GetSettings(gomock.Any(), gomock.Any()).
		Return(s.roundOneSettings, nil)

	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(s.playingParticipant, nil).
		Times(2)

	s.expectClickAppend(s.testDestination, true)

	s.mockParticipantRepo.EXPECT().
		GetQuotaUsed(gomock.Any(), gomock.Any()).
		Return(&participantRepo.GetQuotaUsedOutput{Count: 3}, nil)

	s.mockParticipantRepo.EXPECT().
		QualifyParticipant(gomock.Any(), &participantRepo.QualifyParticipantInput{
			Participant: s.qualifiedParticipant,
		}).
		Return(&participantRepo.QualifyParticipantOutput{Count: 4}, nil)

	s.mockBus.EXPECT().Publish(eventbus.RoomBroadcast, eventbus.Event{
		Type: eventbus.EventTypePlayerUpdate,
		Payload: eventbus.PlayerUpdatePayload{
			UpdateType:  eventbus.UpdateTypeQualification,
			Participant: s.qualifiedParticipant,
		},
	})

	output, err := s.admissionService.AttemptQualify(s.ctx, &AttemptQualifyInput{
		ParticipantID:      s.testParticipantID,
		ClaimedDestination: s.testDestination,
		ElapsedMs:          42000,
	})
	s.Require().NoError(err)
	s.True(output.Qualified)
	s.False(output.AlreadyQualified)
	s.Equal(models.ParticipantStatusQualified, output.Participant.Status)
	s.Equal(int64(42000), output.Participant.ElapsedMs)
	s.Equal(models.QualificationMethodTimed, output.Participant.QualificationMethod)
}

func (s *AdmissionServiceTestSuite) TestAttemptQualifyFailedAdmissionLeavesNoHalfState() {
	storeErr := errors.New("connection reset")

	firstRead := &models.Participant{
		ID:           s.testParticipantID,
		DisplayName:  s.testDisplayName,
		Status:       models.ParticipantStatusPlaying,
		RegisteredAt: s.testTime,
	}
	retryRead := &models.Participant{
		ID:           s.testParticipantID,
		DisplayName:  s.testDisplayName,
		Status:       models.ParticipantStatusPlaying,
		RegisteredAt: s.testTime,
	}

	s.mockRoundRepo.EXPECT().
		GetSettings(gomock.Any(), gomock.Any()).
		Return(s.roundOneSettings, nil).
		Times(2)

	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(firstRead, nil).
		Times(2)

	s.expectClickAppend(s.testDestination, true)

	s.mockParticipantRepo.EXPECT().
		GetQuotaUsed(gomock.Any(), gomock.Any()).
		Return(&participantRepo.GetQuotaUsedOutput{Count: 3}, nil)

	// The admission write fails; nothing may be published
	s.mockParticipantRepo.EXPECT().
		QualifyParticipant(gomock.Any(), gomock.Any()).
		Return(nil, storeErr)

	_, err := s.admissionService.AttemptQualify(s.ctx, &AttemptQualifyInput{
		ParticipantID:      s.testParticipantID,
		ClaimedDestination: s.testDestination,
		ElapsedMs:          42000,
	})
	s.Require().Error(err)
	s.ErrorIs(err, storeErr)

	// The retry sees a participant still Playing and takes the normal
	// admission path, not the already-qualified replay
	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(retryRead, nil).
		Times(2)

	s.expectClickAppend(s.testDestination, true)

	s.mockParticipantRepo.EXPECT().
		GetQuotaUsed(gomock.Any(), gomock.Any()).
		Return(&participantRepo.GetQuotaUsedOutput{Count: 3}, nil)

	s.mockParticipantRepo.EXPECT().
		QualifyParticipant(gomock.Any(), &participantRepo.QualifyParticipantInput{
			Participant: s.qualifiedParticipant,
		}).
		Return(&participantRepo.QualifyParticipantOutput{Count: 4}, nil)

	s.mockBus.EXPECT().Publish(eventbus.RoomBroadcast, eventbus.Event{
		Type: eventbus.EventTypePlayerUpdate,
		Payload: eventbus.PlayerUpdatePayload{
			UpdateType:  eventbus.UpdateTypeQualification,
			Participant: s.qualifiedParticipant,
		},
	})

	output, err := s.admissionService.AttemptQualify(s.ctx, &AttemptQualifyInput{
		ParticipantID:      s.testParticipantID,
		ClaimedDestination: s.testDestination,
		ElapsedMs:          42000,
	})
	s.Require().NoError(err)
	s.True(output.Qualified)
	s.False(output.AlreadyQualified)
}

func (s *AdmissionServiceTestSuite) TestAttemptQualifyIsIdempotentWhenAlreadyQualified() {
	s.mockRoundRepo.EXPECT().
		GetSettings(gomock.Any(), gomock.Any()).
		Return(s.roundOneSettings, nil)

	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(s.qualifiedParticipant, nil)

	// No quota read, no save, no event
	output, err := s.admissionService.AttemptQualify(s.ctx, &AttemptQualifyInput{
		ParticipantID:      s.testParticipantID,
		ClaimedDestination: s.testDestination,
		ElapsedMs:          99999,
	})
	s.Require().NoError(err)
	s.True(output.Qualified)
	s.True(output.AlreadyQualified)
	s.Equal(int64(42000), output.Participant.ElapsedMs)
}

func (s *AdmissionServiceTestSuite) TestAttemptQualifyMarksFailedWhenQuotaFull() {
	failedParticipant := &models.Participant{
		ID:           s.testParticipantID,
		DisplayName:  s.testDisplayName,
		Status:       models.ParticipantStatusFailed,
		RegisteredAt: s.testTime,
	}

	s.mockRoundRepo.EXPECT().
		GetSettings(gomock.Any(), gomock.Any()).
		Return(s.roundOneSettings, nil)

	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(s.playingParticipant, nil).
		Times(2)

	s.expectClickAppend(s.testDestination, true)

	s.mockParticipantRepo.EXPECT().
		GetQuotaUsed(gomock.Any(), gomock.Any()).
		Return(&participantRepo.GetQuotaUsedOutput{Count: DefaultMaxQualified}, nil)

	s.mockParticipantRepo.EXPECT().
		SaveParticipant(gomock.Any(), &participantRepo.SaveParticipantInput{
			Participant: failedParticipant,
		}).
		Return(nil)

	s.mockBus.EXPECT().Publish(eventbus.RoomBroadcast, eventbus.Event{
		Type: eventbus.EventTypePlayerUpdate,
		Payload: eventbus.PlayerUpdatePayload{
			UpdateType:  eventbus.UpdateTypeStatus,
			Participant: failedParticipant,
		},
	})

	output, err := s.admissionService.AttemptQualify(s.ctx, &AttemptQualifyInput{
		ParticipantID:      s.testParticipantID,
		ClaimedDestination: s.testDestination,
		ElapsedMs:          42000,
	})
	s.Require().NoError(err)
	s.False(output.Qualified)
	s.Equal(models.ParticipantStatusFailed, output.Participant.Status)
}

func (s *AdmissionServiceTestSuite) TestAttemptQualifyRejectsDisqualifiedParticipant() {
	disqualified := &models.Participant{
		ID:           s.testParticipantID,
		DisplayName:  s.testDisplayName,
		Status:       models.ParticipantStatusDisqualified,
		RegisteredAt: s.testTime,
	}

	s.mockRoundRepo.EXPECT().
		GetSettings(gomock.Any(), gomock.Any()).
		Return(s.roundOneSettings, nil)

	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(disqualified, nil)

	_, err := s.admissionService.AttemptQualify(s.ctx, &AttemptQualifyInput{
		ParticipantID:      s.testParticipantID,
		ClaimedDestination: s.testDestination,
		ElapsedMs:          42000,
	})
	s.Equal(ErrParticipantDisqualified, err)
}

func (s *AdmissionServiceTestSuite) TestAttemptQualifySurfacesStoreErrors() {
	storeErr := errors.New("connection refused")

	s.mockRoundRepo.EXPECT().
		GetSettings(gomock.Any(), gomock.Any()).
		Return(nil, storeErr)

	_, err := s.admissionService.AttemptQualify(s.ctx, &AttemptQualifyInput{
		ParticipantID:      s.testParticipantID,
		ClaimedDestination: s.testDestination,
		ElapsedMs:          42000,
	})
	s.Require().Error(err)
	s.ErrorIs(err, storeErr)
}

func (s *AdmissionServiceTestSuite) TestSetParticipantStatusManualQualification() {
	manuallyQualified := &models.Participant{
		ID:                  s.testParticipantID,
		DisplayName:         s.testDisplayName,
		Status:              models.ParticipantStatusQualified,
		ElapsedMs:           0,
		QualificationMethod: models.QualificationMethodManual,
		RegisteredAt:        s.testTime,
	}

	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(s.playingParticipant, nil)

	s.mockParticipantRepo.EXPECT().
		SaveParticipant(gomock.Any(), &participantRepo.SaveParticipantInput{
			Participant: manuallyQualified,
		}).
		Return(nil)

	s.mockBus.EXPECT().Publish(eventbus.RoomBroadcast, eventbus.Event{
		Type: eventbus.EventTypePlayerUpdate,
		Payload: eventbus.PlayerUpdatePayload{
			UpdateType:  eventbus.UpdateTypeQualification,
			Participant: manuallyQualified,
		},
	})

	output, err := s.admissionService.SetParticipantStatus(s.ctx, &SetParticipantStatusInput{
		ParticipantID: s.testParticipantID,
		Status:        models.ParticipantStatusQualified,
	})
	s.Require().NoError(err)
	s.Equal(models.QualificationMethodManual, output.Participant.QualificationMethod)
	s.Equal(int64(0), output.Participant.ElapsedMs)
}

func (s *AdmissionServiceTestSuite) TestSetParticipantStatusRejectsUnknownStatus() {
	_, err := s.admissionService.SetParticipantStatus(s.ctx, &SetParticipantStatusInput{
		ParticipantID: s.testParticipantID,
		Status:        "Winning",
	})
	s.Equal(ErrInvalidStatus, err)
}

func (s *AdmissionServiceTestSuite) TestDisqualifyIsTerminalAndBroadcast() {
	disqualified := &models.Participant{
		ID:                  s.testParticipantID,
		DisplayName:         s.testDisplayName,
		Status:              models.ParticipantStatusDisqualified,
		ElapsedMs:           42000,
		QualificationMethod: models.QualificationMethodTimed,
		RegisteredAt:        s.testTime,
	}

	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(s.qualifiedParticipant, nil)

	s.mockParticipantRepo.EXPECT().
		SaveParticipant(gomock.Any(), &participantRepo.SaveParticipantInput{
			Participant: disqualified,
		}).
		Return(nil)

	// Everyone hears about it, not just the admin room; the participant's
	// own client must freeze
	s.mockBus.EXPECT().Publish(eventbus.RoomBroadcast, eventbus.Event{
		Type: eventbus.EventTypePlayerDisqualified,
		Payload: eventbus.PlayerDisqualifiedPayload{
			ParticipantID: s.testParticipantID,
			DisplayName:   s.testDisplayName,
		},
	})

	output, err := s.admissionService.Disqualify(s.ctx, &DisqualifyInput{
		ParticipantID: s.testParticipantID,
	})
	s.Require().NoError(err)
	s.Equal(models.ParticipantStatusDisqualified, output.Participant.Status)
}

func (s *AdmissionServiceTestSuite) TestDisqualifyUnknownParticipant() {
	s.mockParticipantRepo.EXPECT().
		GetParticipant(gomock.Any(), gomock.Any()).
		Return(nil, participantRepo.ErrParticipantNotFound)

	_, err := s.admissionService.Disqualify(s.ctx, &DisqualifyInput{
		ParticipantID: "no-such-participant",
	})
	s.Equal(ErrParticipantNotFound, err)
}

func (s *AdmissionServiceTestSuite) TestListParticipantsComputesStats() {
	participants := []*models.Participant{
		{ID: "p-1", Status: models.ParticipantStatusQualified},
		{ID: "p-2", Status: models.ParticipantStatusQualified},
		{ID: "p-3", Status: models.ParticipantStatusPlaying},
		{ID: "p-4", Status: models.ParticipantStatusFailed},
		{ID: "p-5", Status: models.ParticipantStatusDisqualified},
	}

	s.mockParticipantRepo.EXPECT().
		ListParticipants(gomock.Any(), gomock.Any()).
		Return(&participantRepo.ListParticipantsOutput{Participants: participants}, nil)

	s.mockRoundRepo.EXPECT().
		GetSettings(gomock.Any(), gomock.Any()).
		Return(s.roundOneSettings, nil)

	output, err := s.admissionService.ListParticipants(s.ctx, &ListParticipantsInput{})
	s.Require().NoError(err)
	s.Len(output.Participants, 5)
	s.Equal(models.RoundOne, output.Settings.ActiveRound)
	s.Equal(5, output.Stats.Total)
	s.Equal(2, output.Stats.Qualified)
	s.Equal(1, output.Stats.Playing)
	s.Equal(1, output.Stats.Failed)
	s.Equal(1, output.Stats.Disqualified)
}

func (s *AdmissionServiceTestSuite) TestResetGameClearsEverything() {
	s.mockParticipantRepo.EXPECT().
		DeleteAllParticipants(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockRoundRepo.EXPECT().
		SaveSettings(gomock.Any(), &roundRepo.SaveSettingsInput{
			Settings: &models.RoundSettings{
				ActiveRound: models.RoundInactive,
				LastUpdated: s.testTime,
			},
		}).
		Return(nil)

	s.mockBus.EXPECT().Publish(eventbus.RoomBroadcast, eventbus.Event{
		Type: eventbus.EventTypeGameReset,
		Payload: eventbus.GameResetPayload{
			ForceNewRegistration: true,
		},
	})

	_, err := s.admissionService.ResetGame(s.ctx, &ResetGameInput{})
	s.Require().NoError(err)
}

func (s *AdmissionServiceTestSuite) TestRecordClickNeverFailsTheCaller() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testClickID)
	s.mockClickRepo.EXPECT().
		AddClick(gomock.Any(), gomock.Any()).
		Return(errors.New("store is down"))

	// Audit logging is telemetry; the caller's flow must not break
	_, err := s.admissionService.RecordClick(s.ctx, &RecordClickInput{
		ParticipantID: s.testParticipantID,
		LinkID:        "link-abc-123-about-header-right",
		WasGenuine:    false,
	})
	s.Require().NoError(err)
}

func (s *AdmissionServiceTestSuite) TestGetAssignmentsForPageIsDeterministic() {
	first, err := s.admissionService.GetAssignmentsForPage(s.ctx, &GetAssignmentsForPageInput{
		ParticipantID: s.testParticipantID,
		Page:          "about",
	})
	s.Require().NoError(err)

	second, err := s.admissionService.GetAssignmentsForPage(s.ctx, &GetAssignmentsForPageInput{
		ParticipantID: s.testParticipantID,
		Page:          "about",
	})
	s.Require().NoError(err)

	s.Equal(first.Assignments, second.Assignments)
	s.Len(first.Assignments, 4)
}
