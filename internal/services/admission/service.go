// Package admission implements the qualification admission core: the single
// serialization point through which a participant's claim of having reached
// their genuine link is validated, admitted against the fixed quota, and
// announced to every connected view.
package admission

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/huntlabs/treasurehunt/internal/assignment"
	"github.com/huntlabs/treasurehunt/internal/common/clock"
	"github.com/huntlabs/treasurehunt/internal/common/uuid"
	"github.com/huntlabs/treasurehunt/internal/eventbus"
	"github.com/huntlabs/treasurehunt/internal/models"
	clickRepo "github.com/huntlabs/treasurehunt/internal/repositories/clicklog"
	participantRepo "github.com/huntlabs/treasurehunt/internal/repositories/participant"
	roundRepo "github.com/huntlabs/treasurehunt/internal/repositories/round"
)

// service implements the Service interface
type service struct {
	maxQualified    int
	participantRepo participantRepo.Repository
	roundRepo       roundRepo.Repository
	clickLogRepo    clickRepo.Repository
	clock           clock.Clock
	uuidGenerator   uuid.UUID
	eventBus        eventbus.Bus

	// admitMu serializes the quota check-then-increment in AttemptQualify.
	// Everything else reads and writes without it.
	admitMu sync.Mutex
}

// New creates a new admission service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}
	if cfg.RoundRepo == nil {
		return nil, ErrNilRoundRepo
	}
	if cfg.ClickLogRepo == nil {
		return nil, ErrNilClickLogRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.EventBus == nil {
		return nil, ErrNilEventBus
	}

	maxQualified := cfg.MaxQualified
	if maxQualified <= 0 {
		maxQualified = DefaultMaxQualified
	}

	return &service{
		maxQualified:    maxQualified,
		participantRepo: cfg.ParticipantRepo,
		roundRepo:       cfg.RoundRepo,
		clickLogRepo:    cfg.ClickLogRepo,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		eventBus:        cfg.EventBus,
	}, nil
}

// Register creates or updates a participant record. Re-registering with a new
// display name renames the participant; everything else is untouched.
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipantID
	}
	if input.DisplayName == "" {
		return nil, ErrMissingDisplayName
	}

	existing, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})

	if err == nil {
		if existing.DisplayName != input.DisplayName {
			existing.DisplayName = input.DisplayName
			saveErr := s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
				Participant: existing,
			})
			if saveErr != nil {
				return nil, saveErr
			}
			s.publishPlayerUpdate(eventbus.UpdateTypeRegistration, existing)
		}

		return &RegisterOutput{
			Participant:       existing,
			AlreadyRegistered: true,
		}, nil
	}

	if !errors.Is(err, participantRepo.ErrParticipantNotFound) {
		return nil, err
	}

	p := &models.Participant{
		ID:           input.ParticipantID,
		DisplayName:  input.DisplayName,
		Status:       models.ParticipantStatusPlaying,
		RegisteredAt: s.clock.Now(),
	}

	err = s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: p,
	})
	if err != nil {
		return nil, err
	}

	s.publishPlayerUpdate(eventbus.UpdateTypeRegistration, p)

	return &RegisterOutput{
		Participant: p,
	}, nil
}

// GetParticipant retrieves one participant
func (s *service) GetParticipant(ctx context.Context, input *GetParticipantInput) (*GetParticipantOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipantID
	}

	p, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	return &GetParticipantOutput{
		Participant: p,
	}, nil
}

// GetAssignmentsForPage computes a participant's link plan for one page. The
// computation is pure; this wrapper exists so transports never reach into the
// assignment package directly.
func (s *service) GetAssignmentsForPage(ctx context.Context, input *GetAssignmentsForPageInput) (*GetAssignmentsForPageOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipantID
	}

	return &GetAssignmentsForPageOutput{
		Assignments: assignment.ForPage(input.ParticipantID, input.Page),
	}, nil
}

// AttemptQualify processes a participant's claim of having reached their
// genuine link. The quota comparison and increment form one critical section;
// concurrent admissions can never push the qualified count past the quota.
func (s *service) AttemptQualify(ctx context.Context, input *AttemptQualifyInput) (*AttemptQualifyOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipantID
	}
	if input.ClaimedDestination == "" {
		return nil, ErrMissingDestination
	}

	settings, err := s.roundRepo.GetSettings(ctx, &roundRepo.GetSettingsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get round settings: %w", err)
	}
	if settings.ActiveRound != models.RoundOne {
		return nil, ErrRoundNotActive
	}

	p, err := s.resolveOrCreate(ctx, input.ParticipantID, input.DisplayName)
	if err != nil {
		return nil, err
	}

	// Idempotent replay for an already-qualified participant: no quota
	// consumption, no duplicate event
	if p.Status == models.ParticipantStatusQualified {
		return &AttemptQualifyOutput{
			Qualified:        true,
			AlreadyQualified: true,
			Participant:      p,
		}, nil
	}

	if p.Status == models.ParticipantStatusDisqualified {
		return nil, ErrParticipantDisqualified
	}

	genuine := assignment.IsGenuineDestination(input.ParticipantID, input.ClaimedDestination)

	// Audit every submission, genuine or not; the log is telemetry and must
	// never fail the attempt
	s.appendClick(ctx, input.ParticipantID, assignment.NormalizeDestination(input.ClaimedDestination), genuine)

	if !genuine {
		return nil, ErrInvalidDestination
	}

	s.admitMu.Lock()
	defer s.admitMu.Unlock()

	// Re-read inside the critical section; a concurrent call may have
	// admitted this participant between the check above and the lock
	p, err = s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		return nil, err
	}
	if p.Status == models.ParticipantStatusQualified {
		return &AttemptQualifyOutput{
			Qualified:        true,
			AlreadyQualified: true,
			Participant:      p,
		}, nil
	}

	used, err := s.participantRepo.GetQuotaUsed(ctx, &participantRepo.GetQuotaUsedInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to read quota: %w", err)
	}

	if used.Count >= s.maxQualified {
		// Too late, not wrong: the participant found their link after the
		// quota filled
		p.Status = models.ParticipantStatusFailed
		err = s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
			Participant: p,
		})
		if err != nil {
			return nil, err
		}

		s.publishPlayerUpdate(eventbus.UpdateTypeStatus, p)

		return &AttemptQualifyOutput{
			Qualified:   false,
			Participant: p,
		}, nil
	}

	p.Status = models.ParticipantStatusQualified
	p.ElapsedMs = input.ElapsedMs
	if input.ElapsedMs > 0 {
		p.QualificationMethod = models.QualificationMethodTimed
	} else {
		p.QualificationMethod = models.QualificationMethodManual
	}

	// The status write and the quota increment commit together or not at all.
	// A failure here leaves the participant Playing and the slot unconsumed,
	// so a retry takes the normal admission path instead of replaying an
	// admission that never counted
	_, err = s.participantRepo.QualifyParticipant(ctx, &participantRepo.QualifyParticipantInput{
		Participant: p,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to consume quota slot: %w", err)
	}

	// Persisted before published; observers never learn of a qualification
	// that did not commit
	s.publishPlayerUpdate(eventbus.UpdateTypeQualification, p)

	return &AttemptQualifyOutput{
		Qualified:   true,
		Participant: p,
	}, nil
}

// SetParticipantStatus force-sets a participant's status. This is the admin
// override path: manual qualifications consume no quota slot and carry no
// measured time.
func (s *service) SetParticipantStatus(ctx context.Context, input *SetParticipantStatusInput) (*SetParticipantStatusOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipantID
	}

	switch input.Status {
	case models.ParticipantStatusPlaying,
		models.ParticipantStatusQualified,
		models.ParticipantStatusFailed,
		models.ParticipantStatusDisqualified:
	default:
		return nil, ErrInvalidStatus
	}

	p, err := s.resolveOrCreate(ctx, input.ParticipantID, input.DisplayName)
	if err != nil {
		return nil, err
	}

	p.Status = input.Status
	if input.Status == models.ParticipantStatusQualified {
		p.ElapsedMs = 0
		p.QualificationMethod = models.QualificationMethodManual
	}

	err = s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: p,
	})
	if err != nil {
		return nil, err
	}

	updateType := eventbus.UpdateTypeStatus
	if input.Status == models.ParticipantStatusQualified {
		updateType = eventbus.UpdateTypeQualification
	}
	s.publishPlayerUpdate(updateType, p)

	return &SetParticipantStatusOutput{
		Participant: p,
	}, nil
}

// Disqualify removes a participant from the game. The transition is terminal
// and the consumed quota slot stays consumed; a disqualified seat is never
// refilled. Every connected client hears about it so the participant's own
// view can freeze.
func (s *service) Disqualify(ctx context.Context, input *DisqualifyInput) (*DisqualifyOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipantID
	}

	p, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		if errors.Is(err, participantRepo.ErrParticipantNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	p.Status = models.ParticipantStatusDisqualified

	err = s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: p,
	})
	if err != nil {
		return nil, err
	}

	s.eventBus.Publish(eventbus.RoomBroadcast, eventbus.Event{
		Type: eventbus.EventTypePlayerDisqualified,
		Payload: eventbus.PlayerDisqualifiedPayload{
			ParticipantID: p.ID,
			DisplayName:   p.DisplayName,
		},
	})

	return &DisqualifyOutput{
		Participant: p,
	}, nil
}

// ListParticipants returns the full standings for the admin dashboard
func (s *service) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	listOutput, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{})
	if err != nil {
		return nil, err
	}

	settings, err := s.roundRepo.GetSettings(ctx, &roundRepo.GetSettingsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get round settings: %w", err)
	}

	stats := &models.GameStats{
		Total: len(listOutput.Participants),
	}
	for _, p := range listOutput.Participants {
		switch p.Status {
		case models.ParticipantStatusPlaying:
			stats.Playing++
		case models.ParticipantStatusQualified:
			stats.Qualified++
		case models.ParticipantStatusFailed:
			stats.Failed++
		case models.ParticipantStatusDisqualified:
			stats.Disqualified++
		}
	}

	return &ListParticipantsOutput{
		Participants: listOutput.Participants,
		Settings:     settings,
		Stats:        stats,
	}, nil
}

// ResetGame wipes all participants, releases the quota and deactivates every
// round. The only destructive, irreversible operation in the game.
func (s *service) ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error) {
	err := s.participantRepo.DeleteAllParticipants(ctx, &participantRepo.DeleteAllParticipantsInput{})
	if err != nil {
		return nil, err
	}

	err = s.roundRepo.SaveSettings(ctx, &roundRepo.SaveSettingsInput{
		Settings: &models.RoundSettings{
			ActiveRound: models.RoundInactive,
			LastUpdated: s.clock.Now(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate rounds: %w", err)
	}

	s.eventBus.Publish(eventbus.RoomBroadcast, eventbus.Event{
		Type: eventbus.EventTypeGameReset,
		Payload: eventbus.GameResetPayload{
			ForceNewRegistration: true,
		},
	})

	return &ResetGameOutput{}, nil
}

// RecordClick appends a link click to the audit log. Logging never blocks
// gameplay: a store failure is logged and swallowed here, and only here, by
// contract.
func (s *service) RecordClick(ctx context.Context, input *RecordClickInput) (*RecordClickOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipantID
	}

	s.appendClick(ctx, input.ParticipantID, input.LinkID, input.WasGenuine)

	return &RecordClickOutput{}, nil
}

// GetClicksForParticipant returns a participant's click history, newest first
func (s *service) GetClicksForParticipant(ctx context.Context, input *GetClicksForParticipantInput) (*GetClicksForParticipantOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, ErrMissingParticipantID
	}

	output, err := s.clickLogRepo.GetClicksForParticipant(ctx, &clickRepo.GetClicksForParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err != nil {
		return nil, err
	}

	return &GetClicksForParticipantOutput{
		Records: output.Records,
	}, nil
}

// resolveOrCreate fetches a participant, creating a Playing record on demand
// when a display name was supplied
func (s *service) resolveOrCreate(ctx context.Context, participantID, displayName string) (*models.Participant, error) {
	p, err := s.participantRepo.GetParticipant(ctx, &participantRepo.GetParticipantInput{
		ParticipantID: participantID,
	})
	if err == nil {
		return p, nil
	}

	if !errors.Is(err, participantRepo.ErrParticipantNotFound) {
		return nil, err
	}

	if displayName == "" {
		return nil, ErrParticipantNotFound
	}

	p = &models.Participant{
		ID:           participantID,
		DisplayName:  displayName,
		Status:       models.ParticipantStatusPlaying,
		RegisteredAt: s.clock.Now(),
	}

	err = s.participantRepo.SaveParticipant(ctx, &participantRepo.SaveParticipantInput{
		Participant: p,
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// appendClick writes an audit record, logging and swallowing any store error
func (s *service) appendClick(ctx context.Context, participantID, linkID string, wasGenuine bool) {
	err := s.clickLogRepo.AddClick(ctx, &clickRepo.AddClickInput{
		Record: &models.ClickRecord{
			ID:            s.uuidGenerator.NewUUID(),
			ParticipantID: participantID,
			LinkID:        linkID,
			WasGenuine:    wasGenuine,
			Timestamp:     s.clock.Now(),
		},
	})
	if err != nil {
		log.Printf("failed to record link click for %s: %v", participantID, err)
	}
}

// publishPlayerUpdate announces a participant change to every connected view
func (s *service) publishPlayerUpdate(updateType eventbus.UpdateType, p *models.Participant) {
	room := eventbus.RoomBroadcast
	if updateType == eventbus.UpdateTypeRegistration {
		// Registrations only matter to the dashboard
		room = eventbus.RoomAdmin
	}

	s.eventBus.Publish(room, eventbus.Event{
		Type: eventbus.EventTypePlayerUpdate,
		Payload: eventbus.PlayerUpdatePayload{
			UpdateType:  updateType,
			Participant: p,
		},
	})
}
