package participant

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/huntlabs/treasurehunt/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetParticipant() {
	p := &models.Participant{
		ID:           "abc-123",
		DisplayName:  "Test Player",
		Status:       models.ParticipantStatusPlaying,
		ElapsedMs:    0,
		RegisteredAt: s.testNow,
	}

	err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{
		Participant: p,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "abc-123",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("abc-123", retrieved.ID)
	s.Equal("Test Player", retrieved.DisplayName)
	s.Equal(models.ParticipantStatusPlaying, retrieved.Status)
	s.Equal(int64(0), retrieved.ElapsedMs)
	s.Equal(s.testNow.Unix(), retrieved.RegisteredAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestSaveOverwritesExisting() {
	p := &models.Participant{
		ID:           "abc-123",
		DisplayName:  "Old Name",
		Status:       models.ParticipantStatusPlaying,
		RegisteredAt: s.testNow,
	}

	err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{
		Participant: p,
	})
	s.Require().NoError(err)

	p.DisplayName = "New Name"
	p.Status = models.ParticipantStatusQualified
	p.ElapsedMs = 45000
	p.QualificationMethod = models.QualificationMethodTimed

	err = s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{
		Participant: p,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "abc-123",
	})
	s.Require().NoError(err)
	s.Equal("New Name", retrieved.DisplayName)
	s.Equal(models.ParticipantStatusQualified, retrieved.Status)
	s.Equal(int64(45000), retrieved.ElapsedMs)
	s.Equal(models.QualificationMethodTimed, retrieved.QualificationMethod)

	// Overwriting must not duplicate the id in the member set
	listOutput, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{})
	s.Require().NoError(err)
	s.Require().Len(listOutput.Participants, 1)
}

func (s *RedisRepositoryTestSuite) TestListParticipantsNewestFirst() {
	participants := []*models.Participant{
		{
			ID:           "p-oldest",
			DisplayName:  "Oldest",
			Status:       models.ParticipantStatusPlaying,
			RegisteredAt: s.testNow,
		},
		{
			ID:           "p-middle",
			DisplayName:  "Middle",
			Status:       models.ParticipantStatusQualified,
			RegisteredAt: s.testNow.Add(1 * time.Minute),
		},
		{
			ID:           "p-newest",
			DisplayName:  "Newest",
			Status:       models.ParticipantStatusFailed,
			RegisteredAt: s.testNow.Add(2 * time.Minute),
		},
	}

	for _, p := range participants {
		err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{
			Participant: p,
		})
		s.Require().NoError(err)
	}

	listOutput, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{})
	s.Require().NoError(err)
	s.Require().Len(listOutput.Participants, 3)

	s.Equal("p-newest", listOutput.Participants[0].ID)
	s.Equal("p-middle", listOutput.Participants[1].ID)
	s.Equal("p-oldest", listOutput.Participants[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListParticipantsEmpty() {
	listOutput, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{})
	s.Require().NoError(err)
	s.Require().Empty(listOutput.Participants)
}

func (s *RedisRepositoryTestSuite) TestQualifyParticipantConsumesASlot() {
	// A fresh game has consumed no slots
	used, err := s.repo.GetQuotaUsed(context.Background(), &GetQuotaUsedInput{})
	s.Require().NoError(err)
	s.Equal(0, used.Count)

	first, err := s.repo.QualifyParticipant(context.Background(), &QualifyParticipantInput{
		Participant: &models.Participant{
			ID:                  "p-first",
			DisplayName:         "First",
			Status:              models.ParticipantStatusQualified,
			ElapsedMs:           30000,
			QualificationMethod: models.QualificationMethodTimed,
			RegisteredAt:        s.testNow,
		},
	})
	s.Require().NoError(err)
	s.Equal(1, first.Count)

	second, err := s.repo.QualifyParticipant(context.Background(), &QualifyParticipantInput{
		Participant: &models.Participant{
			ID:                  "p-second",
			DisplayName:         "Second",
			Status:              models.ParticipantStatusQualified,
			ElapsedMs:           45000,
			QualificationMethod: models.QualificationMethodTimed,
			RegisteredAt:        s.testNow,
		},
	})
	s.Require().NoError(err)
	s.Equal(2, second.Count)

	used, err = s.repo.GetQuotaUsed(context.Background(), &GetQuotaUsedInput{})
	s.Require().NoError(err)
	s.Equal(2, used.Count)

	// The record lands alongside the counter, not behind it
	retrieved, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "p-first",
	})
	s.Require().NoError(err)
	s.Equal(models.ParticipantStatusQualified, retrieved.Status)
	s.Equal(int64(30000), retrieved.ElapsedMs)

	listOutput, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{})
	s.Require().NoError(err)
	s.Require().Len(listOutput.Participants, 2)
}

func (s *RedisRepositoryTestSuite) TestDeleteAllParticipants() {
	for _, id := range []string{"p-1", "p-2", "p-3"} {
		p := &models.Participant{
			ID:           id,
			DisplayName:  "Player",
			Status:       models.ParticipantStatusPlaying,
			RegisteredAt: s.testNow,
		}
		err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{
			Participant: p,
		})
		s.Require().NoError(err)
	}

	_, err := s.repo.QualifyParticipant(context.Background(), &QualifyParticipantInput{
		Participant: &models.Participant{
			ID:                  "p-1",
			DisplayName:         "Player",
			Status:              models.ParticipantStatusQualified,
			ElapsedMs:           30000,
			QualificationMethod: models.QualificationMethodTimed,
			RegisteredAt:        s.testNow,
		},
	})
	s.Require().NoError(err)

	err = s.repo.DeleteAllParticipants(context.Background(), &DeleteAllParticipantsInput{})
	s.Require().NoError(err)

	listOutput, err := s.repo.ListParticipants(context.Background(), &ListParticipantsInput{})
	s.Require().NoError(err)
	s.Require().Empty(listOutput.Participants)

	_, err = s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "p-1",
	})
	s.Require().Error(err)
	s.Equal(ErrParticipantNotFound, err)

	// The consumed quota is released by a reset
	used, err := s.repo.GetQuotaUsed(context.Background(), &GetQuotaUsedInput{})
	s.Require().NoError(err)
	s.Equal(0, used.Count)
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentParticipant() {
	_, err := s.repo.GetParticipant(context.Background(), &GetParticipantInput{
		ParticipantID: "no-such-participant",
	})
	s.Require().Error(err)
	s.Equal(ErrParticipantNotFound, err)
}
