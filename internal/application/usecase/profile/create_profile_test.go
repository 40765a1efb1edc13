package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mylance/content-engine/adapters/event"
	"github.com/mylance/content-engine/internal/domain/profile"
	"github.com/mylance/content-engine/pkg/apperror"
	"github.com/mylance/content-engine/pkg/logger"
)

func newCreateUseCase(repo *fakeProfileRepo, pub *fakePublisher) *CreateProfileUseCase {
	uc := NewCreateProfileUseCase(repo, pub, logger.NewNop())
	uc.now = func() time.Time { return time.Unix(1700000000, 0).UTC() }
	return uc
}

func TestCreateProfile_AssignsSlugID(t *testing.T) {
	repo := newFakeProfileRepo()
	pub := &fakePublisher{}
	uc := newCreateUseCase(repo, pub)

	output, err := uc.Execute(context.Background(), CreateProfileInput{FirstName: "  Jane ", LastName: "Doe"})
	require.NoError(t, err)
	assert.Equal(t, "jane-doe-1700000000", output.Profile.ID)
	assert.Equal(t, "Jane", output.Profile.FirstName)
	assert.Equal(t, "Doe", output.Profile.LastName)

	stored, err := repo.FindByID(context.Background(), "jane-doe-1700000000")
	require.NoError(t, err)
	assert.Empty(t, stored.ContentStrategy)
	assert.Empty(t, stored.ContentPillars)
	assert.Empty(t, stored.LinkedInPrompts)
	assert.Nil(t, stored.BrandAnalysis)

	require.Len(t, pub.events, 1)
	assert.Equal(t, event.EventProfileCreated, pub.events[0].EventType)
	assert.Equal(t, "jane-doe-1700000000", pub.events[0].ProfileID)
}

func TestCreateProfile_BlankNameRejected(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := newCreateUseCase(repo, &fakePublisher{})

	for _, input := range []CreateProfileInput{
		{FirstName: "", LastName: "Doe"},
		{FirstName: "Jane", LastName: "   "},
	} {
		_, err := uc.Execute(context.Background(), input)
		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	}
	assert.Empty(t, repo.profiles, "nothing is stored on a rejected create")
}

func TestCreateProfile_NormalizesNameParts(t *testing.T) {
	uc := newCreateUseCase(newFakeProfileRepo(), &fakePublisher{})

	output, err := uc.Execute(context.Background(), CreateProfileInput{FirstName: "Mary Anne", LastName: "O'Brien"})
	require.NoError(t, err)
	assert.Equal(t, "mary-anne-obrien-1700000000", output.Profile.ID)
}

func TestUpdateProfile_PartialUpdateLeavesOtherFieldsAlone(t *testing.T) {
	p := &profile.Profile{
		ID:              "jane-doe-1700000000",
		FirstName:       "Jane",
		LastName:        "Doe",
		ICP:             "fractional CFOs",
		ContentStrategy: "existing strategy",
	}
	repo := newFakeProfileRepo(p)
	uc := NewUpdateProfileUseCase(repo, &fakePublisher{}, logger.NewNop())

	icp := "seed-stage founders"
	output, err := uc.Execute(context.Background(), UpdateProfileInput{
		ProfileID: p.ID,
		Update:    profile.Update{ICP: &icp},
	})
	require.NoError(t, err)
	assert.Equal(t, "seed-stage founders", output.Profile.ICP)
	assert.Equal(t, "existing strategy", output.Profile.ContentStrategy)
}

func TestUpdateProfile_CoercesPillarCount(t *testing.T) {
	p := &profile.Profile{ID: "jane-doe-1700000000", FirstName: "Jane", LastName: "Doe"}
	repo := newFakeProfileRepo(p)
	uc := NewUpdateProfileUseCase(repo, &fakePublisher{}, logger.NewNop())

	five := []string{"a", "b", "c", "d", "e"}
	output, err := uc.Execute(context.Background(), UpdateProfileInput{
		ProfileID: p.ID,
		Update:    profile.Update{ContentPillars: &five},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, output.Profile.ContentPillars)

	one := []string{"only"}
	output, err = uc.Execute(context.Background(), UpdateProfileInput{
		ProfileID: p.ID,
		Update:    profile.Update{ContentPillars: &one},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"only", "", ""}, output.Profile.ContentPillars)
}

func TestUpdateProfile_StampsActorOnEvent(t *testing.T) {
	p := &profile.Profile{ID: "jane-doe-1700000000", FirstName: "Jane", LastName: "Doe"}
	pub := &fakePublisher{}
	uc := NewUpdateProfileUseCase(newFakeProfileRepo(p), pub, logger.NewNop())

	icp := "seed-stage founders"
	_, err := uc.Execute(context.Background(), UpdateProfileInput{
		ProfileID: p.ID,
		ActorID:   "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Update:    profile.Update{ICP: &icp},
	})
	require.NoError(t, err)

	require.Len(t, pub.events, 1)
	assert.Equal(t, event.EventProfileUpdated, pub.events[0].EventType)
	assert.Equal(t, "7c9e6679-7425-40de-944b-e07fc1f90ae7", pub.events[0].Detail["actor_id"])
}

func TestUpdateProfile_MissingProfile(t *testing.T) {
	uc := NewUpdateProfileUseCase(newFakeProfileRepo(), &fakePublisher{}, logger.NewNop())

	icp := "anyone"
	_, err := uc.Execute(context.Background(), UpdateProfileInput{
		ProfileID: "nobody",
		Update:    profile.Update{ICP: &icp},
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetProfile_MissingProfile(t *testing.T) {
	uc := NewGetProfileUseCase(newFakeProfileRepo())

	_, err := uc.Execute(context.Background(), GetProfileInput{ProfileID: "nobody"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListProfiles(t *testing.T) {
	repo := newFakeProfileRepo(
		&profile.Profile{ID: "a-b-1", FirstName: "A", LastName: "B"},
		&profile.Profile{ID: "c-d-2", FirstName: "C", LastName: "D"},
	)
	uc := NewListProfilesUseCase(repo)

	output, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, output.Profiles, 2)
}
