package anime

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateAnimeRequestValidate(t *testing.T) {
	valid := CreateAnimeRequest{
		Name:        "Frieren",
		TypeID:      uuid.New(),
		ReleaseDate: "2023-09-29",
		URL:         "https://example.com/frieren",
	}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = ""
	assert.Error(t, noName.Validate())

	noType := valid
	noType.TypeID = uuid.Nil
	assert.Error(t, noType.Validate())

	badDate := valid
	badDate.ReleaseDate = "29-09-2023"
	assert.Error(t, badDate.Validate())

	badURL := valid
	badURL.URL = "not a url"
	assert.Error(t, badURL.Validate())

	zeroEpisodes := valid
	episodes := 0
	zeroEpisodes.TotalEpisodes = &episodes
	assert.Error(t, zeroEpisodes.Validate())
}

func TestUpdateAnimeRequestValidate(t *testing.T) {
	empty := UpdateAnimeRequest{}
	assert.ErrorIs(t, empty.Validate(), ErrNoFieldsToUpdate)

	withNames := UpdateAnimeRequest{Names: []string{"Sousou no Frieren", "Frieren"}}
	assert.NoError(t, withNames.Validate())

	emptyEntry := UpdateAnimeRequest{Names: []string{"Frieren", ""}}
	assert.Error(t, emptyEntry.Validate())

	typeID := uuid.New()
	onlyType := UpdateAnimeRequest{TypeID: &typeID}
	assert.NoError(t, onlyType.Validate())
}

func TestTransitionRequestValidate(t *testing.T) {
	ok := TransitionRequest{Action: ActionToWatching}
	assert.NoError(t, ok.Validate())

	bogus := TransitionRequest{Action: "ARCHIVE"}
	assert.ErrorIs(t, bogus.Validate(), ErrInvalidAction)

	missing := TransitionRequest{}
	assert.ErrorIs(t, missing.Validate(), ErrInvalidAction)
}

func TestUpdateHistoryRequestValidate(t *testing.T) {
	empty := UpdateHistoryRequest{}
	assert.ErrorIs(t, empty.Validate(), ErrNoDatesSupplied)

	now := time.Now()
	startOnly := UpdateHistoryRequest{StartDate: &now}
	assert.NoError(t, startOnly.Validate())

	endOnly := UpdateHistoryRequest{EndDate: &now}
	assert.NoError(t, endOnly.Validate())
}

func TestInfoUpdateEmpty(t *testing.T) {
	assert.True(t, InfoUpdate{}.Empty())

	url := "https://example.com"
	assert.False(t, InfoUpdate{URL: &url}.Empty())
}
