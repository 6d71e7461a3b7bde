package comment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateCommentRequestValidate(t *testing.T) {
	valid := CreateCommentRequest{
		AnimeID: uuid.New(),
		Type:    TypeEpisodeNote,
		Content: "ep 7 was wild",
	}
	assert.NoError(t, valid.Validate())

	noAnime := valid
	noAnime.AnimeID = uuid.Nil
	assert.Error(t, noAnime.Validate())

	noContent := valid
	noContent.Content = ""
	assert.Error(t, noContent.Validate())

	badEpisode := valid
	episode := 0
	badEpisode.EpisodeNumber = &episode
	assert.Error(t, badEpisode.Validate())
}

func TestUpdateCommentRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateCommentRequest{Content: "revised"}.Validate())
	assert.Error(t, UpdateCommentRequest{}.Validate())
}
