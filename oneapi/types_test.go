package oneapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePage(t *testing.T) {
	t.Run("failure is returned as error", func(t *testing.T) {
		_, err := DecodePage[Movie](Fail(errors.New("boom")))
		require.Error(t, err)
		var failure *CallFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, "boom", failure.Message)
	})

	t.Run("payload of wrong shape", func(t *testing.T) {
		_, err := DecodePage[Movie](Success([]any{"not", "a", "page"}))
		require.Error(t, err)
	})

	t.Run("quote page", func(t *testing.T) {
		res := Success(map[string]any{
			"docs": []any{
				map[string]any{"_id": "q1", "dialog": "Deagol!!", "movie": "m1", "character": "c1"},
			},
			"total": 1.0, "limit": 1000.0, "offset": 0.0, "page": 1.0, "pages": 2.0,
		})

		page, err := DecodePage[Quote](res)
		require.NoError(t, err)
		require.Len(t, page.Docs, 1)
		assert.Equal(t, Quote{ID: "q1", Dialog: "Deagol!!", Movie: "m1", Character: "c1"}, page.Docs[0])
		assert.True(t, page.HasMorePages())
	})
}
