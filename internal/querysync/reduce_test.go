package querysync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/model"
)

func TestApply_PageChangeKeepsPage(t *testing.T) {
	st := model.DefaultFilter()
	st = Apply(st, SetPage(5))
	assert.Equal(t, 5, st.Page)
}

func TestApply_FilterChangeResetsPage(t *testing.T) {
	st := model.DefaultFilter()
	st.Page = 5

	assert.Equal(t, 1, Apply(st, SetSearch("shoe")).Page)
	assert.Equal(t, 1, Apply(st, SetCategory("3")).Page)
	assert.Equal(t, 1, Apply(st, SetMinRating(4)).Page)
	assert.Equal(t, 1, Apply(st, SetShowFavorites(true)).Page)
	assert.Equal(t, 1, Apply(st, SetSort(model.SortPrice, model.SortDesc)).Page)
	assert.Equal(t, 1, Apply(st, SetPageSize(24)).Page)
}

func TestApply_MixedChangesResetPage(t *testing.T) {
	st := model.DefaultFilter()
	// 同一バッチにフィルタ変更があればページ指定よりリセットが勝つ
	st = Apply(st, SetPage(9), SetSearch("mug"))
	assert.Equal(t, 1, st.Page)
	assert.Equal(t, "mug", st.Search)
}

func TestApply_LastWriteWins(t *testing.T) {
	st := Apply(model.DefaultFilter(), SetSearch("a"), SetSearch("b"))
	assert.Equal(t, "b", st.Search)
}

func TestApply_CategoryZeroNormalized(t *testing.T) {
	st := Apply(model.DefaultFilter(), SetCategory("0"))
	assert.Empty(t, st.CategoryID)
}

func TestApply_Reset(t *testing.T) {
	st := model.DefaultFilter()
	st.Search = "x"
	st.Page = 7
	assert.Equal(t, model.DefaultFilter(), Apply(st, Reset()))
}
