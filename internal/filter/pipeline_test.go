package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/model"
)

func f64(v float64) *float64 { return &v }

func fixture() []model.Product {
	return []model.Product{
		{ID: 1, Title: "Essence Mascara", Price: 549, Rating: f64(4.6), Category: model.Category{ID: 1, Slug: "beauty"}},
		{ID: 2, Title: "Eyeshadow Palette", Price: 899, Rating: f64(3.3), Category: model.Category{ID: 1, Slug: "beauty"}},
		{ID: 3, Title: "Powder Canister", Price: 1249, Rating: nil, Category: model.Category{ID: 2, Slug: "fragrances"}},
		{ID: 4, Title: "Red Lipstick", Price: 1749, Rating: f64(4.9), Category: model.Category{ID: 2, Slug: "fragrances"}},
	}
}

func ids(in []model.Product) []int64 {
	out := make([]int64, 0, len(in))
	for _, p := range in {
		out = append(out, p.ID)
	}
	return out
}

func TestApply_DefaultStateIsIdentity(t *testing.T) {
	in := fixture()
	out := Apply(in, model.DefaultFilter(), nil)
	assert.Equal(t, ids(in), ids(out))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := fixture()
	st := model.DefaultFilter()
	st.SortField = model.SortPrice
	st.SortDirection = model.SortDesc
	_ = Apply(in, st, nil)
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(in))
}

func TestApply_PriceRange(t *testing.T) {
	st := model.DefaultFilter()
	st.MinPrice = f64(600)
	st.MaxPrice = f64(1500)
	out := Apply(fixture(), st, nil)
	assert.Equal(t, []int64{2, 3}, ids(out))
}

func TestApply_PriceRangeIdempotent(t *testing.T) {
	st := model.DefaultFilter()
	st.MinPrice = f64(600)
	st.MaxPrice = f64(1500)
	once := Apply(fixture(), st, nil)
	twice := Apply(once, st, nil)
	assert.Equal(t, ids(once), ids(twice))
}

func TestApply_Category(t *testing.T) {
	st := model.DefaultFilter()
	st.CategoryID = "2"
	assert.Equal(t, []int64{3, 4}, ids(Apply(fixture(), st, nil)))

	st.CategoryID = "0"
	assert.Len(t, Apply(fixture(), st, nil), 4)

	// 数値でないidは全件除外
	st.CategoryID = "beauty"
	assert.Empty(t, Apply(fixture(), st, nil))
}

func TestApply_RatingExcludesUnrated(t *testing.T) {
	st := model.DefaultFilter()
	st.MinRating = 3
	out := Apply(fixture(), st, nil)
	assert.Equal(t, []int64{1, 2, 4}, ids(out), "nil rating must not pass a rating filter")
}

func TestApply_FavoritesOnly(t *testing.T) {
	st := model.DefaultFilter()
	st.ShowFavoritesOnly = true
	favs := map[int64]struct{}{2: {}, 4: {}}
	assert.Equal(t, []int64{2, 4}, ids(Apply(fixture(), st, favs)))
	assert.Empty(t, Apply(fixture(), st, nil))
}

func TestApply_SearchCaseInsensitive(t *testing.T) {
	st := model.DefaultFilter()
	st.Search = "  LIPSTICK "
	assert.Equal(t, []int64{4}, ids(Apply(fixture(), st, nil)))
}

func TestApply_SortPrice(t *testing.T) {
	st := model.DefaultFilter()
	st.SortField = model.SortPrice
	st.SortDirection = model.SortDesc
	assert.Equal(t, []int64{4, 3, 2, 1}, ids(Apply(fixture(), st, nil)))

	st.SortDirection = model.SortAsc
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(Apply(fixture(), st, nil)))
}

func TestApply_SortRatingTreatsNilAsZero(t *testing.T) {
	st := model.DefaultFilter()
	st.SortField = model.SortRating
	st.SortDirection = model.SortAsc
	out := Apply(fixture(), st, nil)
	require.Len(t, out, 4)
	assert.Equal(t, int64(3), out[0].ID)
}

func TestApply_SortTitleLocaleAware(t *testing.T) {
	in := []model.Product{
		{ID: 1, Title: "zebra"},
		{ID: 2, Title: "Éclair"},
		{ID: 3, Title: "apple"},
	}
	st := model.DefaultFilter()
	st.SortField = model.SortTitle
	out := Apply(in, st, nil)
	// collateのLoose比較ではÉはEと同列に扱われ、zの前に来る
	assert.Equal(t, []int64{3, 2, 1}, ids(out))
}

func TestApply_StagesCompose(t *testing.T) {
	st := model.DefaultFilter()
	st.CategoryID = "1"
	st.MinRating = 4
	out := Apply(fixture(), st, nil)
	assert.Equal(t, []int64{1}, ids(out))
}
