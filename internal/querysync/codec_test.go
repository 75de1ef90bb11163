package querysync

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain/model"
)

func f64(v float64) *float64 { return &v }

func TestParse_EmptyIsDefault(t *testing.T) {
	assert.Equal(t, model.DefaultFilter(), Parse(url.Values{}))
}

func TestParse_AllKeys(t *testing.T) {
	v, err := url.ParseQuery("page=3&pageSize=24&search=phone&category=5&minPrice=100&maxPrice=900&minRating=4&showFavorites=true&sortOption=price&sortDirection=desc")
	assert.NoError(t, err)

	st := Parse(v)
	assert.Equal(t, 3, st.Page)
	assert.Equal(t, 24, st.PageSize)
	assert.Equal(t, "phone", st.Search)
	assert.Equal(t, "5", st.CategoryID)
	assert.Equal(t, 100.0, *st.MinPrice)
	assert.Equal(t, 900.0, *st.MaxPrice)
	assert.Equal(t, 4.0, st.MinRating)
	assert.True(t, st.ShowFavoritesOnly)
	assert.Equal(t, model.SortPrice, st.SortField)
	assert.Equal(t, model.SortDesc, st.SortDirection)
}

func TestParse_MalformedFallsBackToDefaults(t *testing.T) {
	v, _ := url.ParseQuery("page=abc&pageSize=-2&minPrice=NaNope&minRating=x&showFavorites=maybe&sortOption=bogus&sortDirection=sideways")
	st := Parse(v)
	def := model.DefaultFilter()
	assert.Equal(t, def.Page, st.Page)
	assert.Equal(t, def.PageSize, st.PageSize)
	assert.Nil(t, st.MinPrice)
	assert.Zero(t, st.MinRating)
	assert.False(t, st.ShowFavoritesOnly)
	assert.Equal(t, def.SortField, st.SortField)
	assert.Equal(t, def.SortDirection, st.SortDirection)
}

func TestParse_CategoryZeroMeansUnset(t *testing.T) {
	v, _ := url.ParseQuery("category=0")
	assert.Empty(t, Parse(v).CategoryID)
}

func TestEncode_OmitsDefaults(t *testing.T) {
	assert.Empty(t, Encode(model.DefaultFilter()))
}

func TestEncode_OnlyChangedKeys(t *testing.T) {
	st := model.DefaultFilter()
	st.Page = 2
	st.Search = "watch"
	st.MinPrice = f64(50)
	v := Encode(st)
	assert.Equal(t, "2", v.Get("page"))
	assert.Equal(t, "watch", v.Get("search"))
	assert.Equal(t, "50", v.Get("minPrice"))
	assert.Len(t, v, 3)
}

func TestCodec_RoundTrip(t *testing.T) {
	states := []model.FilterState{
		model.DefaultFilter(),
		{Page: 4, PageSize: 24, Search: "lamp", CategoryID: "7", MinPrice: f64(10.5), MaxPrice: f64(99.9),
			MinRating: 3.5, ShowFavoritesOnly: true, SortField: model.SortTitle, SortDirection: model.SortDesc},
		{Page: 1, PageSize: 12, CategoryID: "", SortField: model.SortRating, SortDirection: model.SortAsc},
	}
	for _, st := range states {
		assert.Equal(t, st, Parse(Encode(st)))
	}
}
