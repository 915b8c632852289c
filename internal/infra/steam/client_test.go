package steam

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"steamcache/config"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.SteamSource {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.SteamConfig{
		StoreBaseURL:     server.URL,
		CommunityBaseURL: server.URL + "/community",
		UserAgent:        "steamcache-test",
	}

	return NewClient(cfg, server.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetAppMetadata(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appdetails", r.URL.Path)
		assert.Equal(t, "730", r.URL.Query().Get("appids"))
		assert.Equal(t, "portuguese", r.URL.Query().Get("l"))
		assert.Equal(t, "steamcache-test", r.Header.Get("User-Agent"))
		_, _ = io.WriteString(w, `{"730":{"success":true,"data":{"steam_appid":730,"name":"Counter-Strike 2",
			"header_image":"https://cdn/730.jpg","developers":["Valve"],"publishers":["Valve"],
			"release_date":{"coming_soon":false,"date":"21 Aug, 2012"}}}}`)
	})

	metadata, err := client.GetAppMetadata(context.Background(), "730", "portuguese")
	require.NoError(t, err)
	require.NotNil(t, metadata.Name)
	assert.Equal(t, "Counter-Strike 2", *metadata.Name)
	assert.Nil(t, metadata.ShortDescription)
	assert.Equal(t, []string{"Valve"}, metadata.Developers)
	assert.Nil(t, metadata.PriceOverview)
	assert.JSONEq(t, `{"coming_soon":false,"date":"21 Aug, 2012"}`, string(metadata.ReleaseDate))
}

func TestGetAppMetadata_Unsuccessful(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"999":{"success":false}}`)
	})

	_, err := client.GetAppMetadata(context.Background(), "999", "")
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
	assert.True(t, domainerrors.IsUpstreamFailure(err))
}

func TestGetAppMetadata_Non2xx(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.GetAppMetadata(context.Background(), "730", "")
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)

	upstreamErr, ok := err.(*domainerrors.UpstreamError)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode())
}

func TestGetAppMetadata_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `<html>`)
	})

	_, err := client.GetAppMetadata(context.Background(), "730", "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPayload)
}

func TestGetReviewSummary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/appreviews/730", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("num_per_page"))
		assert.Equal(t, "all", r.URL.Query().Get("language"))
		_, _ = io.WriteString(w, `{"success":1,"query_summary":{"num_reviews":0,"review_score":8,
			"review_score_desc":"Very Positive","total_positive":900,"total_negative":100,"total_reviews":1000},"reviews":[]}`)
	})

	summary, err := client.GetReviewSummary(context.Background(), "730")
	require.NoError(t, err)
	require.NotNil(t, summary.TotalReviews)
	assert.Equal(t, int64(1000), *summary.TotalReviews)
	assert.Equal(t, int64(900), *summary.TotalPositive)
	assert.Equal(t, 8, *summary.ReviewScore)
	assert.Equal(t, "Very Positive", *summary.ReviewScoreDesc)
}

func TestGetReviewSummary_Unsuccessful(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success":2}`)
	})

	_, err := client.GetReviewSummary(context.Background(), "730")
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestGetReviewsPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "*", query.Get("cursor"))
		assert.Equal(t, "2", query.Get("num_per_page"))
		assert.Equal(t, "recent", query.Get("filter"))
		assert.Equal(t, "all", query.Get("language"))
		_, _ = io.WriteString(w, `{"success":1,"cursor":"AoJ4next","query_summary":{"total_reviews":42},"reviews":[
			{"recommendationid":"111","author":{"steamid":"7656","playtime_forever":120,"playtime_at_review":60},
			 "language":"english","review":"great","timestamp_created":1700000000,"voted_up":true,
			 "votes_up":3,"votes_funny":1,"weighted_vote_score":0.52,"comment_count":0,"steam_purchase":true},
			{"recommendationid":222,"language":"brazilian","weighted_vote_score":"0"}]}`)
	})

	page, err := client.GetReviewsPage(context.Background(), service.ReviewPageQuery{AppID: "730", PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page.Reviews, 2)
	assert.Equal(t, "AoJ4next", page.NextCursor)
	require.NotNil(t, page.TotalReviews)
	assert.Equal(t, int64(42), *page.TotalReviews)

	first := page.Reviews[0]
	assert.Equal(t, "111", first.RecommendationID)
	assert.Equal(t, "7656", *first.AuthorSteamID)
	assert.Equal(t, int64(60), *first.AuthorPlaytimeAtReview)
	assert.Equal(t, "0.52", *first.WeightedVoteScore)
	assert.True(t, *first.VotedUp)

	second := page.Reviews[1]
	assert.Equal(t, "222", second.RecommendationID)
	assert.Nil(t, second.AuthorSteamID)
	assert.Nil(t, second.Review)
}

func TestGetReviewsPage_EndOfFeed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":1,"cursor":"`+r.URL.Query().Get("cursor")+`","reviews":[]}`)
	})

	page, err := client.GetReviewsPage(context.Background(), service.ReviewPageQuery{AppID: "730", Cursor: "AoJ4last", PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Reviews)
	assert.Empty(t, page.NextCursor)
	assert.Nil(t, page.TotalReviews)
}

func TestGetReviewsPage_MissingRecommendationID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success":1,"cursor":"x","reviews":[{"review":"no id"}]}`)
	})

	_, err := client.GetReviewsPage(context.Background(), service.ReviewPageQuery{AppID: "730", PageSize: 10})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPayload)
}

func TestSearchApps(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/community/actions/SearchApps/half life", r.URL.Path)
		_, _ = io.WriteString(w, `[{"appid":"70","name":"Half-Life","icon":"i","logo":"l"},{"appid":"bad","name":"x"},{"appid":220,"name":"Half-Life 2"}]`)
	})

	results, err := client.SearchApps(context.Background(), "half life")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "70", results[0].AppID)
	assert.Equal(t, "l", results[0].Logo)
	assert.Equal(t, "220", results[1].AppID)
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := NewClient(&config.SteamConfig{StoreBaseURL: server.URL}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.GetReviewSummary(context.Background(), "730")
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
	assert.True(t, domainerrors.IsRetryable(err))
}
