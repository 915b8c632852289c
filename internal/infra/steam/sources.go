package steam

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"steamcache/internal/domain/constants"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/service"
	"steamcache/internal/util"

	"github.com/pkg/errors"
)

const (
	opAppDetails    = "steam.appdetails"
	opReviewSummary = "steam.appreviews.summary"
	opReviewsPage   = "steam.appreviews.page"
	opSearchApps    = "steam.searchapps"

	startCursor        = "*"
	defaultFeedFilter  = "recent"
	purchaseTypeAll    = "all"
	maxReviewsPageSize = 100
)

// GetAppMetadata reads the store details of one application.
func (c *client) GetAppMetadata(ctx context.Context, appID, locale string) (*service.AppMetadata, error) {
	query := url.Values{}
	query.Set("appids", appID)
	if locale != "" {
		query.Set("l", locale)
	}

	var envelope map[string]appDetailsEnvelope
	if err := c.getJSON(ctx, opAppDetails, c.storeBaseURL+"/api/appdetails", query, &envelope); err != nil {
		return nil, err
	}

	details, ok := envelope[appID]
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPayload, "%s: app %s missing from response", opAppDetails, appID)
	}
	if !details.Success {
		return nil, domainerrors.NewUpstreamError(opAppDetails, 0, errors.Errorf("app %s reported unsuccessful", appID))
	}
	if details.Data == nil {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPayload, "%s: app %s has no data", opAppDetails, appID)
	}

	data := details.Data

	return &service.AppMetadata{
		AppID:            appID,
		Name:             data.Name,
		ShortDescription: data.ShortDescription,
		HeaderImage:      data.HeaderImage,
		Developers:       data.Developers,
		Publishers:       data.Publishers,
		PriceOverview:    nullableRaw(data.PriceOverview),
		ReleaseDate:      nullableRaw(data.ReleaseDate),
	}, nil
}

// GetReviewSummary reads only the aggregate block of the review endpoint.
func (c *client) GetReviewSummary(ctx context.Context, appID string) (*service.ReviewSummary, error) {
	query := url.Values{}
	query.Set("json", "1")
	query.Set("num_per_page", "0")
	query.Set("language", constants.LanguageAll)
	query.Set("purchase_type", purchaseTypeAll)

	var envelope reviewsEnvelope
	if err := c.getJSON(ctx, opReviewSummary, c.storeBaseURL+"/appreviews/"+url.PathEscape(appID), query, &envelope); err != nil {
		return nil, err
	}

	if !envelope.Success {
		return nil, domainerrors.NewUpstreamError(opReviewSummary, 0, errors.Errorf("app %s reported unsuccessful", appID))
	}
	if envelope.QuerySummary == nil {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPayload, "%s: app %s has no query_summary", opReviewSummary, appID)
	}

	summary := envelope.QuerySummary

	return &service.ReviewSummary{
		TotalReviews:    summary.TotalReviews,
		TotalPositive:   summary.TotalPositive,
		TotalNegative:   summary.TotalNegative,
		ReviewScore:     summary.ReviewScore,
		ReviewScoreDesc: summary.ReviewScoreDesc,
	}, nil
}

// GetReviewsPage reads one page of the feed. The feed is exhausted when a
// page is empty or Steam hands back the cursor it was given.
func (c *client) GetReviewsPage(ctx context.Context, q service.ReviewPageQuery) (*service.ReviewPage, error) {
	cursor := q.Cursor
	if cursor == "" {
		cursor = startCursor
	}
	filter := q.Filter
	if filter == "" {
		filter = defaultFeedFilter
	}
	language := q.Language
	if language == "" {
		language = constants.LanguageAll
	}
	pageSize := min(max(q.PageSize, 1), maxReviewsPageSize)

	query := url.Values{}
	query.Set("json", "1")
	query.Set("cursor", cursor)
	query.Set("num_per_page", strconv.Itoa(pageSize))
	query.Set("filter", filter)
	query.Set("language", language)
	query.Set("purchase_type", purchaseTypeAll)

	var envelope reviewsEnvelope
	if err := c.getJSON(ctx, opReviewsPage, c.storeBaseURL+"/appreviews/"+url.PathEscape(q.AppID), query, &envelope); err != nil {
		return nil, err
	}

	if !envelope.Success {
		return nil, domainerrors.NewUpstreamError(opReviewsPage, 0, errors.Errorf("app %s reported unsuccessful", q.AppID))
	}

	page := &service.ReviewPage{Reviews: make([]service.ReviewItem, 0, len(envelope.Reviews))}
	for i, item := range envelope.Reviews {
		id := string(item.RecommendationID)
		if id == "" {
			return nil, errors.Wrapf(domainerrors.ErrInvalidPayload, "%s: review %d has no recommendationid", opReviewsPage, i)
		}
		page.Reviews = append(page.Reviews, toReviewItem(id, item))
	}

	if len(page.Reviews) > 0 && envelope.Cursor != "" && envelope.Cursor != cursor {
		page.NextCursor = envelope.Cursor
	}

	if cursor == startCursor && envelope.QuerySummary != nil {
		page.TotalReviews = envelope.QuerySummary.TotalReviews
	}

	c.logger.DebugContext(ctx, "Steam review page fetched",
		slog.String("app_id", q.AppID),
		slog.Int("reviews", len(page.Reviews)),
		slog.Bool("has_next", page.NextCursor != ""),
	)

	return page, nil
}

// SearchApps queries the community search by name.
func (c *client) SearchApps(ctx context.Context, term string) ([]service.AppSearchResult, error) {
	var items []searchAppsItem
	if err := c.getJSON(ctx, opSearchApps, c.communityBaseURL+"/actions/SearchApps/"+url.PathEscape(term), nil, &items); err != nil {
		return nil, err
	}

	results := make([]service.AppSearchResult, 0, len(items))
	for _, item := range items {
		appID := string(item.AppID)
		if !util.IsNumericID(appID) {
			continue
		}
		results = append(results, service.AppSearchResult{
			AppID: appID,
			Name:  item.Name,
			Icon:  item.Icon,
			Logo:  item.Logo,
		})
	}

	return results, nil
}

func toReviewItem(id string, item reviewItem) service.ReviewItem {
	result := service.ReviewItem{
		RecommendationID:         id,
		Language:                 item.Language,
		Review:                   item.Review,
		TimestampCreated:         item.TimestampCreated,
		TimestampUpdated:         item.TimestampUpdated,
		VotedUp:                  item.VotedUp,
		VotesUp:                  item.VotesUp,
		VotesFunny:               item.VotesFunny,
		WeightedVoteScore:        flexStringPtr(item.WeightedVoteScore),
		CommentCount:             item.CommentCount,
		SteamPurchase:            item.SteamPurchase,
		ReceivedForFree:          item.ReceivedForFree,
		WrittenDuringEarlyAccess: item.WrittenDuringEarlyAccess,
	}

	if item.Author != nil {
		result.AuthorSteamID = flexStringPtr(item.Author.SteamID)
		result.AuthorPlaytimeForever = item.Author.PlaytimeForever
		result.AuthorPlaytimeAtReview = item.Author.PlaytimeAtReviewTime
	}

	return result
}

func nullableRaw(raw []byte) []byte {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	return raw
}
