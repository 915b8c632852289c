package steam

import (
	"bytes"
	"encoding/json"
)

// flexString accepts a JSON string or number; Steam sends both for ids and scores.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = flexString(str)

		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = flexString(num.String())

	return nil
}

// flexBool accepts true/false or 1/0; the review endpoint reports success as a number.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true", "1", `"1"`, `"true"`:
		*b = true
	case "null", "":
	default:
		*b = false
	}

	return nil
}

type appDetailsEnvelope struct {
	Success flexBool        `json:"success"`
	Data    *appDetailsData `json:"data"`
}

type appDetailsData struct {
	SteamAppID       flexString      `json:"steam_appid"`
	Name             *string         `json:"name"`
	ShortDescription *string         `json:"short_description"`
	HeaderImage      *string         `json:"header_image"`
	Developers       []string        `json:"developers"`
	Publishers       []string        `json:"publishers"`
	PriceOverview    json.RawMessage `json:"price_overview"`
	ReleaseDate      json.RawMessage `json:"release_date"`
}

type reviewsEnvelope struct {
	Success      flexBool      `json:"success"`
	QuerySummary *querySummary `json:"query_summary"`
	Reviews      []reviewItem  `json:"reviews"`
	Cursor       string        `json:"cursor"`
}

type querySummary struct {
	NumReviews      *int64  `json:"num_reviews"`
	ReviewScore     *int    `json:"review_score"`
	ReviewScoreDesc *string `json:"review_score_desc"`
	TotalPositive   *int64  `json:"total_positive"`
	TotalNegative   *int64  `json:"total_negative"`
	TotalReviews    *int64  `json:"total_reviews"`
}

type reviewAuthor struct {
	SteamID              *flexString `json:"steamid"`
	PlaytimeForever      *int64      `json:"playtime_forever"`
	PlaytimeAtReviewTime *int64      `json:"playtime_at_review"`
}

type reviewItem struct {
	RecommendationID         flexString    `json:"recommendationid"`
	Author                   *reviewAuthor `json:"author"`
	Language                 *string       `json:"language"`
	Review                   *string       `json:"review"`
	TimestampCreated         *int64        `json:"timestamp_created"`
	TimestampUpdated         *int64        `json:"timestamp_updated"`
	VotedUp                  *bool         `json:"voted_up"`
	VotesUp                  *int64        `json:"votes_up"`
	VotesFunny               *int64        `json:"votes_funny"`
	WeightedVoteScore        *flexString   `json:"weighted_vote_score"`
	CommentCount             *int64        `json:"comment_count"`
	SteamPurchase            *bool         `json:"steam_purchase"`
	ReceivedForFree          *bool         `json:"received_for_free"`
	WrittenDuringEarlyAccess *bool         `json:"written_during_early_access"`
}

type searchAppsItem struct {
	AppID flexString `json:"appid"`
	Name  string     `json:"name"`
	Icon  string     `json:"icon"`
	Logo  string     `json:"logo"`
}

func flexStringPtr(value *flexString) *string {
	if value == nil {
		return nil
	}
	str := string(*value)

	return &str
}
