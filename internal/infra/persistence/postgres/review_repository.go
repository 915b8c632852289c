package postgres

import (
	"context"
	"sort"
	"strings"
	"time"

	"steamcache/internal/domain/constants"
	"steamcache/internal/domain/entity"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/repository"
	"steamcache/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Keyword ranking weights.
const (
	matchingReviewWeight = 10
	keywordScoreWeight   = 5
	usefulVoteWeight     = 0.1
	reviewVotesUpWeight  = 2
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// InsertIfAbsent keeps the first stored copy of a recommendation.
func (repo *reviewRepository) InsertIfAbsent(ctx context.Context, review *entity.Review) (bool, error) {
	reviewM := fromReviewDomain(review)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recommendation_id"}},
			DoNothing: true,
		}).
		Create(reviewM)
	if result.Error != nil {
		return false, translateWriteError(result.Error, "failed to insert review")
	}

	return result.RowsAffected > 0, nil
}

func (repo *reviewRepository) Count(ctx context.Context, filter repository.ReviewFilter) (int64, error) {
	var total int64
	if err := repo.filtered(ctx, filter).Model(&model.ReviewModel{}).Count(&total).Error; err != nil {
		return 0, domainerrors.NewStoreError(err, "failed to count reviews")
	}

	return total, nil
}

// List returns reviews newest first; ties are broken by recommendation id.
func (repo *reviewRepository) List(ctx context.Context, filter repository.ReviewFilter, offset, limit int) ([]*entity.Review, error) {
	var rows []*model.ReviewModel
	err := repo.filtered(ctx, filter).
		Order("timestamp_created DESC").
		Order("recommendation_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list reviews")
	}

	return toReviewsDomain(rows), nil
}

func (repo *reviewRepository) LatestIngestedAt(ctx context.Context, appID string) (*time.Time, error) {
	var rows []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Select("recommendation_id", "ingested_at").
		Where("app_id = ?", appID).
		Order("ingested_at DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to read latest review ingest")
	}

	if len(rows) == 0 {
		return nil, nil
	}

	latest := rows[0].IngestedAt

	return &latest, nil
}

// CountByLanguage lists languages by descending review count.
func (repo *reviewRepository) CountByLanguage(ctx context.Context, appID string) ([]*entity.LanguageCount, error) {
	type languageRow struct {
		Language string
		Total    int64
	}

	var rows []languageRow
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("language, COUNT(*) AS total").
		Where("app_id = ?", appID).
		Group("language").
		Order("total DESC").
		Order("language ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to count reviews by language")
	}

	counts := make([]*entity.LanguageCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, &entity.LanguageCount{Language: row.Language, Count: row.Total})
	}

	return counts, nil
}

// SearchGamesByKeywords ranks applications by matching reviews, keyword coverage
// and the helpful votes of the matches.
func (repo *reviewRepository) SearchGamesByKeywords(ctx context.Context, keywords []string, limit int, minMatches int64) ([]*entity.KeywordGameMatch, error) {
	patterns := keywordPatterns(keywords)
	if len(patterns) == 0 {
		return []*entity.KeywordGameMatch{}, nil
	}

	coverageSQL, coverageVars := keywordCoverage(patterns)
	matchSQL, matchVars := keywordMatch(patterns)

	type keywordRow struct {
		AppID           string
		MatchingReviews int64
		KeywordScore    int64
		UsefulVotes     int64
	}

	var rows []keywordRow
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("app_id, COUNT(*) AS matching_reviews, SUM("+coverageSQL+") AS keyword_score, SUM(votes_up) AS useful_votes", coverageVars...).
		Where(matchSQL, matchVars...).
		Group("app_id").
		Having("COUNT(*) >= ?", minMatches).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to search reviews by keywords")
	}

	appIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		appIDs = append(appIDs, row.AppID)
	}

	games, err := findGamesByAppIDs(ctx, repo.db, appIDs)
	if err != nil {
		return nil, err
	}

	matches := make([]*entity.KeywordGameMatch, 0, len(rows))
	for _, row := range rows {
		game, ok := games[row.AppID]
		if !ok {
			continue
		}
		matches = append(matches, &entity.KeywordGameMatch{
			AppID:           row.AppID,
			Name:            game.Name,
			HeaderImage:     game.HeaderImage,
			MatchingReviews: row.MatchingReviews,
			KeywordScore:    row.KeywordScore,
			UsefulVotes:     row.UsefulVotes,
			Relevance: float64(row.MatchingReviews)*matchingReviewWeight +
				float64(row.KeywordScore)*keywordScoreWeight +
				float64(row.UsefulVotes)*usefulVoteWeight,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Relevance != matches[j].Relevance {
			return matches[i].Relevance > matches[j].Relevance
		}

		return matches[i].AppID < matches[j].AppID
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

// FindWithKeywords ranks matching reviews by votes_up*2 + votes_funny.
func (repo *reviewRepository) FindWithKeywords(ctx context.Context, appID string, keywords []string, limit int) ([]*entity.ReviewMatch, error) {
	patterns := keywordPatterns(keywords)
	if len(patterns) == 0 {
		return []*entity.ReviewMatch{}, nil
	}

	matchSQL, matchVars := keywordMatch(patterns)

	var rows []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("app_id = ?", appID).
		Where(matchSQL, matchVars...).
		Order("votes_up * 2 + votes_funny DESC").
		Order("timestamp_created DESC").
		Order("recommendation_id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to find reviews with keywords")
	}

	matches := make([]*entity.ReviewMatch, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, &entity.ReviewMatch{
			Review:    toReviewDomain(row),
			Relevance: float64(row.VotesUp*reviewVotesUpWeight + row.VotesFunny),
		})
	}

	return matches, nil
}

// filtered applies the predicate shared by Count and List.
func (repo *reviewRepository) filtered(ctx context.Context, filter repository.ReviewFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Where("app_id = ?", filter.AppID)

	language := strings.ToLower(strings.TrimSpace(filter.Language))
	if language != "" && language != constants.LanguageAll {
		query = query.Where("LOWER(COALESCE(language, ?)) = ?", constants.LanguageUnknown, language)
	}

	return query
}

// keywordPatterns trims, lower-cases and wraps each keyword for LIKE.
func keywordPatterns(keywords []string) []string {
	patterns := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		patterns = append(patterns, "%"+keyword+"%")
	}

	return patterns
}

// keywordMatch is true when the review body contains any keyword.
func keywordMatch(patterns []string) (string, []any) {
	clauses := make([]string, 0, len(patterns))
	vars := make([]any, 0, len(patterns))
	for _, pattern := range patterns {
		clauses = append(clauses, "LOWER(review) LIKE ?")
		vars = append(vars, pattern)
	}

	return "(" + strings.Join(clauses, " OR ") + ")", vars
}

// keywordCoverage counts how many distinct keywords one review body contains.
func keywordCoverage(patterns []string) (string, []any) {
	terms := make([]string, 0, len(patterns))
	vars := make([]any, 0, len(patterns))
	for _, pattern := range patterns {
		terms = append(terms, "CASE WHEN LOWER(review) LIKE ? THEN 1 ELSE 0 END")
		vars = append(vars, pattern)
	}

	return strings.Join(terms, " + "), vars
}

type reviewFeedSyncRepository struct {
	db *gorm.DB
}

// NewReviewFeedSyncRepository is the constructor for reviewFeedSyncRepository.
func NewReviewFeedSyncRepository(db *gorm.DB) repository.ReviewFeedSyncRepository {
	return &reviewFeedSyncRepository{db: db}
}

func (repo *reviewFeedSyncRepository) FindByAppID(ctx context.Context, appID string) (*entity.ReviewFeedSync, error) {
	var syncM model.ReviewFeedSyncModel
	err := repo.db.WithContext(ctx).Where("app_id = ?", appID).Take(&syncM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeedNeverSynced
		}

		return nil, domainerrors.NewStoreError(err, "failed to find review feed sync")
	}

	return &entity.ReviewFeedSync{AppID: syncM.AppID, SyncedAt: syncM.SyncedAt}, nil
}

func (repo *reviewFeedSyncRepository) Upsert(ctx context.Context, sync *entity.ReviewFeedSync) error {
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "app_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"synced_at"}),
		}).
		Create(&model.ReviewFeedSyncModel{AppID: sync.AppID, SyncedAt: sync.SyncedAt}).Error
	if err != nil {
		return translateWriteError(err, "failed to record review feed sync")
	}

	return nil
}

// --- Mapper Functions ---

func toReviewsDomain(rows []*model.ReviewModel) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, toReviewDomain(row))
	}

	return reviews
}

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		RecommendationID:         data.RecommendationID,
		AppID:                    data.AppID,
		AuthorSteamID:            data.AuthorSteamID,
		AuthorPlaytimeForever:    data.AuthorPlaytimeForever,
		AuthorPlaytimeAtReview:   data.AuthorPlaytimeAtReview,
		VotedUp:                  data.VotedUp,
		VotesUp:                  data.VotesUp,
		VotesFunny:               data.VotesFunny,
		WeightedVoteScore:        data.WeightedVoteScore,
		CommentCount:             data.CommentCount,
		SteamPurchase:            data.SteamPurchase,
		ReceivedForFree:          data.ReceivedForFree,
		WrittenDuringEarlyAccess: data.WrittenDuringEarlyAccess,
		Text:                     data.Review,
		TimestampCreated:         data.TimestampCreated,
		TimestampUpdated:         data.TimestampUpdated,
		Language:                 data.Language,
		IngestedAt:               data.IngestedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		RecommendationID:         data.RecommendationID,
		AppID:                    data.AppID,
		AuthorSteamID:            data.AuthorSteamID,
		AuthorPlaytimeForever:    data.AuthorPlaytimeForever,
		AuthorPlaytimeAtReview:   data.AuthorPlaytimeAtReview,
		VotedUp:                  data.VotedUp,
		VotesUp:                  data.VotesUp,
		VotesFunny:               data.VotesFunny,
		WeightedVoteScore:        data.WeightedVoteScore,
		CommentCount:             data.CommentCount,
		SteamPurchase:            data.SteamPurchase,
		ReceivedForFree:          data.ReceivedForFree,
		WrittenDuringEarlyAccess: data.WrittenDuringEarlyAccess,
		Review:                   data.Text,
		TimestampCreated:         data.TimestampCreated,
		TimestampUpdated:         data.TimestampUpdated,
		Language:                 data.Language,
		IngestedAt:               data.IngestedAt,
	}
}
