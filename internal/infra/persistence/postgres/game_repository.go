package postgres

import (
	"context"
	"encoding/json"
	"strings"

	"steamcache/internal/domain/entity"
	domainerrors "steamcache/internal/domain/errors"
	"steamcache/internal/domain/repository"
	"steamcache/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const listSeparator = ", "

// gameUpsertColumns are overwritten on conflict; created_at keeps the first insert.
var gameUpsertColumns = []string{
	"name",
	"short_description",
	"header_image",
	"developers",
	"publishers",
	"price_overview",
	"release_date",
	"placeholder",
	"updated_at",
}

type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository is the constructor for gameRepository.
func NewGameRepository(db *gorm.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

// FindByAppID retrieves the stored metadata of an application.
func (repo *gameRepository) FindByAppID(ctx context.Context, appID string) (*entity.Game, error) {
	var gameM model.GameModel
	err := repo.db.WithContext(ctx).Where("app_id = ?", appID).Take(&gameM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGameNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find game")
	}

	return toGameDomain(&gameM), nil
}

// Upsert inserts the game or replaces every metadata column of the existing row.
func (repo *gameRepository) Upsert(ctx context.Context, game *entity.Game) error {
	gameM := fromGameDomain(game)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "app_id"}},
			DoUpdates: clause.AssignmentColumns(gameUpsertColumns),
		}).
		Create(gameM).Error
	if err != nil {
		return translateWriteError(err, "failed to upsert game")
	}

	game.UpdatedAt = gameM.UpdatedAt

	return nil
}

// CreateIfAbsent inserts the game only when no row exists for its application id.
func (repo *gameRepository) CreateIfAbsent(ctx context.Context, game *entity.Game) (bool, error) {
	gameM := fromGameDomain(game)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "app_id"}},
			DoNothing: true,
		}).
		Create(gameM)
	if result.Error != nil {
		return false, translateWriteError(result.Error, "failed to insert game")
	}

	return result.RowsAffected > 0, nil
}

// SearchByName ranks exact matches first, then prefixes, then substrings.
func (repo *gameRepository) SearchByName(ctx context.Context, term string, limit int) ([]*entity.Game, error) {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return []*entity.Game{}, nil
	}

	var rows []*model.GameModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+needle+"%").
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN LOWER(name) = ? THEN 0 WHEN LOWER(name) LIKE ? THEN 1 ELSE 2 END, name ASC",
			Vars:               []any{needle, needle + "%"},
			WithoutParentheses: true,
		}}).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to search games by name")
	}

	games := make([]*entity.Game, 0, len(rows))
	for _, row := range rows {
		games = append(games, toGameDomain(row))
	}

	return games, nil
}

// FindTop ranks games by their aggregate. Games without an aggregate are never listed.
func (repo *gameRepository) FindTop(ctx context.Context, limit int, minReviews int64, sort repository.TopGamesSort) ([]*entity.TopGame, error) {
	query := repo.db.WithContext(ctx).
		Table("review_aggregates AS a").
		Select("a.*").
		Joins("JOIN games AS g ON g.app_id = a.app_id").
		Where("a.total_reviews >= ?", minReviews)

	switch sort {
	case repository.TopGamesByReviews:
		query = query.Order("a.total_reviews DESC").Order("a.app_id ASC")
	case repository.TopGamesByRecent:
		query = query.Order("g.updated_at DESC").Order("a.app_id ASC")
	default:
		query = query.Order("a.review_score DESC").Order("a.total_positive DESC").Order("a.app_id ASC")
	}

	var aggregates []*model.ReviewAggregateModel
	if err := query.Limit(limit).Find(&aggregates).Error; err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to rank games")
	}

	if len(aggregates) == 0 {
		return []*entity.TopGame{}, nil
	}

	appIDs := make([]string, 0, len(aggregates))
	for _, aggregate := range aggregates {
		appIDs = append(appIDs, aggregate.AppID)
	}

	games, err := findGamesByAppIDs(ctx, repo.db, appIDs)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.TopGame, 0, len(aggregates))
	for _, aggregate := range aggregates {
		game, ok := games[aggregate.AppID]
		if !ok {
			continue
		}
		result = append(result, &entity.TopGame{
			Game:      game,
			Aggregate: toReviewAggregateDomain(aggregate),
		})
	}

	return result, nil
}

// findGamesByAppIDs loads games keyed by application id.
func findGamesByAppIDs(ctx context.Context, db *gorm.DB, appIDs []string) (map[string]*entity.Game, error) {
	games := make(map[string]*entity.Game, len(appIDs))
	if len(appIDs) == 0 {
		return games, nil
	}

	var rows []*model.GameModel
	if err := db.WithContext(ctx).Where("app_id IN ?", appIDs).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to load games")
	}

	for _, row := range rows {
		games[row.AppID] = toGameDomain(row)
	}

	return games, nil
}

// --- Mapper Functions ---

func toGameDomain(data *model.GameModel) *entity.Game {
	if data == nil {
		return nil
	}

	return &entity.Game{
		AppID:            data.AppID,
		Name:             data.Name,
		ShortDescription: data.ShortDescription,
		HeaderImage:      data.HeaderImage,
		Developers:       splitList(data.Developers),
		Publishers:       splitList(data.Publishers),
		PriceOverview:    toRawJSON(data.PriceOverview),
		ReleaseDate:      toRawJSON(data.ReleaseDate),
		Placeholder:      data.Placeholder,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromGameDomain(data *entity.Game) *model.GameModel {
	if data == nil {
		return nil
	}

	return &model.GameModel{
		AppID:            data.AppID,
		Name:             data.Name,
		ShortDescription: data.ShortDescription,
		HeaderImage:      data.HeaderImage,
		Developers:       strings.Join(data.Developers, listSeparator),
		Publishers:       strings.Join(data.Publishers, listSeparator),
		PriceOverview:    datatypes.JSON(data.PriceOverview),
		ReleaseDate:      datatypes.JSON(data.ReleaseDate),
		Placeholder:      data.Placeholder,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func splitList(joined string) []string {
	if joined == "" {
		return []string{}
	}

	return strings.Split(joined, listSeparator)
}

func toRawJSON(data datatypes.JSON) json.RawMessage {
	if len(data) == 0 {
		return nil
	}

	return json.RawMessage(data)
}
