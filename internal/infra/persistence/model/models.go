package model

// All lists every model in migration order.
func All() []any {
	return []any{
		&GameModel{},
		&ReviewAggregateModel{},
		&ReviewModel{},
		&ReviewFeedSyncModel{},
		&SearchCacheEntryModel{},
		&UserModel{},
		&FavoriteModel{},
	}
}
