package session

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/portfolio/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/dbx"
)

// SQLiteStore keeps the session in the metadata table under
// common.SessionTokenKey and common.SessionUserKey.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Load(ctx context.Context) (string, string, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, ok, err := repo.Get(ctx, common.SessionTokenKey)
	if err != nil || !ok {
		return "", "", err
	}

	username, _, err := repo.Get(ctx, common.SessionUserKey)
	if err != nil {
		return "", "", err
	}
	return token, username, nil
}

func (s *SQLiteStore) Save(ctx context.Context, token, username string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.SessionTokenKey, token); err != nil {
			return err
		}
		return repo.Set(ctx, common.SessionUserKey, username)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, common.SessionTokenKey, common.SessionUserKey)
}
