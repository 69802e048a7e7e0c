//go:build integration

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"radioai/internal/models"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	store     *SQLStorage
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("radioai"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	store, err := NewSQLStorage(DriverPostgres, connStr, nil)
	s.Require().NoError(err)
	s.store = store

	s.Require().NoError(Seed(s.ctx, store, time.Now()))
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.store != nil {
		s.store.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) TestSeededArticles() {
	articles, err := s.store.GetArticles(s.ctx, ArticleQuery{})
	s.Require().NoError(err)
	s.Len(articles, 12)

	results, err := s.store.SearchArticles(s.ctx, "quantum", "")
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal("MIT Technology Review", results[0].SourceName)
}

func (s *PostgresIntegrationSuite) TestProgressUpsert() {
	_, err := s.store.UpdateProgress(s.ctx, models.InsertListeningHistory{UserID: 1, ArticleID: 10, Progress: 20})
	s.Require().NoError(err)
	_, err = s.store.UpdateProgress(s.ctx, models.InsertListeningHistory{UserID: 1, ArticleID: 10, Progress: 80, Completed: true})
	s.Require().NoError(err)

	h, err := s.store.GetProgress(s.ctx, 1, 10)
	s.Require().NoError(err)
	s.Equal(80.0, h.Progress)
	s.True(h.Completed)
}

func (s *PostgresIntegrationSuite) TestDownloadsAndFavorites() {
	s.Require().NoError(s.store.AddDownload(s.ctx, 1, 4))
	s.Require().NoError(s.store.AddDownload(s.ctx, 1, 4))

	downloads, err := s.store.GetUserDownloads(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(downloads, 1)

	removed, err := s.store.RemoveDownload(s.ctx, 1, 4)
	s.Require().NoError(err)
	s.True(removed)

	_, err = s.store.AddFavorite(s.ctx, models.InsertFavorite{UserID: 1, ArticleID: 11})
	s.Require().NoError(err)
	ok, err := s.store.IsFavorite(s.ctx, 1, 11)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *PostgresIntegrationSuite) TestPlaylistArticlesKeepOrder() {
	p, err := s.store.CreatePlaylist(s.ctx, models.InsertPlaylist{UserID: 1, Name: "Order", ArticleIDs: []string{"9", "3"}})
	s.Require().NoError(err)

	articles, err := s.store.GetPlaylistArticles(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Require().Len(articles, 2)
	s.Equal(int64(9), articles[0].ID)
	s.Equal(int64(3), articles[1].ID)
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}
