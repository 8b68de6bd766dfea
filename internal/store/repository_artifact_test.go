// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platanus-hack/platanus-hack-25-team-35/internal/logger"
	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(db *sql.DB) ArtifactRepository {
	return NewArtifactRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var artifactRowColumns = []string{"id", "name", "source", "text", "remote_url", "local_path", "size", "received_at"}

func sampleArtifact() models.Artifact {
	return models.Artifact{
		ID:         "0192f7a0-0000-7000-8000-000000000001",
		Name:       "response-1.mp3",
		Source:     models.ArtifactFromResponse,
		Text:       "hola",
		RemoteURL:  "/uploads/audio/response-1.mp3",
		LocalPath:  "artifacts/0192f7a0-response-1.mp3",
		Size:       4,
		ReceivedAt: time.Date(2025, 11, 22, 10, 0, 0, 0, time.UTC),
	}
}

func artifactRow(rows *sqlmock.Rows, a models.Artifact) *sqlmock.Rows {
	return rows.AddRow(a.ID, a.Name, string(a.Source), a.Text, a.RemoteURL, a.LocalPath, a.Size, a.ReceivedAt)
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestArtifactRepository_Save_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)
	a := sampleArtifact()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO artifacts")).
		WithArgs(a.ID, a.Name, "response", a.Text, a.RemoteURL, a.LocalPath, a.Size, a.ReceivedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(testContext(), a))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArtifactRepository_Save_NoRows(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO artifacts")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Save(testContext(), sampleArtifact()), ErrArtifactNotSaved)
}

func TestArtifactRepository_Save_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)
	boom := errors.New("disk I/O error")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO artifacts")).WillReturnError(boom)

	err := repo.Save(testContext(), sampleArtifact())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to save artifact")
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestArtifactRepository_Get_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)
	a := sampleArtifact()

	mock.ExpectQuery(regexp.QuoteMeta("FROM artifacts WHERE id = ?")).
		WithArgs(a.ID).
		WillReturnRows(artifactRow(sqlmock.NewRows(artifactRowColumns), a))

	got, err := repo.Get(testContext(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestArtifactRepository_Get_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM artifacts WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(artifactRowColumns))

	_, err := repo.Get(testContext(), "missing")
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

// ── ListRecent ───────────────────────────────────────────────────────────────

func TestArtifactRepository_ListRecent(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	newer := sampleArtifact()
	newer.ID = "b"
	newer.ReceivedAt = newer.ReceivedAt.Add(time.Minute)
	older := sampleArtifact()
	older.ID = "a"

	rows := sqlmock.NewRows(artifactRowColumns)
	artifactRow(rows, newer)
	artifactRow(rows, older)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY received_at DESC, id DESC LIMIT 2")).WillReturnRows(rows)

	got, err := repo.ListRecent(testContext(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestArtifactRepository_ListRecent_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM artifacts")).WillReturnError(errors.New("locked"))

	_, err := repo.ListRecent(testContext(), 10)
	assert.Error(t, err)
}
