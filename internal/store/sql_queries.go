package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/platanus-hack/platanus-hack-25-team-35/models"
)

const artifactsTable = "artifacts"

var artifactColumns = []string{
	"id",
	"name",
	"source",
	"text",
	"remote_url",
	"local_path",
	"size",
	"received_at",
}

// sqlite takes "?" placeholders, which is squirrel's default.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertArtifactQuery(a models.Artifact) (string, []any, error) {
	return builder.Insert(artifactsTable).
		Columns(artifactColumns...).
		Values(a.ID, a.Name, string(a.Source), a.Text, a.RemoteURL, a.LocalPath, a.Size, a.ReceivedAt.UTC()).
		ToSql()
}

func buildGetArtifactQuery(id string) (string, []any, error) {
	return builder.Select(artifactColumns...).
		From(artifactsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListRecentArtifactsQuery(limit uint64) (string, []any, error) {
	return builder.Select(artifactColumns...).
		From(artifactsTable).
		OrderBy("received_at DESC", "id DESC").
		Limit(limit).
		ToSql()
}
