package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/psigiovana/contratos-assinados/internal/entity"
)

// Repository is the upload journal.
type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) CreateUpload(ctx context.Context, upload entity.Upload) error {
	sqlQuery :=
		`INSERT INTO uploads
			(id, path, size, sha, created, status, error, created_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, sqlQuery,
		upload.ID,
		upload.Path,
		upload.Size,
		upload.SHA,
		upload.Created,
		upload.Status,
		upload.Error,
		upload.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert upload: %w", err)
	}

	return nil
}

func (r *Repository) UploadsListByFilter(ctx context.Context, filter entity.UploadsFilter) ([]entity.Upload, int, error) {
	stmt := sq.Select("count(*)").From("uploads").PlaceholderFormat(sq.Dollar)
	stmt = applyStatus(stmt, filter)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var count int

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	if count == 0 {
		return []entity.Upload{}, 0, nil
	}

	stmt = sq.Select(
		"id",
		"path",
		"size",
		"sha",
		"created",
		"status",
		"error",
		"created_at",
	).From("uploads").PlaceholderFormat(sq.Dollar)

	stmt = applyUploadsFilter(stmt, filter)

	sqlQuery, args, err = stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	uploads := make([]entity.Upload, 0, filter.Limit)

	for rows.Next() {
		var upload entity.Upload

		err = rows.Scan(
			&upload.ID,
			&upload.Path,
			&upload.Size,
			&upload.SHA,
			&upload.Created,
			&upload.Status,
			&upload.Error,
			&upload.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}

		uploads = append(uploads, upload)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return uploads, count, nil
}

func applyStatus(stmt sq.SelectBuilder, filter entity.UploadsFilter) sq.SelectBuilder {
	if filter.Status != "" {
		stmt = stmt.Where(sq.Eq{"status": filter.Status})
	}

	return stmt
}

func applyUploadsFilter(stmt sq.SelectBuilder, filter entity.UploadsFilter) sq.SelectBuilder {
	stmt = applyStatus(stmt, filter)

	stmt = stmt.Limit(filter.Limit)
	stmt = stmt.Offset((filter.Page - 1) * filter.Limit)
	stmt = stmt.OrderBy(fmt.Sprintf("created_at %s", filter.OrderBy))

	return stmt
}
