// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/bizmetrics-api/infrastructure/database"
	"github.com/vfg2006/bizmetrics-api/internal/domain"
)

//go:generate mockgen -source=upload_archive.go -destination=mocks/mock_upload_archive.go -package=mocks

const (
	uploadArchiveTable = "metrics_uploads"
)

var uploadArchiveColumns = []string{
	"id",
	"file_name",
	"size_bytes",
	"payload",
	"received_at",
}

// UploadFilter restringe a listagem do arquivo histórico
type UploadFilter struct {
	Since *time.Time
	Limit uint64
}

type UploadArchiveRepository interface {
	Save(ctx context.Context, entry *domain.UploadEntry) error
	List(ctx context.Context, filter UploadFilter) ([]*domain.UploadEntry, error)
	GetByID(ctx context.Context, id string) (*domain.UploadEntry, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type uploadArchiveRepository struct {
	db          database.Queryer
	placeholder squirrel.PlaceholderFormat
}

func NewUploadArchiveRepository(db database.Queryer, placeholder squirrel.PlaceholderFormat) UploadArchiveRepository {
	return &uploadArchiveRepository{
		db:          db,
		placeholder: placeholder,
	}
}

func (r *uploadArchiveRepository) Save(ctx context.Context, entry *domain.UploadEntry) error {
	query, args, err := squirrel.
		Insert(uploadArchiveTable).
		Columns(uploadArchiveColumns...).
		Values(
			entry.ID,
			entry.FileName,
			entry.SizeBytes,
			string(entry.Payload),
			entry.ReceivedAt.UTC(),
		).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *uploadArchiveRepository) List(ctx context.Context, filter UploadFilter) ([]*domain.UploadEntry, error) {
	queryBuilder := squirrel.
		Select(uploadArchiveColumns...).
		From(uploadArchiveTable).
		OrderBy("received_at DESC").
		PlaceholderFormat(r.placeholder)

	if filter.Since != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"received_at": filter.Since.UTC()})
	}

	if filter.Limit > 0 {
		queryBuilder = queryBuilder.Limit(filter.Limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.UploadEntry, 0)
	for rows.Next() {
		entry, err := scanUploadEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear upload: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// GetByID retorna nil, nil quando o upload não existe
func (r *uploadArchiveRepository) GetByID(ctx context.Context, id string) (*domain.UploadEntry, error) {
	query, args, err := squirrel.
		Select(uploadArchiveColumns...).
		From(uploadArchiveTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry, err := scanUploadEntry(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear upload: %w", err)
	}

	return entry, nil
}

func (r *uploadArchiveRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(uploadArchiveTable).
		Where(squirrel.Lt{"received_at": cutoff.UTC()}).
		PlaceholderFormat(r.placeholder).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar query de remoção: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas removidas: %w", err)
	}

	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUploadEntry(row rowScanner) (*domain.UploadEntry, error) {
	entry := &domain.UploadEntry{}
	var payload string

	err := row.Scan(
		&entry.ID,
		&entry.FileName,
		&entry.SizeBytes,
		&payload,
		&entry.ReceivedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Payload = []byte(payload)
	return entry, nil
}
