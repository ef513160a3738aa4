package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/homeshelf/homeshelf/internal/lookup"
)

var (
	ErrItemNotFound = errors.New("catalog item not found")
	ErrInvalidItem  = errors.New("invalid catalog item")
)

const itemColumns = `id, media, title, creator, genres, format, release_date,
	identifier_kind, identifier, rating, description, image_url, notes,
	created_at, updated_at`

// Service provides catalog item operations.
type Service struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewService creates a new catalog service.
func NewService(db *sql.DB, logger zerolog.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Create validates and stores a new item.
func (s *Service) Create(ctx context.Context, input *CreateItemInput) (*Item, error) {
	media, err := lookup.ParseMediaType(input.Media)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidItem)
	}

	now := time.Now().UTC()
	item := &Item{
		ID:             uuid.NewString(),
		Media:          media,
		Title:          input.Title,
		Creator:        input.Creator,
		Genres:         input.Genres,
		Format:         input.Format,
		ReleaseDate:    input.ReleaseDate,
		IdentifierKind: input.IdentifierKind,
		Identifier:     input.Identifier,
		Rating:         input.Rating,
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	genres, err := encodeGenres(item.Genres)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO catalog_items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, string(item.Media), item.Title, item.Creator, genres,
		item.Format, item.ReleaseDate, item.IdentifierKind, item.Identifier,
		item.Rating, item.Description, item.ImageURL, item.Notes,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.logger.Info().
		Str("id", item.ID).
		Str("media", string(item.Media)).
		Str("title", item.Title).
		Msg("Created catalog item")

	return item, nil
}

// Get retrieves an item by ID.
func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM catalog_items WHERE id = ?`, id)

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

// List returns items filtered by media type and title search, newest first.
func (s *Service) List(ctx context.Context, opts ListItemsOptions) ([]*Item, error) {
	if opts.PageSize <= 0 {
		opts.PageSize = 100
	}
	if opts.Page <= 0 {
		opts.Page = 1
	}
	offset := (opts.Page - 1) * opts.PageSize

	query := `SELECT ` + itemColumns + ` FROM catalog_items WHERE 1=1`
	args := []interface{}{}
	if opts.Media != "" {
		media, err := lookup.ParseMediaType(opts.Media)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidItem, err)
		}
		query += ` AND media = ?`
		args = append(args, string(media))
	}
	if opts.Search != "" {
		query += ` AND (title LIKE ? OR creator LIKE ?)`
		term := "%" + opts.Search + "%"
		args = append(args, term, term)
	}
	query += ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, opts.PageSize, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]*Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Update applies a partial update to an item.
func (s *Service) Update(ctx context.Context, id string, input *UpdateItemInput) (*Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrInvalidItem)
		}
		item.Title = *input.Title
	}
	if input.Creator != nil {
		item.Creator = *input.Creator
	}
	if input.Genres != nil {
		item.Genres = *input.Genres
	}
	if input.Format != nil {
		item.Format = *input.Format
	}
	if input.ReleaseDate != nil {
		item.ReleaseDate = *input.ReleaseDate
	}
	if input.Rating != nil {
		item.Rating = *input.Rating
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.Notes != nil {
		item.Notes = *input.Notes
	}
	item.UpdatedAt = time.Now().UTC()

	genres, err := encodeGenres(item.Genres)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE catalog_items
		SET title = ?, creator = ?, genres = ?, format = ?, release_date = ?,
			rating = ?, description = ?, image_url = ?, notes = ?, updated_at = ?
		WHERE id = ?`,
		item.Title, item.Creator, genres, item.Format, item.ReleaseDate,
		item.Rating, item.Description, item.ImageURL, item.Notes,
		item.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM catalog_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	s.logger.Info().Str("id", id).Msg("Deleted catalog item")
	return nil
}

// Count returns the number of items per media type.
func (s *Service) Count(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT media, COUNT(*) FROM catalog_items GROUP BY media`)
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var media string
		var count int
		if err := rows.Scan(&media, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[media] = count
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (*Item, error) {
	var item Item
	var media, genres string
	err := row.Scan(
		&item.ID, &media, &item.Title, &item.Creator, &genres,
		&item.Format, &item.ReleaseDate, &item.IdentifierKind,
		&item.Identifier, &item.Rating, &item.Description, &item.ImageURL,
		&item.Notes, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.Media = lookup.MediaType(media)
	if err := json.Unmarshal([]byte(genres), &item.Genres); err != nil {
		return nil, fmt.Errorf("failed to decode genres: %w", err)
	}
	return &item, nil
}

func encodeGenres(genres []string) (string, error) {
	if genres == nil {
		genres = []string{}
	}
	data, err := json.Marshal(genres)
	if err != nil {
		return "", fmt.Errorf("failed to encode genres: %w", err)
	}
	return string(data), nil
}
