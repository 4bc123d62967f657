package field

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for fields, courts and photos.
type Repository interface {
	Create(ctx context.Context, f *Field) error
	GetByID(ctx context.Context, id string) (*Field, error)
	List(ctx context.Context, filter Filter) ([]*Field, int, error)
	Update(ctx context.Context, f *Field) error
	Delete(ctx context.Context, id string) error

	CreateCourt(ctx context.Context, c *Court) error
	GetCourtByID(ctx context.Context, id string) (*Court, error)
	ListCourts(ctx context.Context, fieldID string) ([]*Court, error)
	DeleteCourt(ctx context.Context, id string) error

	CreatePhoto(ctx context.Context, p *Photo) error
	GetPhotoByID(ctx context.Context, id string) (*Photo, error)
	ListPhotos(ctx context.Context, fieldID string) ([]*Photo, error)
	DeletePhoto(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, f *Field) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.fields").
		Columns(
			"name", "sport_type", "address", "description",
			"opening_hours_start", "opening_hours_end", "slot_duration",
			"longitude", "latitude",
		).
		Values(
			f.Name, f.SportType, f.Address, f.Description,
			f.OpeningHoursStart, f.OpeningHoursEnd, f.SlotDuration,
			f.Longitude, f.Latitude,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create field query failed: %w", err)
	}

	// Postgres casts the "HH:MM:SS" strings to TIME on insert.
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&f.ID, &f.CreatedAt); err != nil {
		return fmt.Errorf("create field failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Field, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "name", "sport_type", "address", "description",
		"opening_hours_start::text", "opening_hours_end::text", "slot_duration",
		"longitude", "latitude", "created_at",
	).
		From("public.fields").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get field query failed: %w", err)
	}

	// TIME columns are cast to ::text to scan into strings.
	var f Field
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&f.ID, &f.Name, &f.SportType, &f.Address, &f.Description,
		&f.OpeningHoursStart, &f.OpeningHoursEnd, &f.SlotDuration,
		&f.Longitude, &f.Latitude, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get field failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Field, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "name", "sport_type", "address", "description",
		"opening_hours_start::text", "opening_hours_end::text", "slot_duration",
		"longitude", "latitude", "created_at",
		"count(*) OVER() as total_count",
	).
		From("public.fields")

	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"name": kw},
			squirrel.ILike{"address": kw},
		})
	}
	if filter.SportType != "" {
		query = query.Where(squirrel.Eq{"sport_type": filter.SportType})
	}

	query = query.OrderBy("created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list fields query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list fields failed: %w", err)
	}
	defer rows.Close()

	var fields []*Field
	var total int

	for rows.Next() {
		var f Field
		if err := rows.Scan(
			&f.ID, &f.Name, &f.SportType, &f.Address, &f.Description,
			&f.OpeningHoursStart, &f.OpeningHoursEnd, &f.SlotDuration,
			&f.Longitude, &f.Latitude, &f.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan field failed: %w", err)
		}
		fields = append(fields, &f)
	}

	return fields, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, f *Field) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.fields").
		Set("name", f.Name).
		Set("sport_type", f.SportType).
		Set("address", f.Address).
		Set("description", f.Description).
		Set("opening_hours_start", f.OpeningHoursStart).
		Set("opening_hours_end", f.OpeningHoursEnd).
		Set("slot_duration", f.SlotDuration).
		Set("longitude", f.Longitude).
		Set("latitude", f.Latitude).
		Where(squirrel.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update field query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update field failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.fields").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete field query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete field failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CreateCourt(ctx context.Context, c *Court) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.courts").
		Columns("field_id", "name", "surface").
		Values(c.FieldID, c.Name, c.Surface).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create court query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("create court failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetCourtByID(ctx context.Context, id string) (*Court, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"c.id", "c.field_id", "f.name", "c.name", "c.surface", "c.created_at",
	).
		From("public.courts c").
		Join("public.fields f ON c.field_id = f.id").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get court query failed: %w", err)
	}

	var c Court
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.FieldID, &c.FieldName, &c.Name, &c.Surface, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, fmt.Errorf("get court failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) ListCourts(ctx context.Context, fieldID string) ([]*Court, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"c.id", "c.field_id", "f.name", "c.name", "c.surface", "c.created_at",
	).
		From("public.courts c").
		Join("public.fields f ON c.field_id = f.id").
		Where(squirrel.Eq{"c.field_id": fieldID}).
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list courts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var courts []*Court
	for rows.Next() {
		var c Court
		if err := rows.Scan(&c.ID, &c.FieldID, &c.FieldName, &c.Name, &c.Surface, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan court failed: %w", err)
		}
		courts = append(courts, &c)
	}

	return courts, nil
}

func (r *pgxRepository) DeleteCourt(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete court query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrCourtNotFound
	}
	return nil
}

func (r *pgxRepository) CreatePhoto(ctx context.Context, p *Photo) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.field_photos").
		Columns("id", "field_id", "filename", "storage_path", "thumbnail_path", "content_type", "size").
		Values(p.ID, p.FieldID, p.Filename, p.StoragePath, p.ThumbnailPath, p.ContentType, p.Size).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create photo query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("create photo failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetPhotoByID(ctx context.Context, id string) (*Photo, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "field_id", "filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at",
	).
		From("public.field_photos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get photo query failed: %w", err)
	}

	var p Photo
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.FieldID, &p.Filename, &p.StoragePath, &p.ThumbnailPath, &p.ContentType, &p.Size, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("get photo failed: %w", err)
	}
	return &p, nil
}

func (r *pgxRepository) ListPhotos(ctx context.Context, fieldID string) ([]*Photo, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "field_id", "filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at",
	).
		From("public.field_photos").
		Where(squirrel.Eq{"field_id": fieldID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list photos query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list photos failed: %w", err)
	}
	defer rows.Close()

	var photos []*Photo
	for rows.Next() {
		var p Photo
		if err := rows.Scan(
			&p.ID, &p.FieldID, &p.Filename, &p.StoragePath, &p.ThumbnailPath, &p.ContentType, &p.Size, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan photo failed: %w", err)
		}
		photos = append(photos, &p)
	}

	return photos, nil
}

func (r *pgxRepository) DeletePhoto(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.field_photos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete photo query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete photo failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrPhotoNotFound
	}
	return nil
}
