package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoagiehub/hoagie-api/internal/domain/apperr"
	"github.com/hoagiehub/hoagie-api/internal/domain/entity"
	"github.com/hoagiehub/hoagie-api/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

const commentSelect = `
	SELECT c.id, c.text, c.hoagie_id, h.name, c.created_at, c.updated_at,
	       u.id, u.name, u.email
	FROM comments c
	JOIN users u ON u.id = c.user_id
	JOIN hoagies h ON h.id = c.hoagie_id
`

func scanComment(row interface{ Scan(dest ...any) error }) (*entity.Comment, error) {
	c := &entity.Comment{}
	if err := row.Scan(
		&c.ID, &c.Text, &c.HoagieID, &c.HoagieName, &c.CreatedAt, &c.UpdatedAt,
		&c.Author.ID, &c.Author.Name, &c.Author.Email,
	); err != nil {
		return nil, mapPgError(err)
	}
	return c, nil
}

func (r *CommentRepository) Create(ctx context.Context, in repository.CreateComment) (*entity.Comment, error) {
	var id string
	row := r.pool.QueryRow(ctx, `
		INSERT INTO comments (text, user_id, hoagie_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, in.Text, in.AuthorID, in.HoagieID)
	if err := row.Scan(&id); err != nil {
		return nil, mapPgError(err)
	}
	return r.GetByID(ctx, id)
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	return scanComment(r.pool.QueryRow(ctx, commentSelect+` WHERE c.id = $1`, id))
}

func (r *CommentRepository) List(ctx context.Context, hoagieID string, limit, offset int) ([]entity.Comment, int, error) {
	where := ``
	countArgs := []any{}
	args := []any{limit, offset}
	if hoagieID != "" {
		where = ` WHERE c.hoagie_id = $3`
		args = append(args, hoagieID)
		countArgs = append(countArgs, hoagieID)
	}

	var total int
	countSQL := `SELECT count(*) FROM comments c`
	if hoagieID != "" {
		countSQL += ` WHERE c.hoagie_id = $1`
	}
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, commentSelect+where+`
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $1 OFFSET $2
	`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entity.Comment, 0, limit)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *c)
	}
	return items, total, rows.Err()
}

func (r *CommentRepository) UpdateText(ctx context.Context, id, text string) (*entity.Comment, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE comments
		SET text = $1, updated_at = now()
		WHERE id = $2
	`, text, id)
	if err != nil {
		return nil, mapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return nil, apperr.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete returns the removed comment so the caller can adjust the owning
// hoagie's counter. A missing comment is ErrNotFound and nothing is touched.
func (r *CommentRepository) Delete(ctx context.Context, id string) (*entity.Comment, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return nil, mapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
