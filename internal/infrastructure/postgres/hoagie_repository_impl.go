package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoagiehub/hoagie-api/internal/domain/apperr"
	"github.com/hoagiehub/hoagie-api/internal/domain/entity"
	"github.com/hoagiehub/hoagie-api/internal/domain/repository"
)

type HoagieRepository struct {
	pool *pgxpool.Pool
}

func NewHoagieRepository(pool *pgxpool.Pool) *HoagieRepository {
	return &HoagieRepository{pool: pool}
}

const hoagieSelect = `
	SELECT h.id, h.name, h.ingredients, h.picture, h.comment_count,
	       h.created_at, h.updated_at,
	       u.id, u.name, u.email
	FROM hoagies h
	JOIN users u ON u.id = h.creator_id
`

func scanHoagie(row interface{ Scan(dest ...any) error }) (*entity.Hoagie, error) {
	h := &entity.Hoagie{Collaborators: []entity.UserSummary{}}
	if err := row.Scan(
		&h.ID, &h.Name, &h.Ingredients, &h.Picture, &h.CommentCount,
		&h.CreatedAt, &h.UpdatedAt,
		&h.Creator.ID, &h.Creator.Name, &h.Creator.Email,
	); err != nil {
		return nil, mapPgError(err)
	}
	return h, nil
}

func (r *HoagieRepository) Create(ctx context.Context, in repository.CreateHoagie) (*entity.Hoagie, error) {
	var id string
	row := r.pool.QueryRow(ctx, `
		INSERT INTO hoagies (name, ingredients, picture, creator_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, in.Name, in.Ingredients, in.Picture, in.CreatorID)
	if err := row.Scan(&id); err != nil {
		return nil, mapPgError(err)
	}
	return r.GetByID(ctx, id)
}

func (r *HoagieRepository) GetByID(ctx context.Context, id string) (*entity.Hoagie, error) {
	h, err := scanHoagie(r.pool.QueryRow(ctx, hoagieSelect+` WHERE h.id = $1`, id))
	if err != nil {
		return nil, err
	}
	collabs, err := r.collaboratorsFor(ctx, []string{h.ID})
	if err != nil {
		return nil, err
	}
	if cs, ok := collabs[h.ID]; ok {
		h.Collaborators = cs
	}
	return h, nil
}

func (r *HoagieRepository) List(ctx context.Context, creatorID string, limit, offset int) ([]entity.Hoagie, int, error) {
	where := ``
	countArgs := []any{}
	args := []any{limit, offset}
	if creatorID != "" {
		where = ` WHERE h.creator_id = $3`
		args = append(args, creatorID)
		countArgs = append(countArgs, creatorID)
	}

	var total int
	countSQL := `SELECT count(*) FROM hoagies h`
	if creatorID != "" {
		countSQL += ` WHERE h.creator_id = $1`
	}
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, hoagieSelect+where+`
		ORDER BY h.created_at DESC, h.id DESC
		LIMIT $1 OFFSET $2
	`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entity.Hoagie, 0, limit)
	ids := make([]string, 0, limit)
	for rows.Next() {
		h, err := scanHoagie(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *h)
		ids = append(ids, h.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	collabs, err := r.collaboratorsFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		if cs, ok := collabs[items[i].ID]; ok {
			items[i].Collaborators = cs
		}
	}
	return items, total, nil
}

// collaboratorsFor batch-loads the embedded collaborator summaries for a set
// of hoagies.
func (r *HoagieRepository) collaboratorsFor(ctx context.Context, hoagieIDs []string) (map[string][]entity.UserSummary, error) {
	out := make(map[string][]entity.UserSummary, len(hoagieIDs))
	if len(hoagieIDs) == 0 {
		return out, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT hc.hoagie_id, u.id, u.name, u.email
		FROM hoagie_collaborators hc
		JOIN users u ON u.id = hc.user_id
		WHERE hc.hoagie_id = ANY($1::uuid[])
		ORDER BY u.name, u.id
	`, hoagieIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var hoagieID string
		var u entity.UserSummary
		if err := rows.Scan(&hoagieID, &u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out[hoagieID] = append(out[hoagieID], u)
	}
	return out, rows.Err()
}

func (r *HoagieRepository) Update(ctx context.Context, id string, in repository.UpdateHoagie) (*entity.Hoagie, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		UPDATE hoagies
		SET name        = COALESCE($1, name),
		    ingredients = COALESCE($2, ingredients),
		    picture     = COALESCE($3, picture),
		    updated_at  = now()
		WHERE id = $4
	`, in.Name, in.Ingredients, in.Picture, id)
	if err != nil {
		return nil, mapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return nil, apperr.ErrNotFound
	}

	if in.Collaborators != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM hoagie_collaborators WHERE hoagie_id = $1`, id); err != nil {
			return nil, mapPgError(err)
		}
		for _, userID := range in.Collaborators {
			if _, err := tx.Exec(ctx, `
				INSERT INTO hoagie_collaborators (hoagie_id, user_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, id, userID); err != nil {
				return nil, mapPgError(err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes the hoagie and returns its last state. Comments and
// collaborator rows go with it (ON DELETE CASCADE), so nothing can reference
// the removed hoagie afterwards.
func (r *HoagieRepository) Delete(ctx context.Context, id string) (*entity.Hoagie, error) {
	h, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM hoagies WHERE id = $1`, id)
	if err != nil {
		return nil, mapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return nil, apperr.ErrNotFound
	}
	return h, nil
}

// AddCollaborator is add-if-absent at the store level: two concurrent adds of
// the same user produce a single row.
func (r *HoagieRepository) AddCollaborator(ctx context.Context, hoagieID, userID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO hoagie_collaborators (hoagie_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, hoagieID, userID)
	return mapPgError(err)
}

// RemoveCollaborator is remove-if-present; removing an absent collaborator
// affects zero rows and is not an error.
func (r *HoagieRepository) RemoveCollaborator(ctx context.Context, hoagieID, userID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM hoagie_collaborators
		WHERE hoagie_id = $1 AND user_id = $2
	`, hoagieID, userID)
	return mapPgError(err)
}

// IncrementCommentCount is a single atomic statement; concurrent increments
// never lose updates.
func (r *HoagieRepository) IncrementCommentCount(ctx context.Context, hoagieID string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE hoagies
		SET comment_count = comment_count + 1, updated_at = now()
		WHERE id = $1
	`, hoagieID)
	if err != nil {
		return mapPgError(err)
	}
	if res.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// DecrementCommentCount refuses to go below zero. The guarded UPDATE matches
// no rows when the counter is already at zero; that case is reported as a
// clamp so the caller can log the anomaly.
func (r *HoagieRepository) DecrementCommentCount(ctx context.Context, hoagieID string) (bool, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE hoagies
		SET comment_count = comment_count - 1, updated_at = now()
		WHERE id = $1 AND comment_count > 0
	`, hoagieID)
	if err != nil {
		return false, mapPgError(err)
	}
	if res.RowsAffected() > 0 {
		return false, nil
	}
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM hoagies WHERE id = $1)`, hoagieID).Scan(&exists); err != nil {
		return false, err
	}
	if !exists {
		return false, apperr.ErrNotFound
	}
	return true, nil
}

var _ repository.HoagieRepository = (*HoagieRepository)(nil)
