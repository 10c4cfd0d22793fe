package sqlite

import (
	"context"
	"database/sql"

	"github.com/padlockhq/padlock/internal/presets/domain"
	"github.com/padlockhq/padlock/internal/presets/store"
)

type presetsRepo struct {
	db dbtx
}

const presetColumns = `id, user_id, name, length,
	include_lowercase, include_uppercase, include_numbers, include_symbols,
	exclude_similar, custom_symbols, notes, is_default, created_at, updated_at`

func scanPreset(row interface{ Scan(...any) error }) (domain.Preset, error) {
	var (
		p             domain.Preset
		customSymbols sql.NullString
		notes         sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Length,
		&p.IncludeLowercase, &p.IncludeUppercase, &p.IncludeNumbers, &p.IncludeSymbols,
		&p.ExcludeSimilar, &customSymbols, &notes, &p.IsDefault, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Preset{}, err
	}
	p.CustomSymbols = mapNullStringPtr(customSymbols)
	p.Notes = mapNullStringPtr(notes)
	return p, nil
}

func (r *presetsRepo) GetPreset(ctx context.Context, userID, id string) (domain.Preset, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+presetColumns+` FROM password_presets WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	p, err := scanPreset(row)
	if err != nil {
		return domain.Preset{}, mapNotFound(err)
	}
	return p, nil
}

func (r *presetsRepo) ListPresets(
	ctx context.Context,
	userID string,
	defaultsOnly bool,
) ([]domain.Preset, error) {
	query := `SELECT ` + presetColumns + ` FROM password_presets WHERE user_id = ?`
	if defaultsOnly {
		query += ` AND is_default = 1`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	presets := make([]domain.Preset, 0)
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (r *presetsRepo) CreatePreset(ctx context.Context, p domain.Preset) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO password_presets (`+presetColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.Name, p.Length,
		p.IncludeLowercase, p.IncludeUppercase, p.IncludeNumbers, p.IncludeSymbols,
		p.ExcludeSimilar, mapOptionalString(p.CustomSymbols), mapOptionalString(p.Notes),
		p.IsDefault, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *presetsRepo) UpdatePreset(ctx context.Context, p domain.Preset) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE password_presets SET
			name = ?, length = ?,
			include_lowercase = ?, include_uppercase = ?, include_numbers = ?, include_symbols = ?,
			exclude_similar = ?, custom_symbols = ?, notes = ?, is_default = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		p.Name, p.Length,
		p.IncludeLowercase, p.IncludeUppercase, p.IncludeNumbers, p.IncludeSymbols,
		p.ExcludeSimilar, mapOptionalString(p.CustomSymbols), mapOptionalString(p.Notes),
		p.IsDefault, p.UpdatedAt,
		p.ID, p.UserID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *presetsRepo) DeletePreset(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM password_presets WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
