package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/padlockhq/padlock/internal/presets/domain"
)

type generatedPasswordsRepo struct {
	db dbtx
}

const generatedPasswordColumns = `id, user_id, preset_id, encrypted_value,
	hint_label, length, was_copied, last_copied_at, created_at`

func scanGeneratedPassword(row interface{ Scan(...any) error }) (domain.GeneratedPassword, error) {
	var (
		g            domain.GeneratedPassword
		presetID     sql.NullString
		hintLabel    sql.NullString
		length       sql.NullInt64
		lastCopiedAt sql.NullTime
	)
	err := row.Scan(
		&g.ID, &g.UserID, &presetID, &g.EncryptedValue,
		&hintLabel, &length, &g.WasCopied, &lastCopiedAt, &g.CreatedAt,
	)
	if err != nil {
		return domain.GeneratedPassword{}, err
	}
	g.PresetID = mapNullStringPtr(presetID)
	g.HintLabel = mapNullStringPtr(hintLabel)
	g.Length = mapNullInt64Ptr(length)
	g.LastCopiedAt = mapNullTimePtr(lastCopiedAt)
	return g, nil
}

func (r *generatedPasswordsRepo) CreateGeneratedPassword(
	ctx context.Context,
	g domain.GeneratedPassword,
) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO generated_passwords (`+generatedPasswordColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.UserID, mapOptionalString(g.PresetID), g.EncryptedValue,
		mapOptionalString(g.HintLabel), mapOptionalInt64(g.Length),
		g.WasCopied, mapOptionalTime(g.LastCopiedAt), g.CreatedAt,
	)
	return err
}

func (r *generatedPasswordsRepo) ListGeneratedPasswords(
	ctx context.Context,
	userID string,
	presetID *string,
) ([]domain.GeneratedPassword, error) {
	query := `SELECT ` + generatedPasswordColumns + ` FROM generated_passwords WHERE user_id = ?`
	args := []any{userID}
	if presetID != nil {
		query += ` AND preset_id = ?`
		args = append(args, *presetID)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.GeneratedPassword, 0)
	for rows.Next() {
		g, err := scanGeneratedPassword(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, g)
	}
	return records, rows.Err()
}

func (r *generatedPasswordsRepo) DeleteGeneratedPasswordsBefore(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM generated_passwords WHERE created_at < ?`, cutoff,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
