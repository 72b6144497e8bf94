package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"echostream/internal/core/users"
)

const userColumns = `id, handle, email, display_name, password_hash, avatar_url, cover_image_url, refresh_token, created_at, updated_at`

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user. Uniqueness violations on handle/email map to
// the domain sentinels.
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (id, handle, email, display_name, password_hash, avatar_url, cover_image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query,
		user.ID, user.Handle, user.Email, user.DisplayName,
		user.PasswordHash, user.AvatarURL, user.CoverImageURL,
	)

	created, err := scanUser(row)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			if strings.Contains(err.Error(), "users_handle_key") {
				return nil, users.ErrHandleTaken
			}
			if strings.Contains(err.Error(), "users_email_key") {
				return nil, users.ErrEmailTaken
			}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetByHandle retrieves a user by handle
func (r *postgresUserRepo) GetByHandle(ctx context.Context, handle string) (*users.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE handle = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, handle))
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by handle: %w", err)
	}

	return user, nil
}

// GetByHandleOrEmail retrieves a user matching either identifier
func (r *postgresUserRepo) GetByHandleOrEmail(ctx context.Context, handle, email string) (*users.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE (handle = $1 AND $1 <> '') OR (email = $2 AND $2 <> '') LIMIT 1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, handle, email))
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by handle or email: %w", err)
	}

	return user, nil
}

// UpdateRefreshToken overwrites only the refresh_token column. An empty
// token stores NULL (logged out).
func (r *postgresUserRepo) UpdateRefreshToken(ctx context.Context, id, token string) error {
	query := `UPDATE users SET refresh_token = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, nullString(token))
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check refresh token update: %w", err)
	}
	if rowsAffected == 0 {
		return users.ErrUserNotFound
	}

	return nil
}

// UpdatePassword overwrites the stored password hash
func (r *postgresUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check password update: %w", err)
	}
	if rowsAffected == 0 {
		return users.ErrUserNotFound
	}

	return nil
}

// UpdateDetails updates display name and/or email. Nil inputs leave the
// column unchanged.
func (r *postgresUserRepo) UpdateDetails(ctx context.Context, id string, input users.UpdateDetailsInput) (*users.User, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argNum := 1

	if input.DisplayName != nil {
		setClauses = append(setClauses, fmt.Sprintf("display_name = $%d", argNum))
		args = append(args, *input.DisplayName)
		argNum++
	}
	if input.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argNum))
		args = append(args, *input.Email)
		argNum++
	}

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING `+userColumns,
		strings.Join(setClauses, ", "), argNum)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "users_email_key") {
			return nil, users.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user details: %w", err)
	}

	return user, nil
}

// UpdateAvatar replaces only the avatar URL
func (r *postgresUserRepo) UpdateAvatar(ctx context.Context, id, avatarURL string) (*users.User, error) {
	return r.updateMediaColumn(ctx, id, "avatar_url", avatarURL)
}

// UpdateCoverImage replaces only the cover image URL
func (r *postgresUserRepo) UpdateCoverImage(ctx context.Context, id, coverImageURL string) (*users.User, error) {
	return r.updateMediaColumn(ctx, id, "cover_image_url", coverImageURL)
}

func (r *postgresUserRepo) updateMediaColumn(ctx context.Context, id, column, url string) (*users.User, error) {
	// column is one of two compile-time constants, never user input
	query := fmt.Sprintf(`
		UPDATE users
		SET %s = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, column)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id, url))
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", column, err)
	}

	return user, nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*users.User, error) {
	user := &users.User{}
	var refreshToken sql.NullString

	err := row.Scan(
		&user.ID, &user.Handle, &user.Email, &user.DisplayName,
		&user.PasswordHash, &user.AvatarURL, &user.CoverImageURL,
		&refreshToken, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.RefreshToken = refreshToken.String
	return user, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
