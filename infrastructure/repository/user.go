package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/internal/domain"
)

const (
	usersTable         = "users"
	organizationsTable = "organizations"
)

var userColumns = []string{
	"id", "organization_id", "email", "password_hash", "first_name", "last_name", "role_id",
	"active", "last_login_at", "created_at", "updated_at",
}

//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks

type UserRepository interface {
	CreateOrganization(ctx context.Context, org *domain.Organization, admin *domain.User) (*domain.Organization, *domain.User, error)
	GetOrganization(ctx context.Context, id string) (*domain.Organization, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUser(ctx context.Context, organizationID string) ([]*domain.User, error)
	TouchLastLogin(ctx context.Context, userID string) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

// CreateOrganization cria a organização e seu primeiro administrador na mesma transação
func (r *userRepository) CreateOrganization(ctx context.Context, org *domain.Organization, admin *domain.User) (*domain.Organization, *domain.User, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := psql.
			Insert(organizationsTable).
			Columns("name", "slug").
			Values(org.Name, org.Slug).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()
		if err != nil {
			return err
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&org.ID, &org.CreatedAt, &org.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao criar organização: %w", mapPQError(err, ""))
		}

		admin.OrganizationID = org.ID
		if _, err := insertUser(ctx, tx, admin); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return org, admin, nil
}

func (r *userRepository) GetOrganization(ctx context.Context, id string) (*domain.Organization, error) {
	query, args, err := psql.
		Select("id", "name", "slug", "created_at", "updated_at").
		From(organizationsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var org domain.Organization
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&org.ID, &org.Name, &org.Slug, &org.CreatedAt, &org.UpdatedAt)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &org, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	return insertUser(ctx, r.conn, user)
}

func insertUser(ctx context.Context, q postgres.Queryer, user *domain.User) (*domain.User, error) {
	query, args, err := psql.
		Insert(usersTable).
		Columns("organization_id", "email", "password_hash", "first_name", "last_name", "role_id", "active").
		Values(user.OrganizationID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.RoleID, user.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = q.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar usuário: %w", mapPQError(err, ""))
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	queryBuilder := psql.
		Update(usersTable).
		Set("active", user.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID, "deleted_at": nil})

	if user.FirstName != "" {
		queryBuilder = queryBuilder.Set("first_name", user.FirstName)
	}

	queryBuilder = queryBuilder.Set("last_name", user.LastName)

	if user.Email != "" {
		queryBuilder = queryBuilder.Set("email", user.Email)
	}

	if user.PasswordHash != "" {
		queryBuilder = queryBuilder.Set("password_hash", user.PasswordHash)
	}

	if user.RoleID != 0 {
		queryBuilder = queryBuilder.Set("role_id", user.RoleID)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.conn.ExecContext(ctx, query, args...); err != nil {
		return mapPQError(err, "")
	}

	return nil
}

// GetUserByEmail busca em todas as organizações; o email é único
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email, "deleted_at": nil})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID, "deleted_at": nil})
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Eq) (*domain.User, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.conn.QueryRowContext(ctx, query, args...))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) ListUser(ctx context.Context, organizationID string) ([]*domain.User, error) {
	query, args, err := psql.
		Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"organization_id": organizationID, "deleted_at": nil}).
		OrderBy("first_name ASC", "last_name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = ""
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, userID string) error {
	query, args, err := psql.
		Update(usersTable).
		Set("last_login_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func scanUser(row scanner) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.OrganizationID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.RoleID,
		&user.Active,
		&user.LastLoginAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
