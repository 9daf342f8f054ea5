package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/akhmadiev/storefront/models"
)

const (
	createUser = `INSERT INTO users (name, email, password)
    VALUES ($1, $2, $3)
    RETURNING id, name, email, password, COALESCE(last_verification_token, '');`

	findUserByEmail = `SELECT id, name, email, password, COALESCE(last_verification_token, '')
    FROM users
    WHERE email = $1;`

	getAllUsers = `SELECT id, name, email
    FROM users;`

	setResetToken = `UPDATE users
    SET last_verification_token = $1
    WHERE id = $2;`

	resetPassword = `UPDATE users
    SET password = $1, last_verification_token = NULL
    WHERE id = $2;`

	usersWithResetToken = `SELECT id, name, email, last_verification_token
    FROM users
    WHERE last_verification_token IS NOT NULL AND last_verification_token <> '';`

	clearResetToken = `UPDATE users
    SET last_verification_token = NULL
    WHERE id = $1;`
)

// psql builds product queries with $N placeholders. The dollar format is
// understood by both backends (PostgreSQL natively, SQLite as numbered
// parameters), so one set of builders serves production and development.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildSelectAllProductsQuery() (string, []any, error) {
	return psql.
		Select("id", "name", "price", "quantity").
		From("products").
		ToSql()
}

func buildCreateProductQuery(product models.Product) (string, []any, error) {
	return psql.
		Insert("products").
		Columns("name", "price", "quantity").
		Values(product.Name, product.Price, product.Quantity).
		Suffix("RETURNING id, name, price, quantity").
		ToSql()
}

func buildGetProductQuery(id int64) (string, []any, error) {
	return psql.
		Select("id", "name", "price", "quantity").
		From("products").
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateProductQuery dynamically builds a partial UPDATE: only non-nil
// fields of update enter the SET list, so absent fields keep their stored
// values. Returns ErrEmptyUpdate when the update carries nothing.
func buildUpdateProductQuery(id int64, update models.ProductUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrEmptyUpdate
	}

	builder := psql.Update("products")

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Price != nil {
		builder = builder.Set("price", *update.Price)
	}
	if update.Quantity != nil {
		builder = builder.Set("quantity", *update.Quantity)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, price, quantity").
		ToSql()
}

func buildDeleteProductQuery(id int64) (string, []any, error) {
	return psql.
		Delete("products").
		Where(sq.Eq{"id": id}).
		ToSql()
}
