package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TennisBooking/internal/infra/sheet"
	"github.com/m04kA/SMC-TennisBooking/pkg/psqlbuilder"
)

const tableName = "sheet_rows"

// Колонки таблицы повторяют колонки электронной таблицы, порядок строк - по id
var cellColumns = []string{"c1", "c2", "c3", "c4", "c5", "c6"}

// Schema DDL таблицы-листа
const Schema = `CREATE TABLE IF NOT EXISTS sheet_rows (
	id BIGSERIAL PRIMARY KEY,
	c1 TEXT NOT NULL DEFAULT '',
	c2 TEXT NOT NULL DEFAULT '',
	c3 TEXT NOT NULL DEFAULT '',
	c4 TEXT NOT NULL DEFAULT '',
	c5 TEXT NOT NULL DEFAULT '',
	c6 TEXT NOT NULL DEFAULT ''
)`

// Repository лист, эмулированный одной таблицей PostgreSQL
// Транзакции не используются: проверка позиции и удаление не атомарны
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Migrate создает таблицу, если её нет
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("%w: Migrate - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// ReadRows возвращает все строки в порядке вставки
func (r *Repository) ReadRows(ctx context.Context) ([][]string, error) {
	query, args, err := psqlbuilder.Select(cellColumns...).
		From(tableName).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReadRows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReadRows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([][]string, 0)
	for rows.Next() {
		cells := make([]string, len(cellColumns))
		dest := make([]interface{}, len(cells))
		for i := range cells {
			dest[i] = &cells[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: ReadRows - scan row: %v", ErrScanRow, err)
		}
		result = append(result, cells)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ReadRows - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// AppendRow добавляет строку; ячейки сверх количества колонок отбрасываются
func (r *Repository) AppendRow(ctx context.Context, row []string) error {
	values := make([]interface{}, len(cellColumns))
	for i := range cellColumns {
		if i < len(row) {
			values[i] = row[i]
		} else {
			values[i] = ""
		}
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(cellColumns...).
		Values(values...).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AppendRow - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AppendRow - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteRow удаляет строку по позиции (с 1)
// Если строку успели удалить между поиском и удалением, возвращается sheet.ErrRowOutOfRange
func (r *Repository) DeleteRow(ctx context.Context, position int) error {
	if position < 1 {
		return fmt.Errorf("%w: position=%d", sheet.ErrRowOutOfRange, position)
	}

	query, args, err := psqlbuilder.Select("id").
		From(tableName).
		OrderBy("id ASC").
		Limit(1).
		Offset(uint64(position - 1)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteRow - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: position=%d", sheet.ErrRowOutOfRange, position)
	}
	if err != nil {
		return fmt.Errorf("%w: DeleteRow - scan id: %v", ErrScanRow, err)
	}

	query, args, err = psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteRow - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteRow - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteRow - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: position=%d", sheet.ErrRowOutOfRange, position)
	}

	return nil
}
