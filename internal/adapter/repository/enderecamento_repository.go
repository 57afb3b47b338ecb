package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hugohenrick/armazem/internal/domain/enderecamento"
	"github.com/hugohenrick/armazem/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	addressUniqueConstraint = "enderecamentos_address_id_key"
	packageUniqueConstraint = "enderecamentos_package_id_key"
)

// EnderecamentoRepository implementa a interface enderecamento.Repository no PostgreSQL
type EnderecamentoRepository struct {
	db *database.PostgresDB
}

// NewEnderecamentoRepository cria uma nova instância de EnderecamentoRepository
func NewEnderecamentoRepository(db *database.PostgresDB) enderecamento.Repository {
	return &EnderecamentoRepository{db: db}
}

// List implementa enderecamento.Repository.List
func (r *EnderecamentoRepository) List(ctx context.Context) ([]*enderecamento.Record, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, address_id, package_id, assigned_at
		FROM enderecamentos
		ORDER BY assigned_at, id`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar endereçamentos: %w", err)
	}
	defer rows.Close()

	records := make([]*enderecamento.Record, 0)
	for rows.Next() {
		var rec enderecamento.Record
		if err := rows.Scan(&rec.ID, &rec.AddressID, &rec.PackageID, &rec.AssignedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler endereçamento: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar endereçamentos: %w", err)
	}

	return records, nil
}

// Create implementa enderecamento.Repository.Create
func (r *EnderecamentoRepository) Create(ctx context.Context, rec *enderecamento.Record) error {
	return insertRecord(ctx, r.db.Pool(), rec)
}

// Reserve implementa enderecamento.Repository.Reserve
func (r *EnderecamentoRepository) Reserve(ctx context.Context, rec *enderecamento.Record, discard []uuid.UUID) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		if len(discard) > 0 {
			ids := make([]string, 0, len(discard))
			for _, id := range discard {
				ids = append(ids, id.String())
			}
			if _, err := tx.Exec(ctx, `DELETE FROM enderecamentos WHERE id = ANY($1::uuid[])`, ids); err != nil {
				return fmt.Errorf("erro ao descartar endereçamentos: %w", err)
			}
		}
		return insertRecord(ctx, tx, rec)
	})
}

// execer é satisfeito tanto pelo pool quanto por uma transação
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertRecord(ctx context.Context, db execer, rec *enderecamento.Record) error {
	_, err := db.Exec(ctx,
		`INSERT INTO enderecamentos (id, address_id, package_id, assigned_at)
		VALUES ($1, $2, $3, $4)`,
		rec.ID, rec.AddressID, rec.PackageID, rec.AssignedAt)
	if err != nil {
		if mapped := uniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("erro ao criar endereçamento: %w", err)
	}
	return nil
}

// DeleteByAddress implementa enderecamento.Repository.DeleteByAddress
func (r *EnderecamentoRepository) DeleteByAddress(ctx context.Context, addressID string) error {
	tag, err := r.db.Pool().Exec(ctx, `DELETE FROM enderecamentos WHERE address_id = $1`, addressID)
	if err != nil {
		return fmt.Errorf("erro ao excluir endereçamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return enderecamento.ErrRecordNotFound
	}
	return nil
}

// Delete implementa enderecamento.Repository.Delete
func (r *EnderecamentoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool().Exec(ctx, `DELETE FROM enderecamentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir endereçamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return enderecamento.ErrRecordNotFound
	}
	return nil
}

// uniqueViolation traduz violações de unicidade para os erros do domínio
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}

	switch pgErr.ConstraintName {
	case addressUniqueConstraint:
		return enderecamento.ErrAddressAlreadyAssigned
	case packageUniqueConstraint:
		return enderecamento.ErrPackageAlreadyAssigned
	default:
		return fmt.Errorf("%w: %s", enderecamento.ErrAddressAlreadyAssigned, pgErr.ConstraintName)
	}
}
