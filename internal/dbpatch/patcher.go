// Package dbpatch updates one invoice address and prints the rows that now carry it.
package dbpatch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VerifyLimit caps the rows returned by Verify.
const VerifyLimit = 5

// Patcher runs the update-then-verify pair against one table.
type Patcher struct {
	db     *gorm.DB
	table  string
	out    io.Writer
	logger *zap.SugaredLogger
}

// NewPatcher creates a Patcher. A nil logger is replaced by a no-op one.
func NewPatcher(db *gorm.DB, table string, out io.Writer, logger *zap.SugaredLogger) *Patcher {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Patcher{db: db, table: table, out: out, logger: logger}
}

// Update sets Addr1 on the row with the given TxnNo and returns the affected row count.
func (p *Patcher) Update(ctx context.Context, addr string, txnNo int64) (int64, error) {
	if p.table == "" {
		return 0, errors.New("empty table name")
	}
	tx := p.updateStmt(p.db.WithContext(ctx), addr, txnNo)
	if tx.Error != nil {
		return 0, fmt.Errorf("update %s: %w", p.table, tx.Error)
	}
	return tx.RowsAffected, nil
}

// Verify returns at most VerifyLimit rows whose Addr1 equals addr.
func (p *Patcher) Verify(ctx context.Context, addr string) ([]Row, error) {
	var found []map[string]any
	tx := p.verifyStmt(p.db.WithContext(ctx), addr, &found)
	if tx.Error != nil {
		return nil, fmt.Errorf("select %s: %w", p.table, tx.Error)
	}
	rows := make([]Row, 0, len(found))
	for _, m := range found {
		rows = append(rows, Row(m))
	}
	return rows, nil
}

// updateStmt and verifyStmt name every column through clause.Column so the
// dialect quotes them the same way as the table (postgres is case-sensitive
// for quoted identifiers only).
func (p *Patcher) updateStmt(tx *gorm.DB, addr string, txnNo int64) *gorm.DB {
	return tx.Table(p.table).
		Where(clause.Eq{Column: clause.Column{Name: "TxnNo"}, Value: txnNo}).
		Update("Addr1", addr)
}

func (p *Patcher) verifyStmt(tx *gorm.DB, addr string, dest *[]map[string]any) *gorm.DB {
	return tx.Table(p.table).
		Where(clause.Eq{Column: clause.Column{Name: "Addr1"}, Value: addr}).
		Limit(VerifyLimit).
		Find(dest)
}

// Run performs Update, reports the count, then Verify and prints every row.
// There is no rollback when the verify step fails.
func (p *Patcher) Run(ctx context.Context, addr string, txnNo int64) error {
	n, err := p.Update(ctx, addr, txnNo)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Rows updated: %d\n", n)
	p.logger.Infow("invoice updated", "table", p.table, "txn_no", txnNo, "rows", n)

	rows, err := p.Verify(ctx, addr)
	if err != nil {
		return err
	}
	for _, r := range rows {
		PrintRow(p.out, r, DefaultFields)
	}
	p.logger.Infow("invoice verified", "table", p.table, "rows", len(rows))
	return nil
}
