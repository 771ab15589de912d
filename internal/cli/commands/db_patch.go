package commands

import (
	"OptiTools/internal/config"
	"OptiTools/internal/dbpatch"
	"OptiTools/internal/repo"
	"context"
	"fmt"
	"strconv"
)

type dbPatchCmd struct{}

func (dbPatchCmd) Name() string        { return "db-patch" }
func (dbPatchCmd) Description() string { return "Set Addr1 for one invoice and print matching rows" }
func (dbPatchCmd) Usage() string       { return "db-patch <addr1> <txn-no>" }

func (dbPatchCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	addr := args[0]
	txnNo, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return ErrUsage
	}

	log, _, done := openLogger(cfg)
	defer done()

	db, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer sqlDB.Close()

	log.Infow("patching invoice", "dsn", cfg.DatabaseDSN, "table", cfg.InvoiceTable, "txn_no", txnNo)
	if err := dbpatch.NewPatcher(db, cfg.InvoiceTable, Out, log).Run(ctx, addr, txnNo); err != nil {
		log.Errorw("db patch failed", "error", err)
		return err
	}
	return nil
}

func init() { RegisterCmd(dbPatchCmd{}) }
