package commands

import (
	"OptiTools/internal/config"
	"OptiTools/internal/sms"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"time"
)

type smsSendCmd struct{}

func (smsSendCmd) Name() string        { return "sms-send" }
func (smsSendCmd) Description() string { return "Send a test SMS batch to the configured numbers" }
func (smsSendCmd) Usage() string       { return "sms-send [--dry-run] [destination...]" }

// now подменяется в тестах.
var now = time.Now

func (smsSendCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("sms-send", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	dryRun := fs.Bool("dry-run", false, "print the batch instead of sending it")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	destinations := cfg.Destinations
	if fs.NArg() > 0 {
		destinations = fs.Args()
	}
	batch := sms.NewBatch(cfg.MessageText, cfg.CustomerID, destinations, now())

	if *dryRun {
		b, err := json.MarshalIndent(batch, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(Out, string(b))
		return nil
	}

	log, path, done := openLogger(cfg)
	defer done()
	log.Infof("Starting smsportal; logging to %s", path)

	key, secret, err := cfg.Credentials()
	if err != nil {
		log.Error("Missing SMSPORTAL_API_KEY or SMSPORTAL_API_SECRET environment variables.")
		return err
	}

	sender := sms.NewSender(cfg.APIURL, key, secret, log)
	// транспортные ошибки и не-200 уже залогированы отправителем
	_, _ = sender.Send(ctx, batch)
	return nil
}

func init() { RegisterCmd(smsSendCmd{}) }
