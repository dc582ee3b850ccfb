package handlers

import (
	"context"
	"log/slog"
	"strings"

	portssvc "github.com/dimasfh/profitbot/internal/core/ports/services"
	"github.com/dimasfh/profitbot/internal/utils/amountparse"
)

// commandPrefix is the non-slash symbol the bot listens for, matching the
// original group convention.
const commandPrefix = "."

// command is the closed set of keywords the bot understands. Anything else is
// not addressed to the bot and gets no reply.
type command int

const (
	cmdNone command = iota
	cmdHelp
	cmdStatus
	cmdDaily
	cmdWeekly
	cmdMonthly
	cmdHistory
	cmdReset
)

// resolveCommand maps dot-prefixed text to a command, case-insensitively and
// with the Indonesian synonyms grouped. Unrecognized keywords resolve to cmdNone.
func resolveCommand(text string) command {
	if !strings.HasPrefix(text, commandPrefix) {
		return cmdNone
	}
	fields := strings.Fields(text[len(commandPrefix):])
	if len(fields) == 0 {
		return cmdNone
	}
	switch strings.ToLower(fields[0]) {
	case "start", "help":
		return cmdHelp
	case "status":
		return cmdStatus
	case "daily", "harian":
		return cmdDaily
	case "weekly", "mingguan":
		return cmdWeekly
	case "monthly", "bulanan":
		return cmdMonthly
	case "history", "riwayat":
		return cmdHistory
	case "reset":
		return cmdReset
	default:
		return cmdNone
	}
}

// Dispatcher routes one inbound message to a ledger operation and renders the
// reply. It holds no per-message state; everything lives in the store.
type Dispatcher struct {
	ledger       portssvc.LedgerSvcFacade
	logger       *slog.Logger
	historyLimit int
}

func NewDispatcher(ledger portssvc.LedgerSvcFacade, logger *slog.Logger, historyLimit int) *Dispatcher {
	if historyLimit <= 0 {
		historyLimit = 10
	}
	return &Dispatcher{ledger: ledger, logger: logger, historyLimit: historyLimit}
}

// Dispatch handles one inbound message and returns the reply text.
// ok=false means the message was not addressed to the bot (no command match
// and no parsable signed amount) and must be silently ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, chatID int64, userName, text string) (reply string, ok bool) {
	text = strings.TrimSpace(text)

	if cmd := resolveCommand(text); cmd != cmdNone {
		return d.runCommand(ctx, cmd, chatID), true
	}

	if strings.HasPrefix(text, "+") || strings.HasPrefix(text, "-") {
		amount, note, parsed := amountparse.Parse(text)
		if !parsed {
			// Malformed shorthand is not an error to the user.
			return "", false
		}
		return d.record(ctx, chatID, userName, amount, note), true
	}

	return "", false
}

func (d *Dispatcher) runCommand(ctx context.Context, cmd command, chatID int64) string {
	switch cmd {
	case cmdHelp:
		return renderHelp()
	case cmdStatus:
		report, err := d.ledger.Status(ctx, chatID)
		if err != nil {
			return d.fail(ctx, chatID, "status", err)
		}
		return renderStatus(report)
	case cmdDaily:
		report, err := d.ledger.DailyReport(ctx, chatID)
		if err != nil {
			return d.fail(ctx, chatID, "daily", err)
		}
		return renderDaily(report)
	case cmdWeekly:
		report, err := d.ledger.WeeklyReport(ctx, chatID)
		if err != nil {
			return d.fail(ctx, chatID, "weekly", err)
		}
		return renderWeekly(report)
	case cmdMonthly:
		report, err := d.ledger.MonthlyReport(ctx, chatID)
		if err != nil {
			return d.fail(ctx, chatID, "monthly", err)
		}
		return renderMonthly(report)
	case cmdHistory:
		report, err := d.ledger.History(ctx, chatID, d.historyLimit)
		if err != nil {
			return d.fail(ctx, chatID, "history", err)
		}
		return renderHistory(report)
	case cmdReset:
		if err := d.ledger.Reset(ctx, chatID); err != nil {
			return d.fail(ctx, chatID, "reset", err)
		}
		return renderReset()
	}
	return ""
}

func (d *Dispatcher) record(ctx context.Context, chatID int64, userName string, amount int64, note string) string {
	result, err := d.ledger.RecordTransaction(ctx, chatID, userName, amount, note)
	if err != nil {
		return d.fail(ctx, chatID, "record", err)
	}
	return renderRecord(result)
}

// fail logs the storage error and degrades to a generic failure reply; the
// process keeps serving subsequent messages.
func (d *Dispatcher) fail(ctx context.Context, chatID int64, op string, err error) string {
	d.logger.ErrorContext(ctx, "ledger operation failed",
		slog.String("op", op),
		slog.Int64("chat_id", chatID),
		slog.String("error", err.Error()),
	)
	return replyFailure
}
