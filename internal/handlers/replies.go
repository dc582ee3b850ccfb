package handlers

import (
	"fmt"
	"strings"

	"github.com/dimasfh/profitbot/internal/dto"
	"github.com/dimasfh/profitbot/internal/utils/rupiah"
)

// replyFailure is the degraded answer for storage problems. Parse rejections
// never produce a reply at all.
const replyFailure = "⚠️ Terjadi kesalahan, coba lagi nanti."

const divider = "────────────────────"

// signedAmount renders "+Rp. 5.000" / "-Rp. 2.000": the sign is placed by the
// caller around the absolute value, matching the original record card.
func signedAmount(amount int64) string {
	if amount < 0 {
		return "-" + rupiah.Format(-amount)
	}
	return "+" + rupiah.Format(amount)
}

func renderHelp() string {
	return strings.Join([]string{
		"🤖 PROFIT TRACKER",
		divider,
		"Bot pencatat profit harian, mingguan & bulanan.",
		"",
		"Format input:",
		"  +2k ∙ +2rb ∙ +2ribu",
		"  +2jt ∙ +2juta",
		"  +5000",
		"  -5k",
		"  +5k netflix",
		"",
		"Perintah:",
		"  .status   ➜ Status lengkap",
		"  .daily    ➜ Profit hari ini",
		"  .weekly   ➜ Profit minggu ini",
		"  .monthly  ➜ Profit bulan ini",
		"  .history  ➜ Riwayat transaksi",
		"  .reset    ➜ Reset semua data",
	}, "\n")
}

func renderRecord(res *dto.RecordResult) string {
	emoji := "💰"
	if res.Amount < 0 {
		emoji = "📉"
	}
	noteLine := ""
	if res.Note != "" {
		noteLine = fmt.Sprintf("\n📋 %s", res.Note)
	}
	return fmt.Sprintf(`%s PROFIT UPDATE
%s
👤 %s
💸 %s%s

📆 Hari ini ➜ %s
📅 Minggu ➜ %s
🗓 %s ➜ %s`,
		emoji,
		divider,
		res.UserName,
		signedAmount(res.Amount),
		noteLine,
		rupiah.Format(res.DailyTotal),
		rupiah.Format(res.WeeklyTotal),
		rupiah.MonthName(res.Date.Month()),
		rupiah.Format(res.MonthlyTotal),
	)
}

func renderStatus(rep *dto.StatusReport) string {
	emoji := "📊"
	if rep.MonthlyTotal > 0 {
		emoji = "💎"
	} else if rep.MonthlyTotal < 0 {
		emoji = "📉"
	}
	monthName := rupiah.MonthName(rep.Date.Month())
	return fmt.Sprintf(`%s STATUS PROFIT
%s
📆 Hari ini (%s) ➜ %s
📅 Minggu ke-%d (%s) ➜ %s
🗓 Bulan %s %d ➜ %s

📝 Transaksi hari ini: %d`,
		emoji,
		divider,
		rupiah.Date(rep.Date),
		rupiah.Format(rep.DailyTotal),
		rep.WeekNumber,
		monthName,
		rupiah.Format(rep.WeeklyTotal),
		monthName,
		rep.Date.Year(),
		rupiah.Format(rep.MonthlyTotal),
	)
}

func renderDaily(rep *dto.PeriodReport) string {
	return fmt.Sprintf("%s PROFIT HARI INI\n%s\n➜ %s", totalEmoji(rep.Total), divider, rupiah.Format(rep.Total))
}

func renderWeekly(rep *dto.PeriodReport) string {
	return fmt.Sprintf("%s PROFIT MINGGUAN\n%s\n📅 Minggu ke-%d (%s)\n➜ %s",
		totalEmoji(rep.Total),
		divider,
		rep.WeekNumber,
		rupiah.MonthName(rep.Date.Month()),
		rupiah.Format(rep.Total),
	)
}

func renderMonthly(rep *dto.PeriodReport) string {
	return fmt.Sprintf("%s PROFIT BULANAN\n%s\n🗓 %s %d\n➜ %s",
		totalEmoji(rep.Total),
		divider,
		rupiah.MonthName(rep.Date.Month()),
		rep.Date.Year(),
		rupiah.Format(rep.Total),
	)
}

func renderHistory(rep *dto.HistoryReport) string {
	if len(rep.Entries) == 0 {
		return fmt.Sprintf("📜 RIWAYAT\n%s\nBelum ada transaksi hari ini.", divider)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📜 RIWAYAT %s\n%s\n", rupiah.Date(rep.Date), divider)
	for _, e := range rep.Entries {
		dot := "🟢"
		if e.Amount < 0 {
			dot = "🔴"
		}
		note := ""
		if e.Note != "" {
			note = fmt.Sprintf(" (%s)", e.Note)
		}
		fmt.Fprintf(&b, "%s %s ∙ %s\n   %s%s\n", dot, rupiah.Clock(e.RecordedAt), e.UserName, signedAmount(e.Amount), note)
	}
	fmt.Fprintf(&b, "%s\n💵 Total: %s", divider, rupiah.Format(rep.DailyTotal))
	return b.String()
}

func renderReset() string {
	return fmt.Sprintf("🔄 RESET\n%s\nSemua data profit grup ini telah direset ke Rp. 0", divider)
}

func totalEmoji(total int64) string {
	if total < 0 {
		return "📉"
	}
	return "💰"
}
