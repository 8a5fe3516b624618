package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/mmdatafocus/finance_bot/stats"
)

// handleSummary is the combined view: recent payouts, recent expenses and the
// headline revenue number in a single embed.
func (b *Bot) handleSummary(ctx context.Context, i *discordgo.InteractionCreate) {
	if err := b.deferReply(i); err != nil {
		return
	}

	balance, err := b.stripe.GetBalance(ctx)
	if err != nil {
		b.failCommand(ctx, i, "handleSummary", err)
		return
	}
	payouts, err := b.stripe.ListPayouts(ctx, 20)
	if err != nil {
		b.failCommand(ctx, i, "handleSummary", err)
		return
	}
	pendingPayouts, err := b.stripe.ListPendingPayouts(ctx)
	if err != nil {
		b.failCommand(ctx, i, "handleSummary", err)
		return
	}
	totalExpenses, err := b.store.Total(ctx)
	if err != nil {
		b.failCommand(ctx, i, "handleSummary", err)
		return
	}
	recentExpenses, err := b.store.List(ctx, 10)
	if err != nil {
		b.failCommand(ctx, i, "handleSummary", err)
		return
	}

	paidPayouts := stats.FilterPaid(payouts)
	totalPaidPayouts := stats.SumPayouts(paidPayouts)
	totalPendingPayouts := stats.SumPayouts(pendingPayouts)

	revenue := stats.CentsToDecimal(totalPaidPayouts).Sub(totalExpenses)

	var payoutLines []string
	for idx, p := range paidPayouts {
		if idx == 10 {
			break
		}
		payoutLines = append(payoutLines,
			fmt.Sprintf("%s - %s", stats.FormatCurrency(p.Amount), stats.FormatDateLabel(p.ArrivalDate, b.offsetHours)))
	}
	for _, p := range pendingPayouts {
		payoutLines = append(payoutLines,
			fmt.Sprintf("%s - Pending", stats.FormatCurrency(p.Amount)))
	}
	payoutList := strings.Join(payoutLines, "\n")
	if payoutList == "" {
		payoutList = "No payouts"
	}

	var expenseLines []string
	for _, exp := range recentExpenses {
		line := fmt.Sprintf("-$%s", exp.Amount.StringFixed(2))
		if exp.Category != "" {
			line += fmt.Sprintf(" (%s)", exp.Category)
		}
		expenseLines = append(expenseLines, line)
	}
	expenseList := strings.Join(expenseLines, "\n")
	if expenseList == "" {
		expenseList = "No expenses"
	}
	// Discord caps embed field values at 1024 characters.
	if len(expenseList) > 1024 {
		expenseList = expenseList[:1020] + "..."
	}

	embed := &discordgo.MessageEmbed{
		Title: "📊 Financial Summary",
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "💰 Payouts",
				Value: payoutList,
			},
			{
				Name:   "Total Payouts",
				Value:  stats.FormatCurrency(totalPaidPayouts + totalPendingPayouts),
				Inline: true,
			},
			{
				Name:  "💸 Expenses",
				Value: expenseList,
			},
			{
				Name:   "Total Expenses",
				Value:  fmt.Sprintf("-$%s", totalExpenses.StringFixed(2)),
				Inline: true,
			},
			{
				Name:   "📈 Revenue",
				Value:  fmt.Sprintf("$%s", revenue.StringFixed(2)),
				Inline: true,
			},
			{
				Name:   "💵 Available Balance",
				Value:  stats.FormatCurrency(balance.Available),
				Inline: true,
			},
			{
				Name:   "⏳ Pending Balance",
				Value:  stats.FormatCurrency(balance.Pending),
				Inline: true,
			},
		},
	}

	b.editEmbed(i, embed)
}
