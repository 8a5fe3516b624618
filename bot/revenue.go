package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/mmdatafocus/finance_bot/stats"
)

func (b *Bot) handleRevenue(ctx context.Context, i *discordgo.InteractionCreate) {
	if err := b.deferReply(i); err != nil {
		return
	}

	balance, err := b.stripe.GetBalance(ctx)
	if err != nil {
		b.failCommand(ctx, i, "handleRevenue", err)
		return
	}
	payouts, err := b.stripe.ListPayouts(ctx, 100)
	if err != nil {
		b.failCommand(ctx, i, "handleRevenue", err)
		return
	}
	pendingPayouts, err := b.stripe.ListPendingPayouts(ctx)
	if err != nil {
		b.failCommand(ctx, i, "handleRevenue", err)
		return
	}
	totalExpenses, err := b.store.Total(ctx)
	if err != nil {
		b.failCommand(ctx, i, "handleRevenue", err)
		return
	}

	summary := stats.ComputeRevenue(
		balance,
		stats.SumPayouts(stats.FilterPaid(payouts)),
		stats.SumPayouts(pendingPayouts),
		totalExpenses,
	)

	profitMark := "✅"
	if summary.TrueTotal.IsNegative() {
		profitMark = "❌"
	}

	embed := &discordgo.MessageEmbed{
		Title: "💰 Revenue Summary",
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "📈 Total Revenue",
				Value: stats.FormatCurrency(summary.TotalRevenueCents),
			},
			{
				Name:  "💸 Total Expenses",
				Value: fmt.Sprintf("-$%s", summary.TotalExpenses.StringFixed(2)),
			},
			{
				Name:  fmt.Sprintf("%s True Total (Profit/Loss)", profitMark),
				Value: fmt.Sprintf("**$%s**", summary.TrueTotal.StringFixed(2)),
			},
			{
				Name: "📊 Breakdown",
				Value: fmt.Sprintf("**Available:** %s\n**Pending:** %s\n**Paid Payouts:** %s\n**Pending Payouts:** %s",
					stats.FormatCurrency(summary.AvailableCents),
					stats.FormatCurrency(summary.PendingCents),
					stats.FormatCurrency(summary.PaidPayoutCents),
					stats.FormatCurrency(summary.PendingPayoutCents)),
			},
		},
	}

	b.editEmbed(i, embed)
}
