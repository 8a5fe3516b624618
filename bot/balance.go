package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/mmdatafocus/finance_bot/stats"
)

func (b *Bot) handleBalance(ctx context.Context, i *discordgo.InteractionCreate) {
	if err := b.deferReply(i); err != nil {
		return
	}

	balance, err := b.stripe.GetBalance(ctx)
	if err != nil {
		b.failCommand(ctx, i, "handleBalance", err)
		return
	}
	payouts, err := b.stripe.ListPayouts(ctx, 10)
	if err != nil {
		b.failCommand(ctx, i, "handleBalance", err)
		return
	}
	pendingPayouts, err := b.stripe.ListPendingPayouts(ctx)
	if err != nil {
		b.failCommand(ctx, i, "handleBalance", err)
		return
	}

	inTransit := stats.SumPayouts(pendingPayouts)

	embed := &discordgo.MessageEmbed{
		Title: "💰 Stripe Balance",
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Available Funds",
				Value: fmt.Sprintf("**Available to Pay Out:** %s\n**Available Soon (Estimated):** %s\n**In Transit Payouts:** %s",
					stats.FormatCurrency(balance.Available),
					stats.FormatCurrency(balance.Pending),
					stats.FormatCurrency(inTransit)),
			},
			{
				Name:  "Total Balance",
				Value: stats.FormatCurrency(balance.Total()),
			},
		},
	}

	if len(payouts) > 0 {
		var lines []string
		for idx, p := range payouts {
			if idx == 5 {
				break
			}
			status := p.Status
			if status == stats.PayoutStatusPaid {
				status = "Paid"
			}
			lines = append(lines, fmt.Sprintf("- %s - %s - %s",
				stats.FormatCurrency(p.Amount), status, stats.FormatDateLabel(p.ArrivalDate, b.offsetHours)))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Recent Payouts",
			Value: strings.Join(lines, "\n"),
		})
	}

	b.editEmbed(i, embed)
}
