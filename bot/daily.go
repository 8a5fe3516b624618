package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/mmdatafocus/finance_bot/stats"
)

func (b *Bot) handleDaily(ctx context.Context, i *discordgo.InteractionCreate) {
	if err := b.deferReply(i); err != nil {
		return
	}

	metrics, err := b.stats.ForToday(ctx)
	if err != nil {
		b.failCommand(ctx, i, "handleDaily", err)
		return
	}

	// Label from the same fixed offset that bounded the data window.
	label := stats.FormatDayLabel(time.Now(), b.offsetHours)
	b.editEmbed(i, metricsEmbed("📊 Today's Stats", fmt.Sprintf("Today %s", label), metrics))
}

func metricsEmbed(title, dateLine string, m stats.DailyMetrics) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: dateLine,
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "💰 Gross Volume", Value: stats.FormatCurrency(m.GrossVolume)},
			{Name: "👥 Customers", Value: fmt.Sprintf("%d", m.Customers)},
			{Name: "💳 Payments", Value: fmt.Sprintf("%d", m.Payments)},
		},
	}
}
