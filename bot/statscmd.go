package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/mmdatafocus/finance_bot/config"
	"github.com/mmdatafocus/finance_bot/stats"
)

// handleStats offers the last 25 local calendar days (Discord's select-menu
// option cap) and renders the chosen day on selection.
func (b *Bot) handleStats(ctx context.Context, i *discordgo.InteractionCreate) {
	today := stats.LocalTime(time.Now(), b.offsetHours)

	options := make([]discordgo.SelectMenuOption, 0, 25)
	for day := 0; day < 25; day++ {
		date := today.AddDate(0, 0, -day)
		var label string
		switch day {
		case 0:
			label = fmt.Sprintf("Today - %s", date.Format("Mon Jan 2"))
		case 1:
			label = fmt.Sprintf("Yesterday - %s", date.Format("Mon Jan 2"))
		default:
			label = date.Format("Mon Jan 2, 2006")
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: label,
			Value: date.Format("2006-01-02"),
		})
	}

	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "📅 **Select a date to view stats:**",
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    customIDStatsDate,
							Placeholder: "Select a date to view stats",
							MaxValues:   1,
							Options:     options,
						},
					},
				},
			},
		},
	})
	if err != nil {
		config.LogError(config.GetLogger(), "bot/statscmd.go", "handleStats", "InteractionRespond", nil, err)
	}
}

func (b *Bot) handleStatsDateSelect(ctx context.Context, i *discordgo.InteractionCreate) {
	if err := b.deferUpdate(i); err != nil {
		return
	}

	selected := i.MessageComponentData().Values[0]
	date, err := time.Parse("2006-01-02", selected)
	if err != nil {
		b.failComponent(ctx, i, "handleStatsDateSelect", err)
		return
	}

	year, month, day := date.Date()
	metrics, err := b.stats.ForDate(ctx, year, month, day)
	if err != nil {
		b.failComponent(ctx, i, "handleStatsDateSelect", err)
		return
	}

	b.followUpEmbed(i, metricsEmbed("📊 Daily Stats", date.Format("Mon Jan 2, 2006"), metrics))
}
