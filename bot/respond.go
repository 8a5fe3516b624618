package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/mmdatafocus/finance_bot/appctx"
	"github.com/mmdatafocus/finance_bot/config"
	"github.com/sirupsen/logrus"
)

const embedColor = 0x5865F2

func (b *Bot) respondEphemeral(i *discordgo.InteractionCreate, content string) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		config.LogError(config.GetLogger(), "bot/respond.go", "respondEphemeral", "InteractionRespond", nil, err)
	}
}

func (b *Bot) deferReply(i *discordgo.InteractionCreate) error {
	return b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func (b *Bot) deferUpdate(i *discordgo.InteractionCreate) error {
	return b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}

func (b *Bot) editEmbed(i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	_, err := b.session.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		config.LogError(config.GetLogger(), "bot/respond.go", "editEmbed", "InteractionResponseEdit", nil, err)
	}
}

func (b *Bot) followUpEmbed(i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	_, err := b.session.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		config.LogError(config.GetLogger(), "bot/respond.go", "followUpEmbed", "FollowupMessageCreate", nil, err)
	}
}

// failCommand logs the underlying error with the interaction's correlation
// id and shows the user a single generic failure line. All-or-nothing:
// partial metrics are never rendered.
func (b *Bot) failCommand(ctx context.Context, i *discordgo.InteractionCreate, funcName string, err error) {
	cid, _ := appctx.GetString(ctx, appctx.ContextKeyCorrelationId)
	config.GetLogger().WithFields(logrus.Fields{
		"module":        "bot",
		"funcName":      funcName,
		"correlationId": cid,
	}).Error(err.Error())

	b.editEmbed(i, &discordgo.MessageEmbed{
		Title:       "❌ Error",
		Description: "An error occurred while processing your request.",
		Color:       embedColor,
	})
}

// failComponent is failCommand for component/modal flows, where the original
// message belongs to an ephemeral prompt and the reply goes out as a
// follow-up instead of an edit.
func (b *Bot) failComponent(ctx context.Context, i *discordgo.InteractionCreate, funcName string, err error) {
	cid, _ := appctx.GetString(ctx, appctx.ContextKeyCorrelationId)
	config.GetLogger().WithFields(logrus.Fields{
		"module":        "bot",
		"funcName":      funcName,
		"correlationId": cid,
	}).Error(err.Error())

	b.followUpEmbed(i, &discordgo.MessageEmbed{
		Title:       "❌ Error",
		Description: "An error occurred while processing your request.",
		Color:       embedColor,
	})
}
