package bot

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/mmdatafocus/finance_bot/appctx"
	"github.com/mmdatafocus/finance_bot/config"
	"github.com/mmdatafocus/finance_bot/models"
	"github.com/mmdatafocus/finance_bot/stats"
	"github.com/mmdatafocus/finance_bot/stripeapi"
	"github.com/sirupsen/logrus"
)

// Bot is the Discord presentation layer. It owns no business logic: every
// command ends in the stats service, the Stripe client, or the expense
// store, all injected at construction.
type Bot struct {
	session *discordgo.Session
	store   *models.ExpenseStore
	stripe  *stripeapi.Client
	stats   *stats.Service

	appID          string
	guildID        string
	requiredRoleID string
	offsetHours    int
}

func New(token string, store *models.ExpenseStore, stripeClient *stripeapi.Client, statsService *stats.Service) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	b := &Bot{
		session:        session,
		store:          store,
		stripe:         stripeClient,
		stats:          statsService,
		appID:          os.Getenv("DISCORD_CLIENT_ID"),
		guildID:        os.Getenv("DISCORD_GUILD_ID"),
		requiredRoleID: os.Getenv("DISCORD_REQUIRED_ROLE_ID"),
		offsetHours:    config.TimezoneOffsetHours(),
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)
	return b, nil
}

// Start opens the gateway connection and registers slash commands.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	if err := b.registerCommands(); err != nil {
		b.session.Close()
		return err
	}
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	config.GetLogger().WithFields(logrus.Fields{
		"user":   r.User.String(),
		"guilds": len(r.Guilds),
	}).Info("bot connected")
}

// registerCommands overwrites the command set. Guild-scoped registration
// (when DISCORD_GUILD_ID is set) shows up immediately; in that case the
// global set is cleared too so the same commands never appear twice.
func (b *Bot) registerCommands() error {
	if b.guildID != "" {
		if _, err := b.session.ApplicationCommandBulkOverwrite(b.appID, b.guildID, commands); err != nil {
			return fmt.Errorf("register guild commands: %w", err)
		}
		if _, err := b.session.ApplicationCommandBulkOverwrite(b.appID, "", []*discordgo.ApplicationCommand{}); err != nil {
			config.LogError(config.GetLogger(), "bot/bot.go", "registerCommands", "clear global commands", nil, err)
		}
		return nil
	}
	// Global commands can take up to an hour to propagate.
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.appID, "", commands); err != nil {
		return fmt.Errorf("register global commands: %w", err)
	}
	return nil
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := appctx.Set(context.Background(), appctx.ContextKeyCorrelationId, uuid.NewString())
	if i.Member != nil && i.Member.User != nil {
		ctx = appctx.Set(ctx, appctx.ContextKeyUserTag, i.Member.User.String())
	}
	ctx = appctx.Set(ctx, appctx.ContextKeyGuildId, i.GuildID)

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(ctx, i)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(ctx, i)
	case discordgo.InteractionModalSubmit:
		b.handleModal(ctx, i)
	}
}

func (b *Bot) handleCommand(ctx context.Context, i *discordgo.InteractionCreate) {
	if !b.checkRole(i) {
		return
	}
	switch i.ApplicationCommandData().Name {
	case "balance":
		b.handleBalance(ctx, i)
	case "revenue":
		b.handleRevenue(ctx, i)
	case "daily":
		b.handleDaily(ctx, i)
	case "stats":
		b.handleStats(ctx, i)
	case "summary":
		b.handleSummary(ctx, i)
	case "expense":
		b.handleExpense(ctx, i)
	}
}

func (b *Bot) handleComponent(ctx context.Context, i *discordgo.InteractionCreate) {
	switch i.MessageComponentData().CustomID {
	case customIDExpenseCategory:
		b.handleCategorySelect(ctx, i)
	case customIDExpenseRemove:
		b.handleRemoveSelect(ctx, i)
	case customIDStatsDate:
		b.handleStatsDateSelect(ctx, i)
	}
}

func (b *Bot) handleModal(ctx context.Context, i *discordgo.InteractionCreate) {
	if strings.HasPrefix(i.ModalSubmitData().CustomID, customIDExpenseModalPrefix) {
		b.handleExpenseModal(ctx, i)
	}
}

// checkRole is the permission gate: the member must carry the configured
// role. An unset role id locks the bot down rather than opening it up.
func (b *Bot) checkRole(i *discordgo.InteractionCreate) bool {
	if i.Member != nil {
		for _, roleID := range i.Member.Roles {
			if roleID == b.requiredRoleID && roleID != "" {
				return true
			}
		}
	}
	b.respondEphemeral(i, "❌ **Permission Denied**\nYou need the required role to use this bot.")
	return false
}
