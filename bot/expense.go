package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/mmdatafocus/finance_bot/appctx"
	"github.com/mmdatafocus/finance_bot/config"
	"github.com/mmdatafocus/finance_bot/models"
)

// Sentinel select-menu values for the two non-category choices. Real
// category names never collide with these.
const (
	categoryValueNew  = "__new_category__"
	categoryValueNone = "__no_category__"
)

func (b *Bot) handleExpense(ctx context.Context, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]

	switch sub.Name {
	case "add":
		b.handleAddExpense(ctx, i)
	case "list":
		b.handleListExpenses(ctx, i, sub)
	case "remove":
		b.handleRemoveExpense(ctx, i)
	case "total":
		b.handleTotalExpenses(ctx, i)
	}
}

// handleAddExpense starts the add flow with a category picker. Two fixed
// choices plus up to 23 existing categories keeps the menu within Discord's
// 25-option cap.
func (b *Bot) handleAddExpense(ctx context.Context, i *discordgo.InteractionCreate) {
	categories, err := b.store.Categories(ctx)
	if err != nil {
		b.respondEphemeral(i, "❌ Failed to load categories. Please try again.")
		return
	}

	options := []discordgo.SelectMenuOption{
		{
			Label:       "➕ Create New Category",
			Value:       categoryValueNew,
			Description: "Add expense with a new category",
		},
		{
			Label:       "📝 No Category",
			Value:       categoryValueNone,
			Description: "Add expense without a category",
		},
	}
	for idx, category := range categories {
		if idx == 23 {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       category,
			Value:       category,
			Description: fmt.Sprintf("Use existing category: %s", category),
		})
	}

	err = b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "📋 **Select a category for your expense:**",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    customIDExpenseCategory,
							Placeholder: "Select a category or create new",
							MaxValues:   1,
							Options:     options,
						},
					},
				},
			},
		},
	})
	if err != nil {
		config.LogError(config.GetLogger(), "bot/expense.go", "handleAddExpense", "InteractionRespond", nil, err)
	}
}

// handleCategorySelect answers the category picker with the amount modal.
// The chosen value rides in the modal's custom id so the submit handler
// knows which path was taken.
func (b *Bot) handleCategorySelect(ctx context.Context, i *discordgo.InteractionCreate) {
	selected := i.MessageComponentData().Values[0]

	amountInput := discordgo.TextInput{
		CustomID:    "expense_amount",
		Label:       "Amount ($) - Enter POSITIVE number only",
		Style:       discordgo.TextInputShort,
		Placeholder: "Enter amount (e.g., 50.00) - DO NOT use negative sign",
		Required:    true,
		MaxLength:   20,
	}

	var categoryInput discordgo.TextInput
	switch selected {
	case categoryValueNew:
		categoryInput = discordgo.TextInput{
			CustomID:    "expense_category",
			Label:       "Category (e.g., Dripfeed, TikTok Ads)",
			Style:       discordgo.TextInputShort,
			Placeholder: "Enter category name",
			Required:    true,
			MaxLength:   100,
		}
	case categoryValueNone:
		categoryInput = discordgo.TextInput{
			CustomID:    "expense_category",
			Label:       "Category (optional)",
			Style:       discordgo.TextInputShort,
			Placeholder: "Leave empty for no category",
			MaxLength:   100,
		}
	default:
		categoryInput = discordgo.TextInput{
			CustomID:    "expense_category",
			Label:       "Category",
			Style:       discordgo.TextInputShort,
			Placeholder: selected,
			Value:       selected,
			MaxLength:   100,
		}
	}

	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customIDExpenseModalPrefix + selected,
			Title:    "Add New Expense",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{amountInput}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{categoryInput}},
			},
		},
	})
	if err != nil {
		config.LogError(config.GetLogger(), "bot/expense.go", "handleCategorySelect", "InteractionRespond", nil, err)
	}
}

func (b *Bot) handleExpenseModal(ctx context.Context, i *discordgo.InteractionCreate) {
	if err := b.deferReply(i); err != nil {
		return
	}

	data := i.ModalSubmitData()
	selected := strings.TrimPrefix(data.CustomID, customIDExpenseModalPrefix)

	amountStr := strings.TrimSpace(modalInputValue(data, "expense_amount"))
	categoryStr := strings.TrimSpace(modalInputValue(data, "expense_category"))

	// An existing category preselection stands unless the user typed over it.
	category := categoryStr
	if category == "" && selected != categoryValueNew && selected != categoryValueNone {
		category = selected
	}
	if category == "" && selected == categoryValueNew {
		b.editEmbed(i, &discordgo.MessageEmbed{
			Title:       "❌ Category Required",
			Description: "Please enter a category name (e.g., Dripfeed, TikTok Ads).",
			Color:       embedColor,
		})
		return
	}

	createdBy, _ := appctx.GetString(ctx, appctx.ContextKeyUserTag)

	expense, err := b.store.Create(ctx, models.NewExpense{
		Amount:    amountStr,
		Category:  category,
		CreatedBy: createdBy,
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidAmount) {
			b.editEmbed(i, &discordgo.MessageEmbed{
				Title:       "❌ Invalid Amount",
				Description: "Please enter a **positive number only** (e.g., 50.00).\n\n⚠️ **Do NOT use a negative sign** - all amounts are recorded as expenses.",
				Color:       embedColor,
			})
			return
		}
		b.failCommand(ctx, i, "handleExpenseModal", err)
		return
	}

	categoryText := expense.Category
	if categoryText == "" {
		categoryText = "None"
	}
	creatorText := expense.CreatedBy
	if creatorText == "" {
		creatorText = "Unknown"
	}

	b.editEmbed(i, &discordgo.MessageEmbed{
		Title: "✅ Expense Added",
		Color: embedColor,
		Description: fmt.Sprintf("**Amount:** -$%s\n**Category:** %s\n**Expense ID:** #%d\n**Created By:** %s",
			expense.Amount.StringFixed(2), categoryText, expense.ID, creatorText),
	})
}

func (b *Bot) handleListExpenses(ctx context.Context, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) {
	if err := b.deferReply(i); err != nil {
		return
	}

	limit := 10
	for _, opt := range sub.Options {
		if opt.Name == "limit" {
			limit = int(opt.IntValue())
		}
	}

	expenses, err := b.store.List(ctx, limit)
	if err != nil {
		b.failCommand(ctx, i, "handleListExpenses", err)
		return
	}

	if len(expenses) == 0 {
		b.editEmbed(i, &discordgo.MessageEmbed{
			Title:       "📋 Expenses List",
			Description: "No expenses found.",
			Color:       embedColor,
		})
		return
	}

	var lines []string
	for idx, exp := range expenses {
		categoryText := exp.Category
		if categoryText == "" {
			categoryText = "No Category"
		}
		lines = append(lines, fmt.Sprintf("%d. **#%d** - -$%s - %s - <t:%d:R>",
			idx+1, exp.ID, exp.Amount.StringFixed(2), categoryText, exp.CreatedAt.Unix()))
	}

	suffix := "s"
	if len(expenses) == 1 {
		suffix = ""
	}

	b.editEmbed(i, &discordgo.MessageEmbed{
		Title:       "📋 Expenses List",
		Description: strings.Join(lines, "\n"),
		Color:       embedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Showing %d expense%s", len(expenses), suffix),
		},
	})
}

func (b *Bot) handleRemoveExpense(ctx context.Context, i *discordgo.InteractionCreate) {
	expenses, err := b.store.List(ctx, 25)
	if err != nil {
		b.respondEphemeral(i, "❌ Failed to load expenses. Please try again.")
		return
	}
	if len(expenses) == 0 {
		b.respondEphemeral(i, "❌ No expenses found to remove.")
		return
	}

	options := make([]discordgo.SelectMenuOption, 0, len(expenses))
	for _, exp := range expenses {
		categoryText := exp.Category
		if categoryText == "" {
			categoryText = "No Category"
		}
		if len(categoryText) > 50 {
			categoryText = categoryText[:50] + "..."
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       fmt.Sprintf("$%s - %s", exp.Amount.StringFixed(2), categoryText),
			Value:       strconv.Itoa(exp.ID),
			Description: fmt.Sprintf("ID: #%d", exp.ID),
		})
	}

	err = b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "🗑️ **Select an expense to remove:**",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    customIDExpenseRemove,
							Placeholder: "Select an expense to remove",
							MaxValues:   1,
							Options:     options,
						},
					},
				},
			},
		},
	})
	if err != nil {
		config.LogError(config.GetLogger(), "bot/expense.go", "handleRemoveExpense", "InteractionRespond", nil, err)
	}
}

func (b *Bot) handleRemoveSelect(ctx context.Context, i *discordgo.InteractionCreate) {
	if err := b.deferUpdate(i); err != nil {
		return
	}

	id, err := strconv.Atoi(i.MessageComponentData().Values[0])
	if err != nil {
		b.failComponent(ctx, i, "handleRemoveSelect", err)
		return
	}

	deleted, err := b.store.Delete(ctx, id)
	if err != nil {
		b.failComponent(ctx, i, "handleRemoveSelect", err)
		return
	}

	if deleted {
		b.followUpEmbed(i, &discordgo.MessageEmbed{
			Title:       "✅ Expense Removed",
			Description: fmt.Sprintf("Expense **#%d** has been successfully removed.", id),
			Color:       embedColor,
		})
		return
	}
	b.followUpEmbed(i, &discordgo.MessageEmbed{
		Title:       "❌ Expense Not Found",
		Description: fmt.Sprintf("Expense **#%d** could not be found.", id),
		Color:       embedColor,
	})
}

func (b *Bot) handleTotalExpenses(ctx context.Context, i *discordgo.InteractionCreate) {
	if err := b.deferReply(i); err != nil {
		return
	}

	total, err := b.store.Total(ctx)
	if err != nil {
		b.failCommand(ctx, i, "handleTotalExpenses", err)
		return
	}
	byCategory, err := b.store.TotalsByCategory(ctx)
	if err != nil {
		b.failCommand(ctx, i, "handleTotalExpenses", err)
		return
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:  "💸 Total Expenses",
			Value: fmt.Sprintf("**-$%s**", total.StringFixed(2)),
		},
	}

	if len(byCategory) > 0 {
		var lines []string
		for _, cat := range byCategory {
			name := cat.Category
			if name == "" {
				name = "Uncategorized"
			}
			lines = append(lines, fmt.Sprintf("- **%s**: $%s", name, cat.Total.StringFixed(2)))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "📊 By Category",
			Value: strings.Join(lines, "\n"),
		})
	}

	b.editEmbed(i, &discordgo.MessageEmbed{
		Title:  "💰 Total Expenses",
		Color:  embedColor,
		Fields: fields,
	})
}

// modalInputValue digs the named text input's value out of a modal submit.
func modalInputValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, row := range data.Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			input, ok := component.(*discordgo.TextInput)
			if !ok {
				continue
			}
			if input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}
