package bot

import "github.com/bwmarrin/discordgo"

const (
	customIDExpenseCategory    = "expense_add_category"
	customIDExpenseRemove      = "expense_remove_select"
	customIDExpenseModalPrefix = "expense_modal_"
	customIDStatsDate          = "stats_date_select"
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "balance",
		Description: "View Stripe balance and recent payouts",
	},
	{
		Name:        "revenue",
		Description: "View total revenue, expenses, and true total",
	},
	{
		Name:        "daily",
		Description: "Show today's stats (gross volume, customers, and payments)",
	},
	{
		Name:        "stats",
		Description: "View stats for a specific date",
	},
	{
		Name:        "summary",
		Description: "View a combined financial summary",
	},
	{
		Name:        "expense",
		Description: "Manage expenses",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "add",
				Description: "Add a new expense (opens category selection)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List all expenses",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "limit",
						Description: "Number of expenses to show (default: 10)",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "remove",
				Description: "Remove an expense (opens selection menu)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "total",
				Description: "Show total expenses",
			},
		},
	},
}
