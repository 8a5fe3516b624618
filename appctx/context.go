package appctx

import "context"

// ContextKey is the shared type for all context keys in this codebase.
// Keeping it in a tiny package avoids import cycles between config and the
// packages that log with these keys.
type ContextKey string

func (c ContextKey) String() string { return string(c) }

var (
	// ContextKeyUserTag is the Discord tag of the user behind the current interaction.
	ContextKeyUserTag = ContextKey("UserTag")

	// ContextKeyGuildId is the guild the current interaction came from.
	ContextKeyGuildId = ContextKey("GuildId")

	ContextKeyCorrelationId = ContextKey("CorrelationId")
)

func GetString(ctx context.Context, key ContextKey) (string, bool) {
	v, ok := ctx.Value(key).(string)
	return v, ok
}

func GetBool(ctx context.Context, key ContextKey) (bool, bool) {
	v, ok := ctx.Value(key).(bool)
	return v, ok
}

func Set(ctx context.Context, key ContextKey, value any) context.Context {
	return context.WithValue(ctx, key, value)
}
