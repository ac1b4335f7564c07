package handlers

import (
	tgbot "github.com/go-telegram/bot"
)

// RegisteredHandler represents a command handler with its description and middleware.
// It encapsulates all information needed to register and document a command.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
}

// RegisterAllCommands initializes and returns a map of all available bot commands.
// It configures each command with appropriate handlers and middleware.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	handlers := make(map[string]RegisteredHandler)

	command := func(pattern string, handler tgbot.HandlerFunc, middleware ...tgbot.Middleware) {
		handlers["/"+pattern] = RegisteredHandler{
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     pattern,
			Handler:     handler,
			MatchType:   tgbot.MatchTypeCommandStartOnly,
			Middleware:  middleware,
		}
	}

	command("start", NewStartHandler(deps))
	command("check", NewCheckHandler(deps))
	command("stats", NewStatsHandler(deps))
	command("car", NewCarHandler(deps))
	command("mute", NewMuteHandler(deps))
	command("unmute", NewUnmuteHandler(deps))

	command("slots", NewSlotsHandler(deps))
	command("slot", NewSlotsHandler(deps))
	command("balance", NewBalanceHandler(deps))
	command("bal", NewBalanceHandler(deps))
	command("top", NewTopHandler(deps))
	command("leaderboard", NewTopHandler(deps))
	command("bonus", NewBonusHandler(deps))
	command("roast", NewRoastHandler(deps))
	command("compliment", NewComplimentHandler(deps))

	command("reset_stats", NewResetStatsHandler(deps), AdminOnly(deps))

	return handlers
}
