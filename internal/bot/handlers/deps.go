package handlers

import (
	"log/slog"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/chatops-ua/workcop/internal/classifier"
	"github.com/chatops-ua/workcop/internal/config"
	"github.com/chatops-ua/workcop/internal/database"
	"github.com/chatops-ua/workcop/internal/economy"
)

// HandlerDeps holds the dependencies required by bot handlers.
// It is passed to handler constructors to provide access to shared resources.
type HandlerDeps struct {
	Logger     *slog.Logger
	Config     *config.Config
	Store      database.Store
	Classifier classifier.Classifier
	Ledger     *economy.Ledger
	Slots      *economy.SlotMachine
	Riddles    *economy.RiddleService
}

const (
	anonymousName   = "Анонім"
	genericErrorMsg = "⚠️ Щось пішло не так, спробуй пізніше"
)

// displayName returns a human-readable name for a Telegram user, preferring
// the first name over the username.
func displayName(u *models.User) string {
	if u == nil {
		return anonymousName
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.Username != "" {
		return u.Username
	}
	return anonymousName
}

// commandArgs returns the text after the command itself, trimmed.
// "/check hello there" yields "hello there".
func commandArgs(text string) string {
	_, rest, found := strings.Cut(text, " ")
	if !found {
		return ""
	}
	return strings.TrimSpace(rest)
}

// targetName resolves who a roast or compliment is aimed at: the sender of
// the replied-to message, then the command argument, then the caller.
func targetName(msg *models.Message) string {
	if msg.ReplyToMessage != nil && msg.ReplyToMessage.From != nil {
		return displayName(msg.ReplyToMessage.From)
	}
	if args := commandArgs(msg.Text); args != "" {
		return strings.TrimPrefix(args, "@")
	}
	return displayName(msg.From)
}
