package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/chatops-ua/workcop/internal/content"
)

// NewMessageHandler returns the default handler for plain chat messages.
// It checks pending riddle answers, classifies the message, records the
// statistics, and teases confident work talk.
func NewMessageHandler(deps HandlerDeps) bot.HandlerFunc {
	return messageHandler{deps}.Handle
}

type messageHandler struct {
	deps HandlerDeps
}

func (h messageHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "message")

	if update.Message == nil || update.Message.From == nil {
		return
	}
	msg := update.Message
	text := msg.Text
	if text == "" || strings.HasPrefix(text, "/") {
		return
	}

	userID := msg.From.ID
	chatID := msg.Chat.ID
	name := displayName(msg.From)

	// Remember the chat for scheduled broadcasts.
	if err := h.deps.Store.AddChat(ctx, chatID); err != nil {
		log.WarnContext(ctx, "Failed to remember chat", "error", err, "chat_id", chatID)
	}

	// A pending riddle answer wins over classification.
	answer, err := h.deps.Riddles.CheckAnswer(ctx, userID, name, text)
	if err != nil {
		log.ErrorContext(ctx, "Failed to check riddle answer", "error", err, "user_id", userID)
	} else if answer != nil {
		log.InfoContext(ctx, "Riddle solved", "user_id", userID, "level", answer.Level, "reward", answer.Reward)
		reply := fmt.Sprintf("✅ *Правильно!* %s\n\n+%d 🪙\nБаланс: %d 🪙\n\n_Наступна загадка: %s. Напиши /bonus!_",
			answer.LevelName, answer.Reward, answer.NewBalance, answer.NextLevelName)
		_, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          chatID,
			Text:            reply,
			ParseMode:       models.ParseModeMarkdown,
			ReplyParameters: &models.ReplyParameters{MessageID: msg.ID},
		})
		if err != nil {
			log.ErrorContext(ctx, "Failed to send riddle success message", "error", err, "chat_id", chatID)
		}
		return
	}

	muted, err := h.deps.Store.IsMuted(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to check muted set", "error", err, "user_id", userID)
		return
	}
	if muted {
		return
	}

	pred := h.deps.Classifier.Predict(text)
	if err := h.deps.Store.RecordClassification(ctx, userID, name, pred.IsWork); err != nil {
		log.ErrorContext(ctx, "Failed to record classification", "error", err, "user_id", userID)
	}

	log.DebugContext(ctx, "Message classified",
		"user_id", userID, "label", pred.Label, "confidence", pred.Confidence)

	if !pred.IsWork || pred.Confidence < h.deps.Config.Economy.WorkReplyConfidence {
		return
	}

	// The clown reaction is best effort, the bot may lack reaction rights.
	_, err = b.SetMessageReaction(ctx, &bot.SetMessageReactionParams{
		ChatID:    chatID,
		MessageID: msg.ID,
		Reaction: []models.ReactionType{{
			Type:              models.ReactionTypeTypeEmoji,
			ReactionTypeEmoji: &models.ReactionTypeEmoji{Type: models.ReactionTypeTypeEmoji, Emoji: "🤡"},
		}},
	})
	if err != nil {
		log.WarnContext(ctx, "Failed to set clown reaction", "error", err, "chat_id", chatID)
	}

	reply := fmt.Sprintf("%s (%.0f%%)", content.RandomWorkReply(), pred.Confidence*100)
	_, err = b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          chatID,
		Text:            reply,
		ReplyParameters: &models.ReplyParameters{MessageID: msg.ID},
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send work reply", "error", err, "chat_id", chatID)
	}
}
