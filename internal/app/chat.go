package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"auracoach/internal/util"
	"auracoach/pkg/ai"
	"auracoach/pkg/domain"
	"auracoach/pkg/events"
	"auracoach/pkg/personas"
	"auracoach/pkg/schedule"
)

const (
	defaultChatTitle = "New Conversation"
	// Free-plan users get this many of their own messages per conversation.
	freeMessageQuota = 5
)

// ListChats returns the user's sessions, newest first.
func (a *App) ListChats(ctx context.Context, userID string) []domain.ChatSession {
	return a.records.ListChats(ctx, userID)
}

// GetChat loads one session.
func (a *App) GetChat(ctx context.Context, userID, chatID string) (domain.ChatSession, error) {
	session, ok := a.records.GetChat(ctx, userID, chatID)
	if !ok {
		return domain.ChatSession{}, ErrChatNotFound
	}
	return session, nil
}

// DeleteChat removes one session.
func (a *App) DeleteChat(ctx context.Context, userID, chatID string) error {
	return a.records.DeleteChat(ctx, userID, chatID)
}

// SendMessage appends a user turn to the session (creating it if chatID is
// empty), asks the coach for a reply and persists both. The user turn is
// saved even when the free quota blocks the reply, so nothing typed is lost.
func (a *App) SendMessage(ctx context.Context, user domain.User, chatID, coachID, content string) (domain.ChatSession, ai.Reply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.ChatSession{}, ai.Reply{}, ErrMessageRequired
	}
	persona, ok := personas.ByID(coachID)
	if !ok {
		return domain.ChatSession{}, ai.Reply{}, ErrPersonaNotFound
	}
	if persona.IsPremium && user.Plan != domain.PlanPro {
		return domain.ChatSession{}, ai.Reply{}, ErrPremiumRequired
	}

	session, err := a.ensureChat(ctx, user.ID, chatID, persona)
	if err != nil {
		return domain.ChatSession{}, ai.Reply{}, err
	}
	session.Messages = append(session.Messages, domain.Message{
		ID:      util.NewID(),
		Role:    "user",
		Content: content,
	})
	a.refreshChatMeta(&session)

	if countUserMessages(session.Messages) >= freeMessageQuota && user.Plan != domain.PlanPro {
		if err := a.records.SaveChat(ctx, user.ID, session); err != nil {
			return domain.ChatSession{}, ai.Reply{}, fmt.Errorf("save chat: %w", err)
		}
		return session, ai.Reply{}, ErrPremiumRequired
	}

	apiMessages := make([]ai.ChatMessage, 0, len(session.Messages)+1)
	apiMessages = append(apiMessages, ai.ChatMessage{
		Role:    "system",
		Content: a.systemPrompt(ctx, user.ID, persona),
	})
	for _, msg := range session.Messages {
		apiMessages = append(apiMessages, ai.ChatMessage{Role: msg.Role, Content: msg.Content})
	}

	reply := a.bridge.CoachReply(ctx, apiMessages)
	session.Messages = append(session.Messages, domain.Message{
		ID:      util.NewID(),
		Role:    "assistant",
		Content: reply.Text,
	})
	a.refreshChatMeta(&session)
	if err := a.records.SaveChat(ctx, user.ID, session); err != nil {
		return domain.ChatSession{}, ai.Reply{}, fmt.Errorf("save chat: %w", err)
	}
	a.publish(ctx, events.Event{
		Type:   events.TypeChatMessageSent,
		UserID: user.ID,
		Data:   map[string]any{"chatId": session.ID, "coachId": persona.ID, "degraded": reply.Degraded},
	})
	return session, reply, nil
}

func (a *App) ensureChat(ctx context.Context, userID, chatID string, persona personas.Persona) (domain.ChatSession, error) {
	if chatID != "" {
		session, ok := a.records.GetChat(ctx, userID, chatID)
		if !ok {
			return domain.ChatSession{}, ErrChatNotFound
		}
		if session.CoachID != persona.ID {
			return domain.ChatSession{}, fmt.Errorf("chat coach mismatch")
		}
		return session, nil
	}
	return domain.ChatSession{
		ID:      util.NewID(),
		CoachID: persona.ID,
		Title:   defaultChatTitle,
		Messages: []domain.Message{{
			ID:      util.NewID(),
			Role:    "assistant",
			Content: fmt.Sprintf("Hello. I am %s. %s. How can I help you find clarity today?", persona.Name, persona.Role),
		}},
	}, nil
}

// systemPrompt builds the persona prompt. Marcus additionally gets today's
// schedule so his advice can reference concrete time blocks.
func (a *App) systemPrompt(ctx context.Context, userID string, persona personas.Persona) string {
	prompt := persona.SystemPrompt
	if persona.ID != "marcus" {
		return prompt
	}
	today := time.Now().Format(schedule.DateLayout)
	blocks := a.schedule.Day(ctx, userID, today)
	if len(blocks) == 0 {
		return prompt + fmt.Sprintf("\n\nThe user has no tasks scheduled for today (%s). Encourage them to plan their day.", today)
	}
	var sb strings.Builder
	for _, block := range blocks {
		sb.WriteString(fmt.Sprintf("- %s: %s (%s)", block.Time, block.Activity, block.Status))
		if block.Description != "" {
			sb.WriteString(" [" + block.Description + "]")
		}
		sb.WriteString("\n")
	}
	return prompt + fmt.Sprintf("\n\nHere is the user's schedule for today (%s):\n%s\nUse this context to give specific time-management advice.", today, strings.TrimRight(sb.String(), "\n"))
}

// refreshChatMeta derives title and preview from the current messages and
// bumps the modification time.
func (a *App) refreshChatMeta(session *domain.ChatSession) {
	session.LastModified = time.Now().UnixMilli()
	session.Title = defaultChatTitle
	for _, msg := range session.Messages {
		if msg.Role == "user" {
			words := strings.Fields(msg.Content)
			if len(words) > 5 {
				words = words[:5]
			}
			session.Title = strings.Join(words, " ") + "..."
			break
		}
	}
	if len(session.Messages) > 0 {
		last := session.Messages[len(session.Messages)-1].Content
		if len(last) > 100 {
			last = last[:100]
		}
		session.Preview = last
	}
}

func countUserMessages(messages []domain.Message) int {
	n := 0
	for _, msg := range messages {
		if msg.Role == "user" {
			n++
		}
	}
	return n
}
