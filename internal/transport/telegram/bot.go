// Package telegram runs a private question bot for the knowledge base
// owner. Messages from anyone else are dropped.
package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/studykb/internal/config"
	"github.com/sandevgo/studykb/internal/service/answer"
	"github.com/sandevgo/studykb/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot     *tele.Bot
	cfg     *config.TelegramConfig
	answer  *answer.Service
	sender  *sender
	ownerID int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	answerSvc *answer.Service,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		cfg:     cfg,
		answer:  answerSvc,
		sender:  newSender(b),
		ownerID: cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle("/start", bot.handleStart)
	b.Handle(tele.OnText, bot.handleQuestion)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleStart(c tele.Context) error {
	return c.Send("안녕하세요! 궁금한 것을 질문해주세요. 지식 베이스를 참고하여 답변해드립니다.")
}

func (b *Bot) handleQuestion(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)

	question := strings.TrimSpace(c.Text())
	if question == "" {
		return nil
	}

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	result := b.answer.Ask(ctx, question)

	var md strings.Builder
	fmt.Fprintf(&md, "**[%s]**\n\n%s", result.Category, result.Answer.Text)
	if len(result.Answer.Sources) > 0 {
		md.WriteString("\n\n_참고한 질문:_\n")
		for _, src := range result.Answer.Sources {
			fmt.Fprintf(&md, "- %s\n", src)
		}
	}

	if err := b.sender.sendMarkdown(ctx, c.Chat(), md.String(), false); err != nil {
		logger.Error().Err(err).Msg("failed to deliver answer")
		return c.Send(fmt.Sprintf("error: %v", err))
	}
	return nil
}
