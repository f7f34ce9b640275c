package api

import (
	"context"
	"fmt"

	"github.com/Ahmad-AL-Ahmady/MedLens/internal/chat"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/diagnosis"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/generation"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/logger"
	"github.com/Ahmad-AL-Ahmady/MedLens/internal/prompt"
)

// ChatProcessor resolves a chat message against a session's diagnosis:
// route the intent, then answer from a canned reply, the cache, or the
// generator.
type ChatProcessor struct {
	router    *chat.Router
	generator generation.TextGenerator
	info      *MedicalInfoProvider
	log       *logger.Logger
}

// NewChatProcessor creates a chat processor
func NewChatProcessor(router *chat.Router, generator generation.TextGenerator, info *MedicalInfoProvider, log *logger.Logger) *ChatProcessor {
	if log == nil {
		log = logger.NewNop()
	}
	return &ChatProcessor{
		router:    router,
		generator: generator,
		info:      info,
		log:       log,
	}
}

// ProcessMessage answers a chat message for the given session context
func (p *ChatProcessor) ProcessMessage(ctx context.Context, message string, dctx *diagnosis.Context) (string, error) {
	snap := dctx.Snapshot()
	intent := p.router.Route(message, snap)
	p.log.Debug("message routed", "intent", string(intent.Kind))

	if reply := chat.CannedReply(intent.Kind); reply != "" {
		return reply, nil
	}

	switch intent.Kind {
	case chat.IntentCachedInfo:
		if snap.MedicalInfo != "" {
			return snap.MedicalInfo, nil
		}
		info, err := p.info.MedicalInfo(ctx, snap.Description())
		if err != nil {
			return "", err
		}
		dctx.CacheMedicalInfo(info)
		return info, nil

	case chat.IntentNamedInfo:
		return p.info.MedicalInfo(ctx, intent.Subject)

	case chat.IntentContextual:
		qa := prompt.ContextualQA(snap.Description(), snap.Confidence, intent.Subject)
		raw, err := p.generator.Generate(ctx, qa)
		if err != nil {
			return "", fmt.Errorf("answering question: %w", err)
		}
		return prompt.Sanitize(raw, false), nil
	}

	return "", fmt.Errorf("unhandled intent %q", intent.Kind)
}
