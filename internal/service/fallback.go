package service

import (
	"context"
	"errors"
	"log"

	"github.com/fahrielsara/portfolio-backend/internal/models"
)

// Apology texts shown to the visitor when generation cannot proceed. The
// widget renders these as ordinary assistant turns.
const (
	apologyMissingKey  = "Üzgünüm, şu an bağlantımda bir sorun var (API Anahtarı eksik). Lütfen yönetici ile iletişime geçin."
	apologyQuota       = "Şu an çok yoğunum, lütfen biraz sonra tekrar deneyin. (Kota aşımı)"
	apologyUnavailable = "Şu an cevap veremiyorum, sistemde geçici bir sorun var."
)

// defaultSystemInstruction is used when no persona prompt is supplied.
const defaultSystemInstruction = "Sen yardımsever bir asistansın."

// modelAcknowledgement is the synthetic first model turn confirming the
// persona instructions.
const modelAcknowledgement = "Anlaşıldı. Belirttiğin kurallara ve role göre cevap vereceğim."

// defaultModelCandidates are tried in order; earlier entries have higher
// free-tier quotas.
var defaultModelCandidates = []string{
	"gemini-2.0-flash",
	"gemini-2.0-flash-001",
	"gemini-pro",
	"gemini-pro-latest",
}

// Generator produces text from a conversation against a single named model.
type Generator interface {
	Generate(ctx context.Context, model string, history []models.ChatTurn, message string) (string, error)
}

// FallbackResponder wraps a Generator with the model fallback strategy:
// each candidate model is tried in order until one answers, and failures
// degrade to an apology text rather than an error.
type FallbackResponder struct {
	generator Generator
	models    []string
	hasAPIKey bool
}

// NewFallbackResponder creates a FallbackResponder over the given generator.
// hasAPIKey should be false when no API key is configured; in that case every
// call returns the missing-key apology without touching the network.
func NewFallbackResponder(generator Generator, hasAPIKey bool) *FallbackResponder {
	return &FallbackResponder{
		generator: generator,
		models:    defaultModelCandidates,
		hasAPIKey: hasAPIKey,
	}
}

// Respond generates a reply for the visitor's message. The persona prompt is
// injected as a synthetic opening exchange ahead of the stored history, so
// models without native system-instruction support still honor it.
//
// Respond never returns an error to the caller: when every candidate model
// fails the returned text is an apology the widget can display as-is.
func (f *FallbackResponder) Respond(ctx context.Context, systemInstruction string, history []models.ChatTurn, message string) string {
	if !f.hasAPIKey {
		log.Printf("[Chat] No generative API key configured, returning apology")
		return apologyMissingKey
	}

	if systemInstruction == "" {
		systemInstruction = defaultSystemInstruction
	}

	effectiveHistory := make([]models.ChatTurn, 0, len(history)+2)
	effectiveHistory = append(effectiveHistory,
		models.ChatTurn{Role: models.RoleUser, Text: systemInstruction},
		models.ChatTurn{Role: models.RoleAssistant, Text: modelAcknowledgement},
	)
	effectiveHistory = append(effectiveHistory, history...)

	var lastErr error
	for _, model := range f.models {
		text, err := f.generator.Generate(ctx, model, effectiveHistory, message)
		if err == nil {
			return text
		}
		log.Printf("[Chat] Model %s failed: %v", model, err)
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}

	log.Printf("[Chat] All models failed, last error: %v", lastErr)
	if errors.Is(lastErr, ErrRateLimited) {
		return apologyQuota
	}
	return apologyUnavailable
}
