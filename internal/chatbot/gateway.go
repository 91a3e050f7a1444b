package chatbot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Pablo751/3mchatbot/internal/catalog"
	"github.com/Pablo751/3mchatbot/internal/conversation"
	"github.com/Pablo751/3mchatbot/internal/llm"
)

// SelectionOutcome distinguishes the ways a product selection can end.
// Callers fold NoMatch and TransportError into the same user-facing reply,
// but the distinction survives long enough to be logged and recorded.
type SelectionOutcome string

const (
	SelectionMatched        SelectionOutcome = "matched"
	SelectionNoMatch        SelectionOutcome = "no_match"
	SelectionTransportError SelectionOutcome = "transport_error"
)

// Selection is the tagged result of the first model exchange. Index is only
// meaningful when Outcome is SelectionMatched; Err is only set for
// SelectionTransportError.
type Selection struct {
	Outcome SelectionOutcome
	Index   int
	Err     error
}

const (
	// Fixed replies, from the production deployment (user-facing Spanish).
	msgNoMatch = "Lo siento, no pude encontrar un producto específico para tu consulta. ¿Podrías ser más específico sobre lo que estás buscando?"

	msgProductNotFound = "Lo siento, no pude encontrar un producto que coincida con tu consulta. Por favor, intenta ser más específico o visita nuestra página web para más información."

	msgGenerationError = "Lo siento, hubo un error al procesar tu consulta. Por favor, intenta nuevamente."
)

// Gateway owns the two model exchanges of the pipeline. The selector runs a
// cheap low-temperature model that must answer with a bare catalog index;
// the generator runs a stronger model that writes the actual reply.
type Gateway struct {
	selector  llm.Client
	generator llm.Client
}

func NewGateway(selector, generator llm.Client) *Gateway {
	return &Gateway{selector: selector, generator: generator}
}

// SelectProduct asks the model to pick the catalog row most relevant to the
// query. Non-numeric and out-of-range replies both collapse to NoMatch; the
// model is untrusted and must never produce an index the caller would use
// to read outside the catalog.
func (g *Gateway) SelectProduct(ctx context.Context, cat *catalog.Store, query string) Selection {
	resp, err := g.selector.Generate(ctx, []llm.Message{
		{Role: "system", Content: selectionSystemPrompt(cat.Count())},
		{Role: "user", Content: selectionUserPrompt(cat, query)},
	})
	if err != nil {
		return Selection{Outcome: SelectionTransportError, Index: -1, Err: fmt.Errorf("selection call failed: %w", err)}
	}

	raw := strings.TrimSpace(resp.Content)
	index, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("selection reply not numeric: %q", raw)
		return Selection{Outcome: SelectionNoMatch, Index: -1}
	}
	if index < 0 || index >= cat.Count() {
		if index != -1 {
			log.Printf("selection index %d out of range [0-%d]", index, cat.Count()-1)
		}
		return Selection{Outcome: SelectionNoMatch, Index: -1}
	}
	return Selection{Outcome: SelectionMatched, Index: index}
}

// GenerateAnswer asks the model for a reply about the given product,
// grounded in its catalog fields and the recent conversation. The model
// text is returned verbatim; on transport failure the fixed apology is
// returned instead. Never fails.
func (g *Gateway) GenerateAnswer(ctx context.Context, p catalog.ProductRecord, recent []conversation.Turn, query string) string {
	resp, err := g.generator.Generate(ctx, []llm.Message{
		{Role: "system", Content: generationSystemPrompt},
		{Role: "user", Content: generationUserPrompt(p, recent, query)},
	})
	if err != nil {
		log.Printf("generation call failed: %v", err)
		return msgGenerationError
	}
	return resp.Content
}
