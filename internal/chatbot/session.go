package chatbot

import (
	"context"
	"log"

	"github.com/Pablo751/3mchatbot/internal/catalog"
	"github.com/Pablo751/3mchatbot/internal/conversation"
)

// Session is one linear conversation against the shared catalog. It owns
// its conversation log exclusively; the catalog is shared and read-only.
// A Session processes one query at a time and is not safe for concurrent
// calls; the hosting layer keeps one Session per end-user conversation.
type Session struct {
	catalog *catalog.Store
	gateway *Gateway
	log     *conversation.Log
}

func NewSession(cat *catalog.Store, gw *Gateway) *Session {
	return &Session{
		catalog: cat,
		gateway: gw,
		log:     conversation.NewLog(),
	}
}

// Result describes one processed query for observers: the reply sent to
// the user plus how selection went. ProductIndex is conversation.NoProduct
// unless the query matched.
type Result struct {
	Response     string
	Outcome      SelectionOutcome
	ProductIndex int
	ProductName  string
}

// ProcessQuery runs one user utterance through the resolution pipeline and
// returns the reply. Never fails; every failure mode degrades to one of
// the fixed fallback messages.
func (s *Session) ProcessQuery(ctx context.Context, userQuery string) string {
	return s.Process(ctx, userQuery).Response
}

// Process is ProcessQuery plus the selection detail: record the user turn,
// ask the model for the relevant catalog index, then ask it for an answer
// grounded in that product and the recent turns. The reply (degraded or
// not) is recorded as the assistant's turn so later queries see it as
// context.
func (s *Session) Process(ctx context.Context, userQuery string) Result {
	s.log.AppendUser(userQuery)

	sel := s.gateway.SelectProduct(ctx, s.catalog, userQuery)

	res := Result{Outcome: sel.Outcome, ProductIndex: conversation.NoProduct}
	switch sel.Outcome {
	case SelectionMatched:
		if sel.Index < 0 || sel.Index >= s.catalog.Count() {
			// Gateway already bounds-checks; this guard keeps the invalid
			// index from ever reaching the catalog or the model.
			res.Response = msgProductNotFound
			break
		}
		s.log.SetLastProduct(sel.Index)
		product := s.catalog.Get(sel.Index)
		res.ProductIndex = sel.Index
		res.ProductName = product.Name
		res.Response = s.gateway.GenerateAnswer(ctx, product, s.log.Recent(3), userQuery)
	case SelectionTransportError:
		log.Printf("product selection degraded to no-match: %v", sel.Err)
		res.Response = msgNoMatch
	default:
		res.Response = msgNoMatch
	}

	s.log.AppendAssistant(res.Response)
	return res
}

// LastProduct reports the catalog index the conversation last settled on,
// or conversation.NoProduct.
func (s *Session) LastProduct() int {
	return s.log.LastProduct()
}

// History returns the last n conversation turns, oldest first.
func (s *Session) History(n int) []conversation.Turn {
	return s.log.Recent(n)
}

// Reset discards the conversation log and product pointer. The catalog is
// untouched.
func (s *Session) Reset() {
	s.log = conversation.NewLog()
}
